package configuration

import (
	"fmt"
	"os"
	"strconv"

	"channel-gateway/infrastructure/logger"

	"github.com/spf13/viper"
)

// DefaultPort is used when neither the environment nor the config file sets one.
const DefaultPort = 8000

type Config struct {
	App         App         `json:"app"`
	YouTube     YouTube     `json:"youtube"`
	RedisClient RedisClient `json:"redisClient"`
	Logger      Logger      `json:"logger"`
	Database    Database    `json:"database"`
	Cors        Cors        `json:"cors"`
}

type App struct {
	Port int    `json:"port"`
	Env  string `json:"env"`
}

type YouTube struct {
	APIKey string `json:"apiKey"`
	// BaseURL overrides the YouTube Data API endpoint.
	BaseURL string `json:"baseURL"`
	// Mode "mock" or "disabled" forces demo data.
	Mode string `json:"mode"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Password string `json:"password"`
	Username string `json:"username"`
	DB       int    `json:"db"`
}

// Addr returns host:port, or "" when Redis is not configured.
func (r RedisClient) Addr() string {
	if r.Host == "" {
		return ""
	}
	port := r.Port
	if port == "" {
		port = "6379"
	}
	return fmt.Sprintf("%s:%s", r.Host, port)
}

type Logger struct {
	Format string `json:"format"`
	Level  string `json:"level"`
}

// Database describes the optional MongoDB used by the diagnostics endpoint.
type Database struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

type Cors struct {
	// AllowOrigins empty means any origin.
	AllowOrigins []string `json:"allowOrigins"`
}

var C Config

func init() {
	LoadConfig()
}

// LoadConfig reads config[-ENV].json and applies environment overrides into C.
func LoadConfig() {
	name := getConfig()
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("../")
	v.AddConfigPath("../../")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().WithField("config", name).Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
	initApp(&cfg)
	initYouTube(&cfg)
	initRedis(&cfg)
	initDatabase(&cfg)
	initLogger(&cfg)
	C = cfg

	logger.Configure(C.Logger.Format, C.Logger.Level)
	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
}

func getConfig() string {
	name := "config"
	if env := os.Getenv("ENV"); env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(c *Config) {
	if v := os.Getenv("ENV"); v != "" {
		c.App.Env = v
	}
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.App.Port = p
		}
	}
	if c.App.Port == 0 {
		c.App.Port = DefaultPort
	}
}

func initYouTube(c *Config) {
	if v := os.Getenv("YOUTUBE_BASE_URL"); v != "" {
		c.YouTube.BaseURL = v
	}
}

func initRedis(c *Config) {
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.RedisClient.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		c.RedisClient.Port = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.RedisClient.Password = v
	}
}

func initDatabase(c *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("DATABASE_NAME"); v != "" {
		c.Database.Name = v
	}
}

func initLogger(c *Config) {
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Logger.Format = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logger.Level = v
	}
}
