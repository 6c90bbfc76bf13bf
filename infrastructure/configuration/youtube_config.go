package configuration

import (
	"os"
	"strings"

	"channel-gateway/domain/model"
)

// GetYouTubeCredential re-reads the API credential on every call so a key
// supplied after startup takes effect without a restart.
// Environment wins over the config file; "YOUR_..." placeholders are ignored.
func GetYouTubeCredential() model.Credential {
	mode := strings.ToLower(getConfigValue(C.YouTube.Mode, "YOUTUBE_MODE", ""))
	return model.Credential{
		APIKey:        getConfigValue(C.YouTube.APIKey, "YOUTUBE_API_KEY", ""),
		ForceFallback: mode == "mock" || mode == "disabled" || os.Getenv("YOUTUBE_ENABLED") == "false",
	}
}

// getConfigValue gets value from environment first, then config, then default
func getConfigValue(configValue, envKey, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	if configValue != "" && !strings.HasPrefix(configValue, "YOUR_") {
		return configValue
	}
	return defaultValue
}
