package configuration

import (
	"bufio"
	"os"
	"strings"

	"channel-gateway/infrastructure/logger"
)

// LoadEnvFromFile loads KEY=VALUE pairs from the given files (e.g. config.env, .env)
// into the process environment. Variables already set are never overridden,
// so the OS environment keeps precedence. Missing files are skipped.
func LoadEnvFromFile(paths ...string) {
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			continue
		}
		loaded := 0
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			key, val, ok := parseEnvLine(scanner.Text())
			if !ok {
				continue
			}
			if _, exists := os.LookupEnv(key); exists {
				continue
			}
			_ = os.Setenv(key, val)
			loaded++
		}
		_ = f.Close()
		logger.GetLogger().WithField("file", p).WithField("loaded", loaded).Info("Loaded environment file")
	}
}

// parseEnvLine accepts KEY=VALUE, KEY="VALUE" and KEY='VALUE'; blank lines and # comments are skipped.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	key, val, found := strings.Cut(line, "=")
	key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
	if !found || key == "" {
		return "", "", false
	}
	return key, strings.Trim(strings.TrimSpace(val), "\"'"), true
}
