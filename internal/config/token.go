package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// TokenEnvVars lists the environment variables consulted for the API token, in order
var TokenEnvVars = []string{"GITHUB_API_TOKEN", "GITHUB_TOKEN"}

// ResolveToken returns the API token from the flag, the environment or the dotenv file, in that order.
// An empty result with a nil error means no token was configured anywhere.
func ResolveToken(flagValue, envFile string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	for _, name := range TokenEnvVars {
		if token := os.Getenv(name); token != "" {
			slog.Debug("Using token from environment", "var", name)
			return token, nil
		}
	}

	if envFile == "" {
		return "", nil
	}

	values, err := godotenv.Read(envFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read env file %s: %w", envFile, err)
	}

	for _, name := range TokenEnvVars {
		if token := values[name]; token != "" {
			slog.Debug("Using token from env file", "path", envFile, "var", name)
			return token, nil
		}
	}

	return "", nil
}
