package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type secretsFile struct {
	Google *struct {
		APIKey string `toml:"api_key"`
	} `toml:"google"`
}

// ResolveGoogleAPIKey looks up google.api_key in the TOML secrets file and falls back to
// GOOGLE_API_KEY. A missing secrets file is not an error; an unreadable one is reported
// but the environment is still consulted.
func ResolveGoogleAPIKey(secretsPath string, lookupEnv func(string) (string, bool)) (string, error) {
	var fileErr error

	key, err := readSecretsKey(secretsPath)
	if err != nil {
		fileErr = err
	}
	if key != "" {
		return key, nil
	}

	if v, ok := lookupEnv("GOOGLE_API_KEY"); ok && v != "" {
		return v, nil
	}

	if fileErr != nil {
		return "", errors.Join(fileErr, ErrMissingAPIKey)
	}
	return "", ErrMissingAPIKey
}

func readSecretsKey(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read secrets file %s: %w", path, err)
	}

	var secrets secretsFile
	if err := toml.Unmarshal(data, &secrets); err != nil {
		return "", fmt.Errorf("parse secrets file %s: %w", path, err)
	}
	if secrets.Google == nil {
		return "", nil
	}
	return secrets.Google.APIKey, nil
}
