package config

import (
	"os"
	"path/filepath"
	"strings"
)

func findInPath(configDir string) ([]string, error) {
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, nil
	}

	var matches []string

	err := filepath.Walk(configDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(info.Name(), ".hcl") {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
