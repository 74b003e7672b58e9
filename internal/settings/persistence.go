package settings

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// Load reads Claude settings from a JSON file. A missing file yields empty
// settings rather than an error so install can bootstrap a fresh project.
func Load(fs afero.Fs, filename string) (*Settings, error) {
	exists, err := afero.Exists(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to check settings file %s: %w", filename, err)
	}
	if !exists {
		return &Settings{}, nil
	}

	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", filename, err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings JSON from %s: %w", filename, err)
	}
	return &settings, nil
}

// Save writes Claude settings to a JSON file.
func Save(fs afero.Fs, settings *Settings, filename string) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings to JSON: %w", err)
	}

	if err := afero.WriteFile(fs, filename, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings to file %s: %w", filename, err)
	}
	return nil
}

// CreateBackup creates a .bak copy of the settings file and returns its path.
func CreateBackup(fs afero.Fs, filename string) (string, error) {
	backupPath := filename + ".bak"

	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return "", fmt.Errorf("failed to read original file: %w", err)
	}

	if err := afero.WriteFile(fs, backupPath, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}
	return backupPath, nil
}
