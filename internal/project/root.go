// Package project provides utilities for detecting project root directories.
package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// projectMarkers identify a repository root during the upward walk.
var projectMarkers = []string{".git", "go.mod", "package.json"}

// FindRoot finds the project root directory. CLAUDE_PROJECT_DIR wins when
// set and valid, then the nearest ancestor holding a project marker, then
// the current working directory.
func FindRoot() (string, error) {
	if root, found := checkClaudeProjectDir(); found {
		return root, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	if root, found := FindMarkerFrom(cwd); found {
		return root, nil
	}

	return cwd, nil
}

// FindMarkerFrom walks upward from startDir looking for a project marker.
func FindMarkerFrom(startDir string) (string, bool) {
	currentDir := startDir

	for {
		if hasProjectMarker(currentDir) {
			return currentDir, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", false
}

// checkClaudeProjectDir checks if CLAUDE_PROJECT_DIR is set and points at a directory
func checkClaudeProjectDir() (string, bool) {
	claudeDir := os.Getenv("CLAUDE_PROJECT_DIR")
	if claudeDir == "" {
		return "", false
	}

	abs, err := filepath.Abs(claudeDir)
	if err != nil {
		return "", false
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", false
	}

	return abs, true
}

func hasProjectMarker(dir string) bool {
	for _, marker := range projectMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
