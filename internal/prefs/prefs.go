// Package prefs handles user preferences persistence.
// Preferences are stored in ~/.config/uvmsearch/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences: the UI theme plus the search option toggles
// the form starts out with. Persisting the toggles means the form reopens
// the way the user left it.
type Prefs struct {
	Theme         string `toml:"theme"`
	CaseSensitive bool   `toml:"case_sensitive"`
	Regex         bool   `toml:"regex_search"`
	Exclusive     bool   `toml:"exclusive"`
	ShowErrors    bool   `toml:"show_errors"`
	ShowWarnings  bool   `toml:"show_warnings"`
	LineNumbers   bool   `toml:"show_line_numbers"`
	Context       int    `toml:"context"`
}

const (
	defaultPrefsPath = "~/.config/uvmsearch/prefs.toml"
	defaultTheme     = "Dracula"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Defaults returns the out-of-the-box preferences, matching the search
// form's initial state: OR text search, case insensitive, errors, warnings,
// and line numbers shown.
func Defaults() Prefs {
	return Prefs{
		Theme:        defaultTheme,
		ShowErrors:   true,
		ShowWarnings: true,
		LineNumbers:  true,
	}
}

// Load reads preferences from the given path, falling back to defaults if
// missing. Fields absent from the file keep their default values.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), nil
	}

	prefs := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs, nil // Graceful degradation
	}

	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return Defaults(), nil // Graceful degradation
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	if prefs.Context < 0 {
		prefs.Context = 0
	}

	return prefs, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
