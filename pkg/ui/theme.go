package ui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Theme is the colour scheme of the page.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DarkModeClass is added to the page body while the dark theme is active.
const DarkModeClass = "dark-mode"

// ParseTheme returns the theme named s. Anything other than "dark" is light.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ButtonLabel is the text of the toggle button, which names the theme the
// button switches to.
func (t Theme) ButtonLabel() string {
	if t == ThemeDark {
		return "☀️ Light Mode"
	}
	return "🌙 Dark Mode"
}

// BodyClass returns the class the page body carries for t, or "".
func (t Theme) BodyClass() string {
	if t == ThemeDark {
		return DarkModeClass
	}
	return ""
}

// ThemeStore persists the selected theme between sessions.
type ThemeStore interface {
	LoadTheme() (Theme, error)
	SaveTheme(Theme) error
}

// MemoryStore keeps the theme in memory.
type MemoryStore struct {
	mu    sync.Mutex
	theme Theme
}

func (s *MemoryStore) LoadTheme() (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ParseTheme(string(s.theme)), nil
}

func (s *MemoryStore) SaveTheme(t Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = t
	return nil
}

// Preferences is the on-disk layout used by FileStore.
type Preferences struct {
	Theme Theme `yaml:"theme"`
}

// FileStore keeps preferences in a YAML file.
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by the YAML file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// LoadTheme reads the saved theme. A missing file yields the light theme.
func (s *FileStore) LoadTheme() (Theme, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return ThemeLight, nil
	}
	if err != nil {
		return ThemeLight, fmt.Errorf("read preferences: %w", err)
	}

	var prefs Preferences
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return ThemeLight, fmt.Errorf("decode preferences: %w", err)
	}
	return ParseTheme(string(prefs.Theme)), nil
}

// SaveTheme writes the theme, creating parent directories as needed.
func (s *FileStore) SaveTheme(t Theme) error {
	data, err := yaml.Marshal(Preferences{Theme: t})
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create preferences dir: %w", err)
		}
	}
	if err := os.WriteFile(s.Path, data, 0o600); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}
