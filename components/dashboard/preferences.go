package dashboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// PreferenceStore persists the viewer's theme choice across sessions. It is
// the only client-side state that outlives the process.
type PreferenceStore interface {
	Theme(ctx context.Context) (Theme, error)
	SaveTheme(ctx context.Context, theme Theme) error
}

// InMemoryPreferenceStore is a concurrency-safe default store.
type InMemoryPreferenceStore struct {
	mu    sync.RWMutex
	theme Theme
}

// NewInMemoryPreferenceStore creates a store holding the default theme.
func NewInMemoryPreferenceStore() *InMemoryPreferenceStore {
	return &InMemoryPreferenceStore{theme: DefaultTheme}
}

// Theme returns the stored theme.
func (s *InMemoryPreferenceStore) Theme(context.Context) (Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme, nil
}

// SaveTheme stores the theme.
func (s *InMemoryPreferenceStore) SaveTheme(_ context.Context, theme Theme) error {
	if _, err := ParseTheme(string(theme)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return nil
}

type preferenceDocument struct {
	Theme string `yaml:"theme"`
}

// FilePreferenceStore persists preferences to a YAML file on local disk,
// the rendition of the browser's local storage key.
type FilePreferenceStore struct {
	mu   sync.Mutex
	path string
}

// NewFilePreferenceStore creates a file-backed store at path.
func NewFilePreferenceStore(path string) *FilePreferenceStore {
	return &FilePreferenceStore{path: path}
}

// Theme reads the stored theme. A missing or corrupt file degrades to the
// default theme rather than failing startup.
func (s *FilePreferenceStore) Theme(context.Context) (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultTheme, nil
		}
		return DefaultTheme, fmt.Errorf("dashboard: read preferences %s: %w", s.path, err)
	}
	var doc preferenceDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return DefaultTheme, nil
	}
	theme, err := ParseTheme(doc.Theme)
	if err != nil {
		return DefaultTheme, nil
	}
	return theme, nil
}

// SaveTheme writes the theme to disk, creating parent directories as needed.
func (s *FilePreferenceStore) SaveTheme(_ context.Context, theme Theme) error {
	if _, err := ParseTheme(string(theme)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("dashboard: mkdir %s: %w", dir, err)
		}
	}
	data, err := yaml.Marshal(preferenceDocument{Theme: string(theme)})
	if err != nil {
		return fmt.Errorf("dashboard: encode preferences: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("dashboard: write preferences %s: %w", s.path, err)
	}
	return nil
}
