package form

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Format is a form description encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForFile picks the format from a file extension.
func FormatForFile(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json":
		return FormatJSON, true
	}
	return "", false
}

// Parse decodes and checks a form description.
func Parse(data []byte, format Format) (*Form, error) {
	var f Form
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatJSON:
		err = json.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, errors.Join(ErrFailedToParseForm, err)
	}
	if err := f.Check(); err != nil {
		return nil, err
	}
	return &f, nil
}

// ParseFile reads and parses the description at name in fsys.
func ParseFile(fsys fs.FS, name string) (*Form, error) {
	format, ok := FormatForFile(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadForm, err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// Store holds form templates by name. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	forms map[string]*Form
}

// NewStore returns a store holding forms.
func NewStore(forms ...*Form) (*Store, error) {
	s := &Store{forms: make(map[string]*Form, len(forms))}
	for _, f := range forms {
		if err := s.Add(f); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// LoadDir parses every description file directly inside dir.
func LoadDir(ctx context.Context, fsys fs.FS, dir string) (*Store, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadForm, err)
	}

	s, _ := NewStore()
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		if e.IsDir() {
			continue
		}
		if _, ok := FormatForFile(e.Name()); !ok {
			continue
		}
		f, err := ParseFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		if err := s.Add(f); err != nil {
			return nil, err
		}
	}
	if s.Len() == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFormDescriptions, dir)
	}
	return s, nil
}

// Add stores f. Names must be unique.
func (s *Store) Add(f *Form) error {
	if f == nil || f.Name == "" {
		return ErrMissingFormName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.forms[f.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateForm, f.Name)
	}
	s.forms[f.Name] = f
	return nil
}

// Get returns the template named name.
func (s *Store) Get(name string) (*Form, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.forms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFormNotFound, name)
	}
	return f, nil
}

// Names returns the stored form names, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.forms))
	for name := range s.forms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of stored forms.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.forms)
}
