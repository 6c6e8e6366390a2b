package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// Adapter loads dictionaries keyed by language tag.
type Adapter interface {
	Load(ctx context.Context) (map[string]Dictionary, error)
}

// MapAdapter serves dictionaries from memory.
type MapAdapter struct {
	Data map[string]Dictionary
}

// Load implements Adapter.
func (a *MapAdapter) Load(_ context.Context) (map[string]Dictionary, error) {
	if a.Data == nil {
		return make(map[string]Dictionary), nil
	}
	return a.Data, nil
}

// FileAdapter loads dictionaries from a single file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a FileAdapter. When parser is nil it is picked
// from the file extension. Returns nil if no parser fits or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if path == "" {
		return nil
	}
	if parser == nil {
		parser = NewParserForFile(path)
	}
	if parser == nil {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// Load implements Adapter.
func (a *FileAdapter) Load(ctx context.Context) (map[string]Dictionary, error) {
	content, err := readWithContext(ctx, func() ([]byte, error) { return os.ReadFile(a.path) })
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Join(ErrLoadingFileCancelled, err)
		}
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("dictionary file '%s' is empty", a.path)
	}

	dicts, err := a.parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return dicts, nil
}

// FSAdapter loads every supported file in a directory of a file system,
// such as an embed.FS. Files are merged in lexical order (fs.ReadDir
// sorts); later files win on conflicting keys.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

// NewFSAdapter creates an FSAdapter reading dir within fsys.
// Returns nil if fsys is nil.
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir}
}

// NewDirectoryAdapter creates an FSAdapter over a directory on disk.
// Returns nil if path is empty.
func NewDirectoryAdapter(path string) *FSAdapter {
	if path == "" {
		return nil
	}
	return NewFSAdapter(os.DirFS(path), ".")
}

// Load implements Adapter.
func (a *FSAdapter) Load(ctx context.Context) (map[string]Dictionary, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]Dictionary)
	found := false
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}

		filePath := path.Join(a.dir, entry.Name())
		content, err := readWithContext(ctx, func() ([]byte, error) { return fs.ReadFile(a.fsys, filePath) })
		if err != nil {
			if ctx.Err() != nil {
				return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
			}
			return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", filePath, err))
		}
		if len(content) == 0 {
			continue
		}

		dicts, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", filePath, err))
		}
		merge(all, dicts)
		found = true
	}

	if !found {
		return nil, fmt.Errorf("%w in '%s'", ErrNoDictionaries, a.dir)
	}
	return all, nil
}

// readWithContext runs read on its own goroutine so a cancelled context
// returns promptly.
func readWithContext(ctx context.Context, read func() ([]byte, error)) ([]byte, error) {
	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = read()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-done:
		return content, readErr
	}
}

func merge(dst, src map[string]Dictionary) {
	for lang, dict := range src {
		dst[lang] = CreateLang(dst[lang], dict)
	}
}
