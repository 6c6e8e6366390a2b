package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/facile/pkg/i18n"
)

func TestMapAdapter(t *testing.T) {
	t.Parallel()

	dicts, err := (&i18n.MapAdapter{}).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, dicts)

	a := &i18n.MapAdapter{Data: map[string]i18n.Dictionary{"en": {"k": "v"}}}
	dicts, err = a.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v", dicts["en"]["k"])
}

func TestFileAdapter(t *testing.T) {
	t.Parallel()

	t.Run("loads YAML with parser picked by extension", func(t *testing.T) {
		t.Parallel()
		a := i18n.NewFileAdapter(nil, filepath.Join("testdata", "locales", "en.yaml"))
		require.NotNil(t, a)

		dicts, err := a.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Fill this in", dicts["en"]["required"])
	})

	t.Run("constructor guards", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, i18n.NewFileAdapter(nil, ""))
		assert.Nil(t, i18n.NewFileAdapter(nil, "dict.toml"))
		assert.NotNil(t, i18n.NewFileAdapter(i18n.NewJSONParser(), "dict.toml"))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		a := i18n.NewFileAdapter(nil, filepath.Join("testdata", "missing.yaml"))
		_, err := a.Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		_, err := i18n.NewFileAdapter(nil, path).Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is empty")
	})

	t.Run("nested structure", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFileAdapter(nil, filepath.Join("testdata", "broken.yaml")).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
		assert.ErrorIs(t, err, i18n.ErrInvalidDictionary)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFileAdapter(nil, filepath.Join("testdata", "locales", "en.yaml")).Load(ctx)
		require.Error(t, err)
	})
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	t.Run("directory on disk", func(t *testing.T) {
		t.Parallel()
		dicts, err := i18n.NewDirectoryAdapter(filepath.Join("testdata", "locales")).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Fill this in", dicts["en"]["required"])
		assert.Equal(t, "La longitud mínima es $1", dicts["es"]["min-length"])
	})

	t.Run("later files override earlier ones", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"locales/a.yaml": {Data: []byte("en:\n  required: first\n  keep: kept\n")},
			"locales/b.json": {Data: []byte(`{"en": {"required": "second"}}`)},
			"locales/c.txt":  {Data: []byte("skip")},
		}
		dicts, err := i18n.NewFSAdapter(fsys, "locales").Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "second", dicts["en"]["required"])
		assert.Equal(t, "kept", dicts["en"]["keep"])
	})

	t.Run("no supported files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"locales/readme.md": {Data: []byte("#")}}
		_, err := i18n.NewFSAdapter(fsys, "locales").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoDictionaries)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSAdapter(fstest.MapFS{}, "nope").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDirectory)
	})

	t.Run("parse failure", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"bad.json": {Data: []byte("{")}}
		_, err := i18n.NewFSAdapter(fsys, "").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("constructor guards", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, i18n.NewFSAdapter(nil, "x"))
		assert.Nil(t, i18n.NewDirectoryAdapter(""))
	})
}
