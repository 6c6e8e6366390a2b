package i18n_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/facile/pkg/i18n"
)

type failingAdapter struct{}

func (failingAdapter) Load(context.Context) (map[string]i18n.Dictionary, error) {
	return nil, errors.New("boom")
}

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	c, err := i18n.NewCatalog("")
	require.NoError(t, err)
	assert.Equal(t, "en", c.Default())
	assert.Equal(t, []string{"en", "cs", "de", "fa", "fr", "it", "nl", "zh"}, c.Languages())

	_, err = i18n.NewCatalog("xx")
	assert.ErrorIs(t, err, i18n.ErrUnknownLanguage)
}

func TestCatalog_Negotiate(t *testing.T) {
	t.Parallel()

	c, err := i18n.NewCatalog("en")
	require.NoError(t, err)

	tests := []struct {
		preference string
		want       string
	}{
		{"", "en"},
		{"fr", "fr"},
		{"de-AT", "de"},
		{"fr-CA,fr;q=0.9,en;q=0.8", "fr"},
		{"es, fa;q=0.5", "fa"},
		{"ja", "en"},
		{"zh-CN", "zh"},
		{"nl-BE", "nl"},
		{"it-CH,en;q=0.5", "it"},
		{"!!invalid!!", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.preference, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, c.Negotiate(tt.preference))
		})
	}
}

func TestCatalog_Load(t *testing.T) {
	t.Parallel()

	c, err := i18n.NewCatalog("en")
	require.NoError(t, err)

	err = c.Load(context.Background(), i18n.NewDirectoryAdapter(filepath.Join("testdata", "locales")))
	require.NoError(t, err)

	en := c.Get("en")
	assert.Equal(t, "Fill this in", en.Format(i18n.CauseRequired))
	assert.Equal(t, "Max length is 4", en.Format(i18n.CauseMaxLength, "4"))

	es, ok := c.Lookup("es")
	require.True(t, ok)
	assert.Equal(t, "Este campo es obligatorio", es.Format(i18n.CauseRequired))
	assert.Equal(t, "es", c.Negotiate("es-MX"))

	assert.Equal(t, c.Get("en"), c.Get("zz"))

	err = c.Load(context.Background(), failingAdapter{})
	require.Error(t, err)
}

func TestCatalog_Add(t *testing.T) {
	t.Parallel()

	c, err := i18n.NewCatalog("en")
	require.NoError(t, err)

	require.NoError(t, c.Add("it", i18n.Dictionary{i18n.CauseRequired: "Campo obbligatorio"}))
	assert.Equal(t, "it", c.Negotiate("it-IT"))
	assert.Equal(t, "Campo obbligatorio", c.Get("it").Format(i18n.CauseRequired))

	assert.ErrorIs(t, c.Add("not a tag!", nil), i18n.ErrUnknownLanguage)
}
