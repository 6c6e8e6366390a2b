package cli

import (
	"context"

	"github.com/dmitrymomot/facile/pkg/i18n"
	"github.com/dmitrymomot/facile/pkg/validator"
	"github.com/dmitrymomot/facile/pkg/validator/extra"
)

// newRegistry returns the built-in rules plus the extra plugin.
func newRegistry() *validator.Registry {
	r := validator.NewRegistry()
	r.Use(extra.Plugin())
	return r
}

// loadCatalog returns the built-in dictionaries, completed with the
// English messages of the extra rules and overridden by the locale files
// in localesDir, if any.
func loadCatalog(ctx context.Context, localesDir, defaultLang string) (*i18n.Catalog, error) {
	catalog, err := i18n.NewCatalog(defaultLang)
	if err != nil {
		return nil, err
	}

	extraMessages := make(map[string]i18n.Dictionary)
	for _, lang := range catalog.Languages() {
		extraMessages[lang] = extra.En()
	}
	adapters := []i18n.Adapter{&i18n.MapAdapter{Data: extraMessages}}
	if localesDir != "" {
		adapters = append(adapters, i18n.NewDirectoryAdapter(localesDir))
	}

	if err := catalog.Load(ctx, adapters...); err != nil {
		return nil, err
	}
	return catalog, nil
}
