package i18n

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"golang.org/x/text/language"
)

// Catalog holds the dictionaries available to a server and negotiates the
// best one for a client. It starts with the built-ins.
type Catalog struct {
	mu          sync.RWMutex
	defaultLang string
	dicts       map[string]Dictionary
	langs       []string
	matcher     language.Matcher
}

// NewCatalog returns a catalog of the built-in dictionaries with
// defaultLang as fallback. defaultLang must name a known dictionary.
func NewCatalog(defaultLang string) (*Catalog, error) {
	if defaultLang == "" {
		defaultLang = DefaultLanguage
	}
	c := &Catalog{
		defaultLang: defaultLang,
		dicts:       Builtins(),
	}
	if _, ok := c.dicts[defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, defaultLang)
	}
	if err := c.rebuild(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load merges dictionaries from each adapter onto the catalog. Loaded
// entries override built-in ones per key.
func (c *Catalog) Load(ctx context.Context, adapters ...Adapter) error {
	loaded := make(map[string]Dictionary)
	for _, a := range adapters {
		if a == nil {
			continue
		}
		dicts, err := a.Load(ctx)
		if err != nil {
			return err
		}
		merge(loaded, dicts)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	prev := maps.Clone(c.dicts)
	merge(c.dicts, loaded)
	if err := c.rebuild(); err != nil {
		c.dicts = prev
		_ = c.rebuild()
		return err
	}
	return nil
}

// Add registers or replaces the dictionary for lang.
func (c *Catalog) Add(lang string, d Dictionary) error {
	if _, err := language.Parse(lang); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownLanguage, lang)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dicts[lang] = d.Clone()
	return c.rebuild()
}

// Get returns the dictionary for lang, falling back to the default.
func (c *Catalog) Get(lang string) Dictionary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if d, ok := c.dicts[lang]; ok {
		return d
	}
	return c.dicts[c.defaultLang]
}

// Lookup returns the dictionary for lang without fallback.
func (c *Catalog) Lookup(lang string) (Dictionary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.dicts[lang]
	return d, ok
}

// Default returns the fallback language.
func (c *Catalog) Default() string {
	return c.defaultLang
}

// Languages lists the catalog's languages, default first.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.langs)
}

// Negotiate picks the closest catalog language for preference, which may
// be a single tag or an Accept-Language header value. Unparseable or
// unmatched preferences yield the default language.
func (c *Catalog) Negotiate(preference string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if preference == "" {
		return c.defaultLang
	}
	desired, _, err := language.ParseAcceptLanguage(preference)
	if err != nil || len(desired) == 0 {
		return c.defaultLang
	}
	_, idx, conf := c.matcher.Match(desired...)
	if conf == language.No || idx < 0 || idx >= len(c.langs) {
		return c.defaultLang
	}
	return c.langs[idx]
}

// rebuild must be called with c.mu held for writing (or before c escapes).
func (c *Catalog) rebuild() error {
	langs := make([]string, 0, len(c.dicts))
	langs = append(langs, c.defaultLang)
	others := slices.Sorted(maps.Keys(c.dicts))
	for _, l := range others {
		if l != c.defaultLang {
			langs = append(langs, l)
		}
	}

	tags := make([]language.Tag, len(langs))
	for i, l := range langs {
		tag, err := language.Parse(l)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownLanguage, l)
		}
		tags[i] = tag
	}

	c.langs = langs
	c.matcher = language.NewMatcher(tags)
	return nil
}
