// Package cache provides a small generic LRU cache.
//
// The validator keeps compiled regular expressions in one, keyed by the
// rule literal:
//
//	patterns := cache.NewLRU[string, *regexp2.Regexp](256)
//	re, err := patterns.GetOrLoad(literal, func() (*regexp2.Regexp, error) {
//		return regexp2.Compile(body, opts)
//	})
package cache
