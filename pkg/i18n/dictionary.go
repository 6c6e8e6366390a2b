package i18n

import (
	"maps"
	"regexp"
	"strconv"
)

// Dictionary maps a failure cause to a message template. Templates refer
// to rule arguments positionally with $1..$9.
type Dictionary map[string]string

var placeholder = regexp.MustCompile(`\$(\d)`)

// Format renders the template stored under key. A missing key is used as
// the template itself, and a placeholder without a matching argument
// renders as the empty string.
func (d Dictionary) Format(key string, args ...string) string {
	tmpl, ok := d[key]
	if !ok {
		tmpl = key
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		idx, _ := strconv.Atoi(m[1:])
		if idx < 1 || idx > len(args) {
			return ""
		}
		return args[idx-1]
	})
}

// Has reports whether the dictionary defines key.
func (d Dictionary) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Clone returns a shallow copy. Cloning a nil dictionary yields an empty one.
func (d Dictionary) Clone() Dictionary {
	out := make(Dictionary, len(d))
	maps.Copy(out, d)
	return out
}

// CreateLang returns a new dictionary holding base with overrides applied
// on top. Neither argument is modified.
func CreateLang(base, overrides Dictionary) Dictionary {
	out := base.Clone()
	maps.Copy(out, overrides)
	return out
}
