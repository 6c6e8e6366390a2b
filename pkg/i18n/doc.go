// Package i18n holds the message dictionaries used to render validation
// failures.
//
// A Dictionary maps a failure cause such as "min-length" to a template.
// Templates refer to the failing rule's arguments as $1..$9:
//
//	i18n.En().Format(i18n.CauseMinLength, "3") // "Min length is 3"
//
// Unknown keys are used verbatim as their own template, and placeholders
// without an argument render empty.
//
// Built-in dictionaries exist for English, Persian, French and German.
// CreateLang derives a dictionary from a base with per-key overrides.
// SetCurrent swaps the process-wide dictionary read by Format and Current.
//
// # Loading and negotiation
//
// Dictionaries can be loaded from YAML or JSON documents whose root maps
// language tags to flat objects:
//
//	en:
//	  required: "Fill this in"
//
// MapAdapter, FileAdapter and FSAdapter (including NewDirectoryAdapter and
// embed.FS sources) implement Adapter. A Catalog merges them onto the
// built-ins and negotiates the closest language for a client using
// golang.org/x/text/language. Middleware stores the negotiated language and
// dictionary in the request context.
package i18n
