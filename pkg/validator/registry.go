package validator

import (
	"maps"
	"sort"
	"sync"
)

// Plugin registers any number of rules in one step.
type Plugin func(r *Registry)

// Registry maps rule names to rule functions. Names are normalized with
// ToCamelCase, so "alpha-num" and "alphaNum" share an entry.
// All methods are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]RuleFunc
}

// Builtins returns the built-in rule table.
func Builtins() map[string]RuleFunc {
	return map[string]RuleFunc{
		"accepted":     Accepted,
		"alpha":        Alpha,
		"alphaNum":     AlphaNum,
		"alphaNumDash": AlphaNumDash,
		"between":      Between,
		"digits":       Digits,
		"email":        Email,
		"endsWith":     EndsWith,
		"in":           In,
		"int":          Integer,
		"integer":      Integer,
		"max":          Max,
		"min":          Min,
		"numDash":      NumDash,
		"number":       Number,
		"regex":        Regex,
		"required":     Required,
		"requiredIf":   RequiredIf,
		"size":         Size,
		"startsWith":   StartsWith,
		"within":       In,
	}
}

// NewRegistry returns a registry preloaded with the built-in rules.
func NewRegistry() *Registry {
	return &Registry{rules: Builtins()}
}

// NewEmptyRegistry returns a registry with no rules.
func NewEmptyRegistry() *Registry {
	return &Registry{rules: make(map[string]RuleFunc)}
}

// Add registers fn under name, replacing any previous function.
// Nil functions are ignored.
func (r *Registry) Add(name string, fn RuleFunc) {
	if name == "" || fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[ToCamelCase(name)] = fn
}

// Remove deletes the rule registered under name.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rules, ToCamelCase(name))
}

// Lookup returns the function registered under name.
func (r *Registry) Lookup(name string) (RuleFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.rules[ToCamelCase(name)]
	return fn, ok
}

// Use runs plugin against r. Nil plugins are ignored.
func (r *Registry) Use(plugin Plugin) {
	if plugin != nil {
		plugin(r)
	}
}

// Names returns the registered rule names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset restores the built-in rule table.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = Builtins()
}

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return &Registry{rules: maps.Clone(r.rules)}
}

var global = NewRegistry()

// Global returns the process-wide registry shared by every Validator that
// was not given its own registry.
func Global() *Registry {
	return global
}

// AddRule registers fn in the global registry. The change is visible to
// existing and future validators.
func AddRule(name string, fn RuleFunc) {
	global.Add(name, fn)
}

// Use runs plugin against the global registry.
func Use(plugin Plugin) {
	global.Use(plugin)
}
