package i18n

import "sync"

// DefaultLanguage is used when nothing better is known.
const DefaultLanguage = LangEnglish

var current = struct {
	mu   sync.RWMutex
	dict Dictionary
}{dict: english}

// SetCurrent replaces the process-wide dictionary used to format messages.
// A nil dictionary restores English.
func SetCurrent(d Dictionary) {
	current.mu.Lock()
	defer current.mu.Unlock()
	if d == nil {
		d = english
	}
	current.dict = d
}

// Current returns the process-wide dictionary.
func Current() Dictionary {
	current.mu.RLock()
	defer current.mu.RUnlock()
	return current.dict
}

// Format formats key with the current dictionary.
func Format(key string, args ...string) string {
	return Current().Format(key, args...)
}
