// Package lexicon provides the translated string catalog used by processors.
//
// Catalogs are YAML files embedded per topic. One language, flat keys,
// `[[+name]]` placeholder interpolation.
package lexicon

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalogs/*.yaml
var catalogFS embed.FS

// Lexicon holds loaded catalog entries keyed by message id.
type Lexicon struct {
	mu      sync.RWMutex
	entries map[string]string
	loaded  map[string]bool
}

// New creates an empty Lexicon with the default topic loaded.
func New() (*Lexicon, error) {
	l := &Lexicon{
		entries: make(map[string]string),
		loaded:  make(map[string]bool),
	}
	if err := l.Load("default"); err != nil {
		return nil, err
	}
	return l, nil
}

// Load reads the named topic catalogs into the lexicon.
// Loading the same topic twice is a no-op; unknown topics are an error.
func (l *Lexicon) Load(topics ...string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, topic := range topics {
		if l.loaded[topic] {
			continue
		}
		raw, err := catalogFS.ReadFile("catalogs/" + topic + ".yaml")
		if err != nil {
			return fmt.Errorf("load lexicon topic %q: %w", topic, err)
		}
		var entries map[string]string
		if err := yaml.Unmarshal(raw, &entries); err != nil {
			return fmt.Errorf("parse lexicon topic %q: %w", topic, err)
		}
		for k, v := range entries {
			l.entries[k] = v
		}
		l.loaded[topic] = true
	}
	return nil
}

// Get returns the message for key, or the key itself when missing.
func (l *Lexicon) Get(key string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if msg, ok := l.entries[key]; ok {
		return msg
	}
	return key
}

// Format returns the message for key with `[[+name]]` placeholders replaced.
func (l *Lexicon) Format(key string, placeholders map[string]string) string {
	msg := l.Get(key)
	for name, value := range placeholders {
		msg = strings.ReplaceAll(msg, "[[+"+name+"]]", value)
	}
	return msg
}

// Has reports whether key is present in the loaded catalogs.
func (l *Lexicon) Has(key string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.entries[key]
	return ok
}
