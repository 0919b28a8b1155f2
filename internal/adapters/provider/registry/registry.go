// Package registry holds named constructors for the simple (fixed-direction)
// translation providers. The factory is its only consumer; registering a new
// provider here is all it takes to make a tag selectable.
package registry

import (
	"sync"

	"github.com/TUNA-NOPE/ShiftLang/internal/ports"
)

// Options carries the per-provider configuration a builder may need.
type Options struct {
	APIKey  string
	BaseURL string
}

// Builder constructs a fixed-direction backend for a language pair. from may
// be "auto" for providers that detect the input language on the wire.
type Builder func(opts Options, from, to string) ports.Translator

type Registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
	// auto records which tags support from == "auto".
	auto map[string]bool
}

func New() *Registry {
	return &Registry{builders: make(map[string]Builder), auto: make(map[string]bool)}
}

// Register adds a builder under tag. autoDetect marks providers whose wire
// protocol can identify the input language itself.
func (r *Registry) Register(tag string, autoDetect bool, b Builder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[tag] = b
	r.auto[tag] = autoDetect
}

func (r *Registry) Get(tag string) (Builder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.builders[tag]
	return b, ok
}

// SupportsAuto reports whether the tagged provider accepts "auto" as the
// source language.
func (r *Registry) SupportsAuto(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.auto[tag]
}

func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.builders))
	for tag := range r.builders {
		out = append(out, tag)
	}
	return out
}
