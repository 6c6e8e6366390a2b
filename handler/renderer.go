package handler

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrymomot/facile/pkg/i18n"
	"github.com/dmitrymomot/facile/pkg/validator"
)

// PatchRenderer is a validator.Renderer that collects one message patch
// per field. Clear resets every field of the container to an empty list,
// so fields fixed since the last pass get their messages removed.
type PatchRenderer struct {
	dict i18n.Dictionary

	mu       sync.Mutex
	order    []string
	messages map[string][]string
}

var _ validator.Renderer = (*PatchRenderer)(nil)

// NewPatchRenderer returns a renderer localizing messages with dict.
func NewPatchRenderer(dict i18n.Dictionary) *PatchRenderer {
	return &PatchRenderer{dict: dict, messages: make(map[string][]string)}
}

func (p *PatchRenderer) Clear(_ context.Context, c validator.Container) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.order = p.order[:0]
	clear(p.messages)
	for _, f := range c.Fields() {
		p.order = append(p.order, f.Name())
		p.messages[f.Name()] = nil
	}
}

// Render receives errs most recent first and stores them in rule order.
func (p *PatchRenderer) Render(_ context.Context, _ validator.Container, f validator.Field, errs []validator.FieldError) {
	ordered := slices.Clone(errs)
	slices.Reverse(ordered)

	msgs := make([]string, 0, len(ordered))
	for _, fe := range ordered {
		msgs = append(msgs, fe.Localize(p.dict))
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.messages[f.Name()]; !ok {
		p.order = append(p.order, f.Name())
	}
	p.messages[f.Name()] = msgs
}

// Messages returns the failing fields' messages.
func (p *PatchRenderer) Messages() map[string][]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string][]string, len(p.messages))
	for id, msgs := range p.messages {
		if len(msgs) > 0 {
			out[id] = slices.Clone(msgs)
		}
	}
	return out
}

// Patches returns one patch per field in container order.
func (p *PatchRenderer) Patches() []TemplPatch {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]TemplPatch, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, Patch(FieldErrors(id, p.messages[id]), WithTarget("#"+ErrorsID(id))))
	}
	return out
}
