package data

import (
	"fmt"
	"slices"
	"sync"

	"github.com/udisondev/acego/internal/model"
)

// ItemTemplates — registry всех item templates по class id.
type ItemTemplates struct {
	mu        sync.RWMutex
	templates map[uint32]*model.ItemTemplate
}

// NewItemTemplates creates an empty registry.
func NewItemTemplates() *ItemTemplates {
	return &ItemTemplates{templates: make(map[uint32]*model.ItemTemplate)}
}

// Add registers a template. Class ids must be unique and non-zero.
func (r *ItemTemplates) Add(t *model.ItemTemplate) error {
	if t == nil || t.ClassID == 0 {
		return fmt.Errorf("item template without class id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[t.ClassID]; ok {
		return fmt.Errorf("duplicate item template %d (%s)", t.ClassID, t.Name)
	}
	r.templates[t.ClassID] = t
	return nil
}

// Get returns the template for classID.
func (r *ItemTemplates) Get(classID uint32) (*model.ItemTemplate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[classID]
	return t, ok
}

// Len returns the number of templates.
func (r *ItemTemplates) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

// All returns every template ordered by class id.
func (r *ItemTemplates) All() []*model.ItemTemplate {
	r.mu.RLock()
	out := make([]*model.ItemTemplate, 0, len(r.templates))
	for _, t := range r.templates {
		out = append(out, t)
	}
	r.mu.RUnlock()
	slices.SortFunc(out, func(a, b *model.ItemTemplate) int { return int(a.ClassID) - int(b.ClassID) })
	return out
}
