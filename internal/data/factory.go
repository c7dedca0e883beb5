package data

import (
	"errors"
	"fmt"

	"github.com/udisondev/acego/internal/model"
)

// ErrUnknownTemplate is returned for a class id missing from the registry.
var ErrUnknownTemplate = errors.New("unknown item template")

// IDAllocator hands out world object ids.
type IDAllocator interface {
	Next() uint32
}

// Factory creates items from registered templates.
type Factory struct {
	templates *ItemTemplates
	ids       IDAllocator
}

// NewFactory creates a factory.
func NewFactory(templates *ItemTemplates, ids IDAllocator) *Factory {
	return &Factory{templates: templates, ids: ids}
}

// Create instantiates classID with a fresh object id.
func (f *Factory) Create(classID uint32) (*model.Item, error) {
	t, ok := f.templates.Get(classID)
	if !ok {
		return nil, fmt.Errorf("class %d: %w", classID, ErrUnknownTemplate)
	}
	return model.NewItem(f.ids.Next(), t)
}
