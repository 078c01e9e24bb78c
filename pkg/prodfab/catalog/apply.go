package catalog

import (
	"fmt"

	"github.com/bao-boyle/prodfab/pkg/prodfab"
)

// Binding builds a construction function from entry parameters.
type Binding[T any] func(p Params) (prodfab.Constructor[T], error)

// Bindings maps catalog kinds to bindings.
type Bindings[T any] map[string]Binding[T]

// Apply registers every enabled catalog entry on f.
//
// Entries apply in catalog order, so a duplicate id follows the factory's
// last-registration-wins policy. Disabled entries are skipped. An unknown
// kind or a failing binding stops the walk and returns a *BindError;
// entries applied before the failure stay registered.
func Apply[T any](c Catalog, f *prodfab.Factory[T, string], b Bindings[T]) error {
	if err := c.Validate(); err != nil {
		return err
	}
	for _, e := range c.Products {
		if e.Disabled {
			continue
		}
		binding, ok := b[e.Kind]
		if !ok {
			return &BindError{ID: e.ID, Kind: e.Kind, Err: ErrUnknownKind}
		}
		fn, err := binding(NewParams(e.Params))
		if err != nil {
			return &BindError{ID: e.ID, Kind: e.Kind, Err: err}
		}
		f.Register(e.ID, fn)
	}
	return nil
}

// Restore loads every entry from s and applies it to f.
// Entries apply in the order they were first saved.
func Restore[T any](s Store, f *prodfab.Factory[T, string], b Bindings[T]) error {
	entries, err := s.List()
	if err != nil {
		return fmt.Errorf("list catalog entries: %w", err)
	}
	return Apply(Catalog{Products: entries}, f, b)
}

// SaveAll persists every catalog entry to s, overwriting by id.
func SaveAll(s Store, c Catalog) error {
	if err := c.Validate(); err != nil {
		return err
	}
	for _, e := range c.Products {
		if err := s.Save(e); err != nil {
			return fmt.Errorf("save catalog entry %s: %w", e.ID, err)
		}
	}
	return nil
}
