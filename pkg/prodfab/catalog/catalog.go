// Package catalog provides declarative product catalogs for prodfab
// factories.
//
// A catalog is an ordered list of entries, each naming the identifier a
// product is registered under, the kind that selects its binding, and
// free-form parameters handed to that binding. Catalogs load from YAML or
// JSON, apply to a factory through a binding table, and can be persisted
// to a Store so a process rebuilds its registry at startup.
//
//	cat, err := catalog.FromFile("products.yaml")
//	if err != nil {
//	    return err
//	}
//	err = catalog.Apply(cat, factory, catalog.Bindings[Widget]{
//	    "gear": func(p catalog.Params) (prodfab.Constructor[Widget], error) {
//	        teeth := p.Int("teeth", 8)
//	        return func() Widget { return &Gear{Teeth: teeth} }, nil
//	    },
//	})
package catalog

import "fmt"

// Entry describes one product registration.
type Entry struct {
	// ID is the identifier the product is registered under.
	ID string `yaml:"id" json:"id"`

	// Kind selects the binding used to build the construction function.
	Kind string `yaml:"kind" json:"kind"`

	// Disabled entries stay in the catalog but are never registered.
	Disabled bool `yaml:"disabled,omitempty" json:"disabled,omitempty"`

	// Params is passed to the binding as-is.
	Params map[string]any `yaml:"params,omitempty" json:"params,omitempty"`
}

// Catalog is an ordered list of product entries.
type Catalog struct {
	Products []Entry `yaml:"products" json:"products"`
}

// Validate checks that every entry has an id and a kind.
//
// Duplicate ids are allowed: entries apply in catalog order, so the last
// one wins, matching the factory's overwrite policy.
func (c Catalog) Validate() error {
	for i, e := range c.Products {
		if e.ID == "" {
			return fmt.Errorf("catalog entry %d: %w", i, ErrMissingID)
		}
		if e.Kind == "" {
			return fmt.Errorf("catalog entry %d (%s): %w", i, e.ID, ErrMissingKind)
		}
	}
	return nil
}
