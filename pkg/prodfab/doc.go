// Package prodfab provides a generic keyed object factory: construction
// functions registered under comparable identifiers, invoked on demand to
// manufacture products behind a common interface.
//
// # Basic Usage
//
// Create a factory for a product interface and register concrete types:
//
//	type Fruit interface {
//	    Name() string
//	}
//
//	plantation := prodfab.New[Fruit, string]()
//	prodfab.RegisterProduct[Apple](plantation, "Apple")
//	prodfab.RegisterProduct[Pear](plantation, "Pear")
//
//	fruit, ok := plantation.Create("Apple")
//	if ok {
//	    fmt.Println(fruit.Name()) // Output: apple
//	}
//
//	// Unknown identifiers are a checked condition, not an error:
//	_, ok = plantation.Create("Cherry") // ok == false
//
// # Custom Construction Functions
//
// Register lets callers bind arbitrary construction logic where default
// construction is not enough (parameterized setup, pooling, singletons):
//
//	plantation.Register("Pear", func() Fruit {
//	    return &Pear{Ripeness: 0.8}
//	})
//
// Registering an identifier twice silently replaces the previous entry;
// the last registration wins.
//
// # Backing Store Policy
//
// The registry container is pluggable. Any type satisfying Store
// (overwriting insert, keyed lookup, size, key enumeration, removal) can
// back a factory:
//
//	f := prodfab.New[Fruit, string](
//	    prodfab.WithStore[Fruit, string](prodfab.NewOrderedStore[string, prodfab.Constructor[Fruit]]()),
//	)
//
// The default MapStore enumerates identifiers in registration order;
// OrderedStore enumerates them sorted by key.
//
// # Ownership and Concurrency
//
// The factory owns its construction functions; every product returned by
// Create is owned by the caller, with no reference retained. Factory
// methods are not synchronized. Callers sharing one instance across
// goroutines should wrap the backing store with SyncStore:
//
//	f := prodfab.New[Fruit, string](
//	    prodfab.WithStore[Fruit, string](prodfab.NewSyncStore[string, prodfab.Constructor[Fruit]](nil)),
//	)
package prodfab
