package prodfab

import "fmt"

// Constructor produces one instance of a product. A factory owns the
// constructors registered with it and invokes them verbatim on Create.
type Constructor[T any] func() T

// RegisterProduct registers the default-construction path for C under id:
// Create(id) returns a fresh *C upcast to the product type T.
//
// T must be an interface type satisfied by *C; RegisterProduct panics at
// registration time otherwise, which is the earliest point the mistake is
// observable. Use Factory.Register for non-interface product types or any
// construction beyond new(C).
//
// Like Register, an existing entry under id is silently replaced.
//
// Example:
//
//	plantation := prodfab.New[Fruit, string]()
//	prodfab.RegisterProduct[Apple](plantation, "Apple")
func RegisterProduct[C any, T any, K comparable](f *Factory[T, K], id K) {
	if _, ok := any(new(C)).(T); !ok {
		panic(fmt.Sprintf("prodfab: %T does not implement the product type", new(C)))
	}
	f.Register(id, func() T {
		return any(new(C)).(T)
	})
}
