package catalog

// Store persists catalog entries so a factory can be rebuilt at startup.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores an entry, overwriting any entry with the same id.
	// An overwrite keeps the entry's original position in List order.
	Save(e Entry) error

	// Load retrieves an entry by id.
	// Returns ErrNotFound if the entry doesn't exist.
	Load(id string) (Entry, error)

	// List returns all entries in the order they were first saved.
	// Returns an empty slice (not an error) if the store is empty.
	List() ([]Entry, error)

	// Delete removes an entry.
	// Returns nil if the entry doesn't exist.
	Delete(id string) error

	// Close releases any resources (connections, files).
	Close() error
}
