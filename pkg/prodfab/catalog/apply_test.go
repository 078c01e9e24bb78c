package catalog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bao-boyle/prodfab/pkg/prodfab"
)

type widget interface {
	Describe() string
}

type gear struct {
	teeth int
}

func (g *gear) Describe() string { return fmt.Sprintf("gear with %d teeth", g.teeth) }

type lever struct{}

func (*lever) Describe() string { return "lever" }

func testBindings() Bindings[widget] {
	return Bindings[widget]{
		"gear": func(p Params) (prodfab.Constructor[widget], error) {
			teeth := p.Int("teeth", 8)
			return func() widget { return &gear{teeth: teeth} }, nil
		},
		"lever": func(p Params) (prodfab.Constructor[widget], error) {
			return func() widget { return &lever{} }, nil
		},
		"broken": func(p Params) (prodfab.Constructor[widget], error) {
			return nil, errors.New("bad params")
		},
	}
}

func TestApply(t *testing.T) {
	f := prodfab.New[widget, string]()
	c := Catalog{Products: []Entry{
		{ID: "small-gear", Kind: "gear", Params: map[string]any{"teeth": 6}},
		{ID: "big-gear", Kind: "gear", Params: map[string]any{"teeth": 24}},
		{ID: "lever", Kind: "lever"},
	}}

	require.NoError(t, Apply(c, f, testBindings()))

	assert.Equal(t, 3, f.ProductCount())

	w, ok := f.Create("small-gear")
	require.True(t, ok)
	assert.Equal(t, "gear with 6 teeth", w.Describe())

	w, ok = f.Create("big-gear")
	require.True(t, ok)
	assert.Equal(t, "gear with 24 teeth", w.Describe())
}

func TestApplySkipsDisabled(t *testing.T) {
	f := prodfab.New[widget, string]()
	c := Catalog{Products: []Entry{
		{ID: "lever", Kind: "lever"},
		{ID: "old-gear", Kind: "gear", Disabled: true},
	}}

	require.NoError(t, Apply(c, f, testBindings()))

	assert.Equal(t, 1, f.ProductCount())
	assert.False(t, f.Has("old-gear"))
}

func TestApplyUnknownKind(t *testing.T) {
	f := prodfab.New[widget, string]()
	c := Catalog{Products: []Entry{
		{ID: "lever", Kind: "lever"},
		{ID: "mystery", Kind: "sprocket"},
	}}

	err := Apply(c, f, testBindings())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKind)

	var bindErr *BindError
	require.ErrorAs(t, err, &bindErr)
	assert.Equal(t, "mystery", bindErr.ID)
	assert.Equal(t, "sprocket", bindErr.Kind)

	// Entries before the failure stay registered
	assert.True(t, f.Has("lever"))
}

func TestApplyBindingError(t *testing.T) {
	f := prodfab.New[widget, string]()
	c := Catalog{Products: []Entry{
		{ID: "bad", Kind: "broken"},
	}}

	err := Apply(c, f, testBindings())
	require.Error(t, err)

	var bindErr *BindError
	require.ErrorAs(t, err, &bindErr)
	assert.EqualError(t, bindErr.Err, "bad params")
}

func TestApplyDuplicateIDLastWins(t *testing.T) {
	f := prodfab.New[widget, string]()
	c := Catalog{Products: []Entry{
		{ID: "w", Kind: "gear", Params: map[string]any{"teeth": 6}},
		{ID: "w", Kind: "lever"},
	}}

	require.NoError(t, Apply(c, f, testBindings()))

	assert.Equal(t, 1, f.ProductCount())
	w, ok := f.Create("w")
	require.True(t, ok)
	assert.Equal(t, "lever", w.Describe())
}

func TestApplyValidates(t *testing.T) {
	f := prodfab.New[widget, string]()
	c := Catalog{Products: []Entry{
		{Kind: "lever"},
	}}

	assert.ErrorIs(t, Apply(c, f, testBindings()), ErrMissingID)
}

func TestSaveAllAndRestore(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	c := Catalog{Products: []Entry{
		{ID: "small-gear", Kind: "gear", Params: map[string]any{"teeth": 6}},
		{ID: "lever", Kind: "lever"},
	}}
	require.NoError(t, SaveAll(store, c))

	f := prodfab.New[widget, string]()
	require.NoError(t, Restore(store, f, testBindings()))

	assert.Equal(t, 2, f.ProductCount())
	w, ok := f.Create("small-gear")
	require.True(t, ok)
	assert.Equal(t, "gear with 6 teeth", w.Describe())
}

func TestRestoreUnknownKind(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	require.NoError(t, store.Save(Entry{ID: "mystery", Kind: "sprocket"}))

	f := prodfab.New[widget, string]()
	err := Restore(store, f, testBindings())
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestRestoreFromClosedStore(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Close())

	f := prodfab.New[widget, string]()
	err := Restore(store, f, testBindings())
	assert.ErrorIs(t, err, ErrStoreClosed)
}
