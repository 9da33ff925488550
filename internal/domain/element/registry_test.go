package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/periodic-combinator/pkg/errors"
)

func hydrogen() Element {
	return Element{Symbol: "H", Name: "Hydrogen", AtomicNumber: 1, AtomicMass: 1.008,
		ElectronConfig: "1s1", Shells: []int{1}, Category: CategoryNonmetal}
}

func oxygen() Element {
	return Element{Symbol: "O", Name: "Oxygen", AtomicNumber: 8, AtomicMass: 15.999,
		ElectronConfig: "1s2 2s2 2p4", Shells: []int{2, 6}, Category: CategoryNonmetal}
}

func sodium() Element {
	return Element{Symbol: "Na", Name: "Sodium", AtomicNumber: 11, AtomicMass: 22.990,
		ElectronConfig: "[Ne] 3s1", Shells: []int{2, 8, 1}, Category: CategoryAlkaliMetal}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry([]Element{sodium(), hydrogen(), oxygen()})
	require.NoError(t, err)
	return r
}

func TestNewRegistry_OrdersByAtomicNumber(t *testing.T) {
	r := newTestRegistry(t)
	require.Equal(t, 3, r.Len())

	var symbols []string
	for _, e := range r.All() {
		symbols = append(symbols, e.Symbol)
	}
	assert.Equal(t, []string{"H", "O", "Na"}, symbols)
}

func TestNewRegistry_Empty(t *testing.T) {
	r, err := NewRegistry(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())
	_, ok := r.Lookup("H")
	assert.False(t, ok)
}

func TestNewRegistry_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		records []Element
		code    errors.ErrorCode
	}{
		{"duplicate symbol", []Element{hydrogen(), hydrogen()}, errors.CodeDuplicateKey},
		{"duplicate number", []Element{hydrogen(), func() Element {
			e := oxygen()
			e.AtomicNumber = 1
			return e
		}()}, errors.CodeDuplicateKey},
		{"lowercase symbol", []Element{func() Element {
			e := hydrogen()
			e.Symbol = "h"
			return e
		}()}, errors.CodeInvalidRecord},
		{"long symbol", []Element{func() Element {
			e := hydrogen()
			e.Symbol = "Hydr"
			return e
		}()}, errors.CodeInvalidRecord},
		{"missing name", []Element{func() Element {
			e := hydrogen()
			e.Name = ""
			return e
		}()}, errors.CodeInvalidRecord},
		{"zero number", []Element{func() Element {
			e := hydrogen()
			e.AtomicNumber = 0
			return e
		}()}, errors.CodeInvalidRecord},
		{"negative mass", []Element{func() Element {
			e := hydrogen()
			e.AtomicMass = -1
			return e
		}()}, errors.CodeInvalidRecord},
		{"no shells", []Element{func() Element {
			e := hydrogen()
			e.Shells = nil
			return e
		}()}, errors.CodeInvalidRecord},
		{"zero shell", []Element{func() Element {
			e := oxygen()
			e.Shells = []int{2, 0}
			return e
		}()}, errors.CodeInvalidRecord},
		{"unknown category", []Element{func() Element {
			e := hydrogen()
			e.Category = "gas"
			return e
		}()}, errors.CodeInvalidRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegistry(tt.records)
			assert.Nil(t, r)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code), "got %v", err)
		})
	}
}

func TestLookup(t *testing.T) {
	r := newTestRegistry(t)

	e, ok := r.Lookup("Na")
	require.True(t, ok)
	assert.Equal(t, "Sodium", e.Name)
	assert.Equal(t, 11, e.AtomicNumber)
	assert.Equal(t, []int{2, 8, 1}, e.Shells)

	_, ok = r.Lookup("na")
	assert.False(t, ok, "symbols are case-sensitive")
	_, ok = r.Lookup("")
	assert.False(t, ok)
	_, ok = r.Lookup("Xx")
	assert.False(t, ok)
}

func TestLookup_RepeatedLookupsAreEqual(t *testing.T) {
	r := newTestRegistry(t)
	first, _ := r.Lookup("O")
	second, _ := r.Lookup("O")
	assert.Equal(t, first, second)
}

func TestLookup_ReturnsCopy(t *testing.T) {
	r := newTestRegistry(t)
	e, _ := r.Lookup("O")
	e.Shells[0] = 99
	e.Name = "Mutated"

	again, _ := r.Lookup("O")
	assert.Equal(t, []int{2, 6}, again.Shells)
	assert.Equal(t, "Oxygen", again.Name)

	all := r.All()
	all[1].Shells[1] = 42
	again, _ = r.Lookup("O")
	assert.Equal(t, 6, again.Shells[1])
}

func TestNewRegistry_DoesNotAliasInput(t *testing.T) {
	records := []Element{hydrogen()}
	r, err := NewRegistry(records)
	require.NoError(t, err)

	records[0].Shells[0] = 7
	e, _ := r.Lookup("H")
	assert.Equal(t, []int{1}, e.Shells)
}

func TestLookupNumberAndContains(t *testing.T) {
	r := newTestRegistry(t)

	e, ok := r.LookupNumber(8)
	require.True(t, ok)
	assert.Equal(t, "O", e.Symbol)
	_, ok = r.LookupNumber(2)
	assert.False(t, ok)

	assert.True(t, r.Contains("H"))
	assert.False(t, r.Contains("He"))
}

func TestShellTotal(t *testing.T) {
	assert.Equal(t, 11, sodium().ShellTotal())
	assert.Equal(t, 0, Element{}.ShellTotal())
}

func TestValidSymbol(t *testing.T) {
	assert.True(t, ValidSymbol("H"))
	assert.True(t, ValidSymbol("Na"))
	assert.True(t, ValidSymbol("Uue"))
	assert.False(t, ValidSymbol(""))
	assert.False(t, ValidSymbol("NA"))
	assert.False(t, ValidSymbol("*La"))
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("").Valid())
}
