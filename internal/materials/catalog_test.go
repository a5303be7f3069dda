package materials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_CatalogOrderAndValues(t *testing.T) {
	list := List()
	require.Len(t, list, 4)

	assert.Equal(t, "Steel", list[0].Name)
	assert.Equal(t, 250.0, list[0].YieldStrength)
	assert.Equal(t, "Aluminum", list[1].Name)
	assert.Equal(t, 150.0, list[1].YieldStrength)
	assert.Equal(t, "Titanium", list[2].Name)
	assert.Equal(t, 900.0, list[2].YieldStrength)
	assert.Equal(t, "Cast Iron", list[3].Name)
	assert.Equal(t, 300.0, list[3].YieldStrength)
}

func TestList_ReturnsCopy(t *testing.T) {
	list := List()
	list[0].YieldStrength = 1

	m, err := Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, 250.0, m.YieldStrength)
}

func TestLookup(t *testing.T) {
	m, err := Lookup(3)
	require.NoError(t, err)
	assert.Equal(t, "Titanium", m.Name)

	for _, idx := range []int{0, -1, 5} {
		_, err := Lookup(idx)
		assert.ErrorIs(t, err, ErrInvalidSelection, "index %d", idx)
	}
}

func TestByName(t *testing.T) {
	m, err := ByName("  cast iron ")
	require.NoError(t, err)
	assert.Equal(t, 300.0, m.YieldStrength)

	_, err = ByName("unobtainium")
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestStronger(t *testing.T) {
	names := func(ms []Material) []string {
		var out []string
		for _, m := range ms {
			out = append(out, m.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Titanium", "Cast Iron"}, names(Stronger(250)))
	assert.Equal(t, []string{"Steel", "Titanium", "Cast Iron"}, names(Stronger(150)))
	assert.Empty(t, Stronger(900))
	// strictly greater
	assert.Equal(t, []string{"Titanium"}, names(Stronger(300)))
}
