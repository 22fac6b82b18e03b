//go:build unit

package pricing_test

import (
	"testing"

	"travel-backoffice/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := pricing.DefaultCatalog()

	pkgs := c.Packages()
	require.Len(t, pkgs, 8)
	assert.Equal(t, "Bali Paradise Tour", pkgs[0].Name)
	assert.Equal(t, "USA West Coast", pkgs[7].Name)

	p, err := c.ByID(7)
	require.NoError(t, err)
	assert.Equal(t, "African Safari", p.Name)

	_, err = c.ByID(99)
	assert.ErrorIs(t, err, pricing.ErrUnknownPackage)

	assert.True(t, c.BasePrice("Caribbean Cruise").Equal(decimal.NewFromInt(1500)))
	assert.True(t, c.BasePrice("caribbean cruise").Equal(pricing.DefaultBasePrice), "lookup is exact")
}

func TestParseCatalog(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		raw := []byte(`
default_base_price: "750"
packages:
  - id: 2
    name: Iceland Ring Road
    base_price: "2100.50"
  - id: 1
    name: Nile Cruise
    base_price: "1400"
`)
		c, err := pricing.ParseCatalog(raw)
		require.NoError(t, err)

		pkgs := c.Packages()
		require.Len(t, pkgs, 2)
		assert.Equal(t, 1, pkgs[0].ID, "packages are ordered by id")
		assert.Equal(t, "2100.5", c.BasePrice("Iceland Ring Road").String())
		assert.Equal(t, "750", c.BasePrice("Anything Else").String())
	})

	invalid := []struct {
		name string
		raw  string
	}{
		{name: "duplicate id", raw: "packages:\n  - {id: 1, name: A, base_price: '1'}\n  - {id: 1, name: B, base_price: '1'}\n"},
		{name: "duplicate name", raw: "packages:\n  - {id: 1, name: A, base_price: '1'}\n  - {id: 2, name: A, base_price: '1'}\n"},
		{name: "zero price", raw: "packages:\n  - {id: 1, name: A, base_price: '0'}\n"},
		{name: "bad number", raw: "packages:\n  - {id: 1, name: A, base_price: 'abc'}\n"},
		{name: "negative default", raw: "default_base_price: '-1'\n"},
		{name: "malformed yaml", raw: "packages: [\n"},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pricing.ParseCatalog([]byte(tc.raw))
			assert.ErrorIs(t, err, pricing.ErrInvalidCatalog)
		})
	}
}
