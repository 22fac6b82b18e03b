package pricing

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidCatalog = errors.New("invalid package catalog")
	ErrUnknownPackage = errors.New("unknown package")
)

// DefaultBasePrice applies to any package name missing from the catalog.
var DefaultBasePrice = decimal.NewFromInt(1000)

type Package struct {
	ID        int
	Name      string
	BasePrice decimal.Decimal
}

type Catalog struct {
	packages    []Package
	byID        map[int]Package
	byName      map[string]Package
	defaultBase decimal.Decimal
}

func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultBasePrice, []Package{
		{ID: 1, Name: "Bali Paradise Tour", BasePrice: decimal.NewFromInt(1200)},
		{ID: 2, Name: "European Adventure", BasePrice: decimal.NewFromInt(2500)},
		{ID: 3, Name: "Thailand Explorer", BasePrice: decimal.NewFromInt(900)},
		{ID: 4, Name: "Japan Cultural Journey", BasePrice: decimal.NewFromInt(1800)},
		{ID: 5, Name: "Australian Outback", BasePrice: decimal.NewFromInt(2200)},
		{ID: 6, Name: "Caribbean Cruise", BasePrice: decimal.NewFromInt(1500)},
		{ID: 7, Name: "African Safari", BasePrice: decimal.NewFromInt(3000)},
		{ID: 8, Name: "USA West Coast", BasePrice: decimal.NewFromInt(2000)},
	})
	if err != nil {
		panic(err)
	}
	return c
}

func NewCatalog(defaultBase decimal.Decimal, packages []Package) (*Catalog, error) {
	if !defaultBase.IsPositive() {
		return nil, fmt.Errorf("%w: default base price must be positive", ErrInvalidCatalog)
	}
	c := &Catalog{
		packages:    make([]Package, 0, len(packages)),
		byID:        make(map[int]Package, len(packages)),
		byName:      make(map[string]Package, len(packages)),
		defaultBase: defaultBase,
	}
	for _, p := range packages {
		switch {
		case p.ID <= 0:
			return nil, fmt.Errorf("%w: package %q has non-positive id", ErrInvalidCatalog, p.Name)
		case p.Name == "":
			return nil, fmt.Errorf("%w: package %d has no name", ErrInvalidCatalog, p.ID)
		case !p.BasePrice.IsPositive():
			return nil, fmt.Errorf("%w: package %q must have a positive base price", ErrInvalidCatalog, p.Name)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate package id %d", ErrInvalidCatalog, p.ID)
		}
		if _, dup := c.byName[p.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate package name %q", ErrInvalidCatalog, p.Name)
		}
		c.packages = append(c.packages, p)
		c.byID[p.ID] = p
		c.byName[p.Name] = p
	}
	slices.SortFunc(c.packages, func(a, b Package) int { return a.ID - b.ID })
	return c, nil
}

type catalogFile struct {
	DefaultBasePrice string `yaml:"default_base_price"`
	Packages         []struct {
		ID        int    `yaml:"id"`
		Name      string `yaml:"name"`
		BasePrice string `yaml:"base_price"`
	} `yaml:"packages"`
}

// LoadCatalog reads a YAML catalog. An empty path yields the built-in catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseCatalog(raw)
}

func ParseCatalog(raw []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	defaultBase := DefaultBasePrice
	if f.DefaultBasePrice != "" {
		d, err := decimal.NewFromString(f.DefaultBasePrice)
		if err != nil {
			return nil, fmt.Errorf("%w: default_base_price: %v", ErrInvalidCatalog, err)
		}
		defaultBase = d
	}

	pkgs := make([]Package, 0, len(f.Packages))
	for _, p := range f.Packages {
		base, err := decimal.NewFromString(p.BasePrice)
		if err != nil {
			return nil, fmt.Errorf("%w: base_price of %q: %v", ErrInvalidCatalog, p.Name, err)
		}
		pkgs = append(pkgs, Package{ID: p.ID, Name: p.Name, BasePrice: base})
	}
	return NewCatalog(defaultBase, pkgs)
}

func (c *Catalog) Packages() []Package {
	return slices.Clone(c.packages)
}

func (c *Catalog) ByID(id int) (Package, error) {
	p, ok := c.byID[id]
	if !ok {
		return Package{}, ErrUnknownPackage
	}
	return p, nil
}

// BasePrice is the weekly price for name, or the default for unknown names.
func (c *Catalog) BasePrice(name string) decimal.Decimal {
	if p, ok := c.byName[name]; ok {
		return p.BasePrice
	}
	return c.defaultBase
}
