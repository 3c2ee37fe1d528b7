package domain

import "sort"

// Catalog is the destination -> price table offered to the passenger.
// It is built once at startup from configuration and is immutable for
// the process lifetime: every destination the form offers exists here.
type Catalog struct {
	prices map[string]int
	names  []string
}

// NewCatalog builds a catalog from a name -> price mapping. The input
// map is copied; later mutation of the argument does not affect the
// catalog.
func NewCatalog(prices map[string]int) *Catalog {
	c := &Catalog{
		prices: make(map[string]int, len(prices)),
		names:  make([]string, 0, len(prices)),
	}
	for name, price := range prices {
		c.prices[name] = price
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)
	return c
}

// Price returns the ticket price for a destination and whether the
// destination exists in the catalog.
func (c *Catalog) Price(destination string) (int, bool) {
	price, ok := c.prices[destination]
	return price, ok
}

// Names returns the destination names in lexicographic order. The
// returned slice is a copy.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Len returns the number of destinations in the catalog.
func (c *Catalog) Len() int {
	return len(c.prices)
}
