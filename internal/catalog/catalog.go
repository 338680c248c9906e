// Package catalog holds the destination catalog: display metadata and base
// nightly price per destination, and the cabin class multipliers. A default
// catalog is embedded; an override file in the same TOML shape may replace it.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"

	"github.com/papapumpkin/astrostay/internal/booking"
)

//go:embed default.toml
var defaultTOML []byte

// ErrInvalidCatalog is wrapped by every validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Experience is a bookable on-site activity.
type Experience struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// Destination is one catalog entry.
type Destination struct {
	Key         booking.Destination `toml:"-"`
	Name        string              `toml:"name"`
	Tagline     string              `toml:"tagline"`
	Price       float64             `toml:"price"`
	TravelTime  string              `toml:"travel_time"`
	BestTime    string              `toml:"best_time"`
	Capacity    string              `toml:"capacity"`
	Rating      string              `toml:"rating"`
	Description string              `toml:"description"`
	Features    []string            `toml:"features"`
	Amenities   []string            `toml:"amenities"`
	Experiences []Experience        `toml:"experiences"`
}

// PricePerNight returns the base price per traveler per night.
func (d Destination) PricePerNight() decimal.Decimal {
	return decimal.NewFromFloat(d.Price)
}

// Catalog is the destination table plus class multipliers.
type Catalog struct {
	Destinations map[string]Destination `toml:"destinations"`
	Classes      map[string]float64     `toml:"classes"`
}

// Default returns the embedded catalog. It panics only if the embedded file
// is broken, which the package tests rule out.
func Default() *Catalog {
	c, err := Parse(defaultTOML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded default: %v", err))
	}
	return c
}

// Load reads and validates a catalog override file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates catalog TOML. Unknown fields are rejected so
// that typos in an override file do not silently fall back to zero prices.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	for key, d := range c.Destinations {
		d.Key = booking.Destination(key)
		d.Description = strings.TrimSpace(d.Description)
		c.Destinations[key] = d
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	var errs []error
	for key, d := range c.Destinations {
		if _, err := booking.ParseDestination(key); err != nil {
			errs = append(errs, fmt.Errorf("%w: destination %q: %w", ErrInvalidCatalog, key, err))
			continue
		}
		if d.Price <= 0 {
			errs = append(errs, fmt.Errorf("%w: destination %q: price must be positive", ErrInvalidCatalog, key))
		}
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("%w: destination %q: name is required", ErrInvalidCatalog, key))
		}
	}
	for _, key := range booking.Destinations {
		if _, ok := c.Destinations[string(key)]; !ok {
			errs = append(errs, fmt.Errorf("%w: destination %q missing", ErrInvalidCatalog, key))
		}
	}
	for key, m := range c.Classes {
		if _, ok := booking.ParseCabinClass(key); !ok {
			errs = append(errs, fmt.Errorf("%w: unknown cabin class %q", ErrInvalidCatalog, key))
			continue
		}
		if m <= 0 {
			errs = append(errs, fmt.Errorf("%w: cabin class %q: multiplier must be positive", ErrInvalidCatalog, key))
		}
	}
	for _, key := range booking.CabinClasses {
		if _, ok := c.Classes[string(key)]; !ok {
			errs = append(errs, fmt.Errorf("%w: cabin class %q missing", ErrInvalidCatalog, key))
		}
	}
	return errors.Join(errs...)
}

// Destination returns the entry for key.
func (c *Catalog) Destination(key booking.Destination) (Destination, bool) {
	d, ok := c.Destinations[string(key)]
	return d, ok
}

// BasePrice returns the nightly base price for key.
func (c *Catalog) BasePrice(key booking.Destination) (decimal.Decimal, bool) {
	d, ok := c.Destination(key)
	if !ok {
		return decimal.Zero, false
	}
	return d.PricePerNight(), true
}

// Multiplier returns the price multiplier for class. Unknown classes price
// as standard.
func (c *Catalog) Multiplier(class booking.CabinClass) decimal.Decimal {
	if m, ok := c.Classes[string(class)]; ok {
		return decimal.NewFromFloat(m)
	}
	if m, ok := c.Classes[string(booking.Standard)]; ok {
		return decimal.NewFromFloat(m)
	}
	return decimal.NewFromInt(1)
}

// List returns the destinations in display order.
func (c *Catalog) List() []Destination {
	out := make([]Destination, 0, len(booking.Destinations))
	for _, key := range booking.Destinations {
		if d, ok := c.Destination(key); ok {
			out = append(out, d)
		}
	}
	return out
}

// Keys returns the destination keys present in the catalog, in display order.
func (c *Catalog) Keys() []booking.Destination {
	list := c.List()
	out := make([]booking.Destination, len(list))
	for i, d := range list {
		out[i] = d.Key
	}
	return out
}
