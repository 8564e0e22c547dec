// Package quote - Quote queries over the price catalog
// Every query is a pure function of the catalog and its arguments:
// look up one record, derive a new result, touch nothing else.
package quote

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"siteflow-quote/core/catalog"
	"siteflow-quote/internal/logging"
)

// Ownership identifiers accepted by ProjectCost
const (
	OwnershipLicense = "license"
	OwnershipShared  = "shared"
	OwnershipFull    = "full"
)

// ownershipNames maps external identifiers to catalog model names
var ownershipNames = map[string]string{
	OwnershipLicense: "Licensmodell",
	OwnershipShared:  "Delad äganderätt",
	OwnershipFull:    "Full äganderätt",
}

// OwnershipName returns the catalog model name for an external identifier.
// Unrecognised identifiers are returned unchanged.
func OwnershipName(id string) string {
	if name, ok := ownershipNames[id]; ok {
		return name
	}
	return id
}

var monthsPerYear = decimal.NewFromInt(12)

// Option configures a Calculator
type Option func(*Calculator)

// WithStrictOwnership makes unknown ownership models an error instead of
// falling back to multiplier 1
func WithStrictOwnership(strict bool) Option {
	return func(c *Calculator) {
		c.strictOwnership = strict
	}
}

// WithLogger sets the logger used for query diagnostics
func WithLogger(l *zap.Logger) Option {
	return func(c *Calculator) {
		c.log = l
	}
}

// Calculator answers quote queries against one catalog.
// It holds no mutable state and is safe to share.
type Calculator struct {
	catalog         *catalog.Catalog
	strictOwnership bool
	log             *zap.Logger
}

// NewCalculator creates a calculator over cat
func NewCalculator(cat *catalog.Catalog, opts ...Option) *Calculator {
	c := &Calculator{
		catalog: cat,
		log:     logging.Named("quote"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog returns the catalog the calculator reads from
func (c *Calculator) Catalog() *catalog.Catalog {
	return c.catalog
}
