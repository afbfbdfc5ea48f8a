package domain

import (
	"fmt"
	"math"
	"strings"
)

// Currency a currency code
type Currency string

const (
	// IDR the home currency. Every Rate is expressed in IDR.
	IDR Currency = "IDR"

	SGD Currency = "SGD"
	AED Currency = "AED"
	EUR Currency = "EUR"
)

// ForeignCurrencies the closed set of currencies a Rate can be looked up for.
var ForeignCurrencies = []Currency{SGD, AED, EUR}

// ParseCurrency maps a case-insensitive code onto one of the ForeignCurrencies.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	for _, known := range ForeignCurrencies {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unsupported currency: %q", code)
}

// Amount a monetary amount in the home currency
type Amount float64

// Rate how many home currency units equal one unit of a foreign currency
type Rate float64

// Valid reports whether r can be divided by: finite and strictly positive.
func (r Rate) Valid() bool {
	f := float64(r)
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
}

// Rates maps a foreign currency to its rate. Entries may be missing or invalid.
type Rates map[Currency]Rate

// Lookup returns the rate for currency only when it is usable.
func (r Rates) Lookup(currency Currency) (Rate, bool) {
	rate, ok := r[currency]
	if !ok || !rate.Valid() {
		return 0, false
	}
	return rate, true
}

// Clone returns a copy that is safe to hand to another goroutine.
func (r Rates) Clone() Rates {
	c := make(Rates, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}
