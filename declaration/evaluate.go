package declaration

import (
	"math"
	"strconv"
	"strings"

	"go-cash-declaration/domain"
)

// Result of checking an amount against one jurisdiction's threshold.
type Result struct {
	// Converted the amount expressed in the jurisdiction's currency
	Converted domain.Amount

	// MustDeclare true when Converted is at or above the threshold
	MustDeclare bool

	// EquivalentThreshold the threshold expressed in the home currency, rounded down
	EquivalentThreshold domain.Amount
}

// Results maps each jurisdiction to its Result. A nil Result means the
// amount or the rate is missing and nothing could be computed.
type Results map[domain.JurisdictionCode]*Result

// digitsOnly drops every rune that is not an ASCII digit, which removes
// thousands separators, currency symbols and decimal points alike.
func digitsOnly(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)
}

// parseDigits sanitises text and parses it as a strictly positive number.
func parseDigits(text string) (float64, bool) {
	digits := digitsOnly(text)
	if digits == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(digits, 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	return f, true
}

// ParseAmount reads free-form amount text such as "Rp 25.000.000".
func ParseAmount(text string) (domain.Amount, bool) {
	f, ok := parseDigits(text)
	return domain.Amount(f), ok
}

// ParseRate reads a manually entered rate. It is sanitised the same way as
// an amount, so "12.000" is twelve thousand home currency units.
func ParseRate(text string) (domain.Rate, bool) {
	f, ok := parseDigits(text)
	return domain.Rate(f), ok
}

// Evaluate checks amountText against every jurisdiction using rates.
// It never fails: missing or invalid input leaves that jurisdiction's entry nil.
func Evaluate(amountText string, rates domain.Rates, jurisdictions []domain.Jurisdiction) Results {
	results := make(Results, len(jurisdictions))
	amount, amountOk := ParseAmount(amountText)

	for _, j := range jurisdictions {
		rate, rateOk := rates.Lookup(j.Currency)
		if !amountOk || !rateOk {
			results[j.Code] = nil
			continue
		}
		results[j.Code] = evaluate(amount, rate, j.Threshold)
	}

	return results
}

func evaluate(amount domain.Amount, rate domain.Rate, threshold domain.Amount) *Result {
	converted := float64(amount) / float64(rate)
	equivalent := math.Max(0, math.Floor(float64(threshold)*float64(rate)))

	return &Result{
		Converted:           domain.Amount(converted),
		MustDeclare:         converted >= float64(threshold),
		EquivalentThreshold: domain.Amount(equivalent),
	}
}
