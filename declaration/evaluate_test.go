package declaration

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-cash-declaration/domain"
)

var allRates = domain.Rates{
	domain.SGD: 12000,
	domain.AED: 4200,
	domain.EUR: 17000,
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   domain.Amount
		wantOk bool
	}{
		{"plain", "150000000", 150000000, true},
		{"dot separators", "25.000.000", 25000000, true},
		{"comma separators", "1,200,000,000", 1200000000, true},
		{"currency symbol", "Rp 5.000", 5000, true},
		{"empty", "", 0, false},
		{"no digits", "abc", 0, false},
		{"only separators", " ., ", 0, false},
		{"zero", "0", 0, false},
		{"zeros with separators", "0.000", 0, false},
		{"too large", strings.Repeat("9", 400), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.text)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseRate(t *testing.T) {
	rate, ok := ParseRate("12.000")
	assert.True(t, ok)
	assert.Equal(t, domain.Rate(12000), rate)

	_, ok = ParseRate("")
	assert.False(t, ok)

	_, ok = ParseRate("n/a")
	assert.False(t, ok)
}

func TestEvaluate_Scenarios(t *testing.T) {
	results := Evaluate("25.000.000", allRates, domain.Jurisdictions())
	sg := results[domain.Singapore]
	require.NotNil(t, sg)
	assert.InDelta(t, 2083.3333, float64(sg.Converted), 0.001)
	assert.False(t, sg.MustDeclare)
	assert.Equal(t, domain.Amount(240000000), sg.EquivalentThreshold)

	results = Evaluate("1,200,000,000", allRates, domain.Jurisdictions())
	ae := results[domain.UnitedArabEmirates]
	require.NotNil(t, ae)
	assert.InDelta(t, 285714.28, float64(ae.Converted), 0.01)
	assert.True(t, ae.MustDeclare)
	assert.Equal(t, domain.Amount(252000000), ae.EquivalentThreshold)

	results = Evaluate("150000000", allRates, domain.Jurisdictions())
	eu := results[domain.EuropeanUnion]
	require.NotNil(t, eu)
	assert.InDelta(t, 8823.5, float64(eu.Converted), 0.1)
	assert.False(t, eu.MustDeclare)
	assert.Equal(t, domain.Amount(170000000), eu.EquivalentThreshold)
}

func TestEvaluate_ThresholdIsInclusive(t *testing.T) {
	for _, j := range domain.Jurisdictions() {
		rate := allRates[j.Currency]
		exact := math.Floor(float64(j.Threshold) * float64(rate))

		atThreshold := Evaluate(formatDigits(exact), allRates, []domain.Jurisdiction{j})[j.Code]
		require.NotNil(t, atThreshold, j.Code)
		assert.True(t, atThreshold.MustDeclare, j.Code)

		below := Evaluate(formatDigits(exact-1), allRates, []domain.Jurisdiction{j})[j.Code]
		require.NotNil(t, below, j.Code)
		assert.False(t, below.MustDeclare, j.Code)
	}
}

func TestEvaluate_Undetermined(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		rates  domain.Rates
	}{
		{"empty amount", "", allRates},
		{"non numeric amount", "lots", allRates},
		{"zero amount", "0", allRates},
		{"no rates", "1000000", nil},
		{"zero rates", "1000000", domain.Rates{domain.SGD: 0, domain.AED: 0, domain.EUR: 0}},
		{"NaN rates", "1000000", domain.Rates{
			domain.SGD: domain.Rate(math.NaN()),
			domain.AED: domain.Rate(math.NaN()),
			domain.EUR: domain.Rate(math.NaN()),
		}},
		{"negative rates", "1000000", domain.Rates{domain.SGD: -1, domain.AED: -1, domain.EUR: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Evaluate(tt.amount, tt.rates, domain.Jurisdictions())
			require.Len(t, results, 3)
			for code, result := range results {
				assert.Nil(t, result, code)
			}
		})
	}
}

func TestEvaluate_PartialRates(t *testing.T) {
	results := Evaluate("100000000", domain.Rates{domain.EUR: 17000}, domain.Jurisdictions())

	assert.Nil(t, results[domain.Singapore])
	assert.Nil(t, results[domain.UnitedArabEmirates])
	assert.NotNil(t, results[domain.EuropeanUnion])
}

func TestEvaluate_Properties(t *testing.T) {
	amounts := []float64{1, 999, 120000000, 239999999, 240000000, 5e12}
	rates := []domain.Rate{1, 3, 4200, 12000.5, 17000}

	for _, a := range amounts {
		for _, r := range rates {
			table := domain.Rates{domain.SGD: r, domain.AED: r, domain.EUR: r}
			for _, j := range domain.Jurisdictions() {
				result := Evaluate(formatDigits(a), table, domain.Jurisdictions())[j.Code]
				require.NotNil(t, result)

				want := a / float64(r)
				assert.Equal(t, domain.Amount(want), result.Converted)
				assert.Equal(t, want >= float64(j.Threshold), result.MustDeclare)
				assert.GreaterOrEqual(t, float64(result.EquivalentThreshold), 0.0)
				assert.Equal(t, math.Floor(float64(j.Threshold)*float64(r)), float64(result.EquivalentThreshold))
			}
		}
	}
}

func formatDigits(f float64) string {
	return strconv.FormatFloat(f, 'f', 0, 64)
}
