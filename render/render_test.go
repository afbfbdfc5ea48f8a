package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-cash-declaration/declaration"
	"go-cash-declaration/domain"
	"go-cash-declaration/rates"
)

func TestNumbers(t *testing.T) {
	assert.Equal(t, "240,000,000", Whole(240000000))
	assert.Equal(t, "2,083.33", Fixed(25000000.0/12000))
	assert.Equal(t, "0.00", Fixed(0))
}

func TestResults(t *testing.T) {
	table := domain.Rates{domain.SGD: 12000, domain.AED: 4200}
	results := declaration.Evaluate("1.200.000.000", table, domain.Jurisdictions())

	var buf strings.Builder
	require.NoError(t, Results(&buf, domain.Jurisdictions(), results))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "THRESHOLD IN IDR")
	assert.Contains(t, lines[1], "Singapore")
	assert.Contains(t, lines[1], "100,000.00 SGD")
	assert.Contains(t, lines[1], "240,000,000 IDR")
	assert.Contains(t, lines[2], "285,714.29 AED")
	assert.Contains(t, lines[2], "yes")
	assert.Contains(t, lines[3], "European Union")
	assert.Contains(t, lines[3], Undetermined)
}

func TestRates(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Rates(&buf, domain.ForeignCurrencies, domain.Rates{domain.EUR: 17000}))

	out := buf.String()
	assert.Contains(t, out, "17,000")
	assert.Contains(t, out, "SGD")
	assert.Equal(t, 2, strings.Count(out, Undetermined))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "rates: manual", Status(rates.Status{}))
	assert.Equal(t, "rates: fetching", Status(rates.Status{State: rates.Fetching}))
	assert.Equal(t, "rates: error: incomplete rates", Status(rates.Status{State: rates.Failed, Message: "incomplete rates"}))

	fetchedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "rates: updated 2024-05-01T10:00:00Z", Status(rates.Status{State: rates.Ready, FetchedAt: fetchedAt}))
}
