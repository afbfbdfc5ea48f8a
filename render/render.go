package render

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"go-cash-declaration/declaration"
	"go-cash-declaration/domain"
	"go-cash-declaration/rates"
)

// Undetermined is shown in place of a result that lacks an amount or a rate.
const Undetermined = "enter missing input"

var printer = message.NewPrinter(language.English)

// Whole formats v with thousands grouping and no decimals.
func Whole(v float64) string {
	return printer.Sprintf("%.0f", v)
}

// Fixed formats v with thousands grouping and two decimals.
func Fixed(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// Results writes one row per jurisdiction.
func Results(w io.Writer, jurisdictions []domain.Jurisdiction, results declaration.Results) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "JURISDICTION\tTHRESHOLD\tYOUR CASH\tDECLARE\tTHRESHOLD IN %v\n", domain.IDR)
	for _, j := range jurisdictions {
		threshold := fmt.Sprintf("%v %v", Whole(float64(j.Threshold)), j.Currency)
		result := results[j.Code]
		if result == nil {
			fmt.Fprintf(tw, "%v\t%v\t%v\t\t\n", j.Label, threshold, Undetermined)
			continue
		}
		fmt.Fprintf(tw, "%v\t%v\t%v %v\t%v\t%v %v\n",
			j.Label,
			threshold,
			Fixed(float64(result.Converted)), j.Currency,
			yesNo(result.MustDeclare),
			Whole(float64(result.EquivalentThreshold)), domain.IDR,
		)
	}
	return tw.Flush()
}

// Rates writes the rate of every currency, or Undetermined when it is unknown.
func Rates(w io.Writer, currencies []domain.Currency, table domain.Rates) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "CURRENCY\tRATE (%v)\n", domain.IDR)
	for _, c := range currencies {
		rate, ok := table.Lookup(c)
		if !ok {
			fmt.Fprintf(tw, "%v\t%v\n", c, Undetermined)
			continue
		}
		fmt.Fprintf(tw, "%v\t%v\n", c, Whole(float64(rate)))
	}
	return tw.Flush()
}

// Status describes the latest fetch in one line.
func Status(status rates.Status) string {
	switch status.State {
	case rates.Fetching:
		return "rates: fetching"
	case rates.Failed:
		return "rates: error: " + status.Message
	case rates.Ready:
		return "rates: updated " + status.FetchedAt.UTC().Format(time.RFC3339)
	default:
		return "rates: manual"
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
