package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-cash-declaration/domain"
	"go-cash-declaration/render"
)

func ratesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Fetch and print current rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			_, fetchErr := a.session.Refresh(cmd.Context())

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.Status(a.session.Status()))
			if fetchErr != nil {
				return fmt.Errorf("fetching rates: %w", fetchErr)
			}
			return render.Rates(out, domain.ForeignCurrencies, a.session.Rates())
		},
	}
}
