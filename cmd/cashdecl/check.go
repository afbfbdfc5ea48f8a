package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"go-cash-declaration/declaration"
	"go-cash-declaration/domain"
	"go-cash-declaration/rates"
	"go-cash-declaration/render"
)

func checkCmd() *cobra.Command {
	var (
		amount    string
		manual    map[string]string
		autoFetch bool
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate one amount against every jurisdiction",
		Example: `  cashdecl check --amount 25.000.000 --rate SGD=12000,AED=4200,EUR=17000
  cashdecl check --amount "Rp 150.000.000" --auto`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := setManualRates(a.session, manual); err != nil {
				return err
			}
			if !cmd.Flags().Changed("auto") {
				autoFetch = a.cfg.AutoFetch
			}
			if autoFetch {
				if _, err := a.session.Refresh(cmd.Context()); err != nil {
					level.Error(a.logger).Log("msg", "using rates entered by hand", "err", err)
				}
			}
			return printEvaluation(cmd.OutOrStdout(), a.session, amount)
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "cash carried, in IDR; separators and symbols are ignored")
	cmd.Flags().StringToStringVar(&manual, "rate", nil, "IDR per unit of a currency, e.g. SGD=12000")
	cmd.Flags().BoolVar(&autoFetch, "auto", false, "fetch current rates from coinbase (default from CASHDECL_AUTO_FETCH)")
	return cmd
}

func setManualRates(session *rates.Session, manual map[string]string) error {
	var errs []error
	for code, text := range manual {
		currency, err := domain.ParseCurrency(code)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rate, _ := declaration.ParseRate(text)
		session.SetRate(currency, rate)
	}
	return errors.Join(errs...)
}

func printEvaluation(w io.Writer, session *rates.Session, amount string) error {
	jurisdictions := domain.Jurisdictions()
	results := declaration.Evaluate(amount, session.Rates(), jurisdictions)

	var buf bytes.Buffer
	fmt.Fprintln(&buf, render.Status(session.Status()))
	if err := render.Results(&buf, jurisdictions, results); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
