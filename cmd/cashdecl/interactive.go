package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"go-cash-declaration/declaration"
	"go-cash-declaration/domain"
	"go-cash-declaration/rates"
	"go-cash-declaration/render"
)

const interactiveHelp = `enter an amount in IDR to evaluate it, or one of:
  rate CODE VALUE   set a rate by hand, e.g. rate SGD 12.000
  fetch             fetch current rates
  auto on|off       fetch whenever auto mode is switched on
  status            show the rate fetch status
  help              show this text
  quit              leave`

func interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Re-evaluate on every line typed",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			r := &repl{
				out:     &lockedWriter{w: cmd.OutOrStdout()},
				session: a.session,
				logger:  a.logger,
			}
			return r.run(cmd.Context(), cmd.InOrStdin(), a.cfg.AutoFetch)
		},
	}
}

// lockedWriter serialises writes from the prompt loop and background fetches.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

type repl struct {
	out     io.Writer
	session *rates.Session
	logger  log.Logger

	mu     sync.Mutex
	amount string

	auto bool

	// fetches in flight, waited on before run returns
	fetches sync.WaitGroup
}

func (r *repl) run(ctx context.Context, in io.Reader, auto bool) error {
	defer r.fetches.Wait()

	fmt.Fprintln(r.out, interactiveHelp)
	r.setAuto(ctx, auto)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(r.out, interactiveHelp)
			continue
		case "status":
			fmt.Fprintln(r.out, render.Status(r.session.Status()))
			continue
		case "fetch":
			r.fetch(ctx)
			continue
		case "auto":
			if len(fields) != 2 || (fields[1] != "on" && fields[1] != "off") {
				fmt.Fprintln(r.out, "usage: auto on|off")
				continue
			}
			r.setAuto(ctx, fields[1] == "on")
			continue
		case "rate":
			if err := r.setRate(fields[1:]); err != nil {
				fmt.Fprintln(r.out, err)
				continue
			}
		default:
			r.setAmount(strings.Join(fields, " "))
		}

		if err := printEvaluation(r.out, r.session, r.currentAmount()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (r *repl) setAmount(amount string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.amount = amount
}

func (r *repl) currentAmount() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.amount
}

// setAuto fetches when auto mode goes from off to on.
func (r *repl) setAuto(ctx context.Context, on bool) {
	if on && !r.auto {
		r.fetch(ctx)
	}
	r.auto = on
}

func (r *repl) setRate(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: rate CODE VALUE")
	}
	currency, err := domain.ParseCurrency(args[0])
	if err != nil {
		return err
	}
	rate, _ := declaration.ParseRate(args[1])
	r.session.SetRate(currency, rate)
	return nil
}

// fetch refreshes rates in the background and reports the result when done.
func (r *repl) fetch(ctx context.Context) {
	fmt.Fprintln(r.out, render.Status(rates.Status{State: rates.Fetching}))
	r.fetches.Add(1)
	go func() {
		defer r.fetches.Done()
		_, err := r.session.Refresh(ctx)
		if errors.Is(err, rates.ErrSuperseded) {
			level.Debug(r.logger).Log("msg", "discarded stale rates")
			return
		}
		fmt.Fprintln(r.out, render.Status(r.session.Status()))
		if err == nil {
			_ = printEvaluation(r.out, r.session, r.currentAmount())
		}
	}()
}
