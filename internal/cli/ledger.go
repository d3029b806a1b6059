package cli

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/budgetwise/internal/apperrors"
	"github.com/SscSPs/budgetwise/internal/core/domain"
	"github.com/SscSPs/budgetwise/internal/utils"
)

type AddCmd struct {
	Envelope string `arg:"" help:"Envelope name; created on first use."`
	Amount   string `arg:"" help:"Amount; positive is income, zero or negative is an expense."`
	Note     string `arg:"" optional:"" help:"Free-text note."`
	Expense  bool   `short:"e" help:"Record the amount as an expense regardless of its sign."`
	At       string `help:"Date of the transaction (YYYY-MM-DD); defaults to now." placeholder:"DATE"`
}

func (cmd *AddCmd) Run(ctx *kong.Context, app *App) error {
	amount, err := parseAmount(cmd.Amount)
	if err != nil {
		return err
	}
	if cmd.Expense {
		amount = amount.Abs().Neg()
	}

	var at *time.Time
	if cmd.At != "" {
		day, err := parseDate(cmd.At)
		if err != nil {
			return err
		}
		at = &day
	}

	txn, err := app.Services.Ledger.AddTransaction(app.Context(), cmd.Envelope, amount, cmd.Note, at)
	if err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Recorded %s of %s in %s",
		txn.Kind, utils.FormatAmount(txn.Amount), envelopeStyle.Render(txn.EnvelopeName)))
	return nil
}

type MoveCmd struct {
	Source      string `arg:"" help:"Envelope to take money from."`
	Destination string `arg:"" help:"Envelope to put money into."`
	Amount      string `arg:"" help:"Positive amount to move."`
}

func (cmd *MoveCmd) Run(ctx *kong.Context, app *App) error {
	amount, err := parseAmount(cmd.Amount)
	if err != nil {
		return err
	}

	transfer, err := app.Services.Ledger.Move(app.Context(), cmd.Source, cmd.Destination, amount)
	if err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Moved %s from %s to %s",
		utils.FormatAmount(transfer.Credit.Amount),
		envelopeStyle.Render(cmd.Source),
		envelopeStyle.Render(cmd.Destination)))
	return nil
}

type CloseMonthCmd struct {
	Month string `short:"m" help:"Month to close (YYYY-MM); defaults to the current month." placeholder:"YYYY-MM"`
}

func (cmd *CloseMonthCmd) Run(ctx *kong.Context, app *App) error {
	period := domain.PeriodOf(app.Now())
	if cmd.Month != "" {
		p, err := domain.ParsePeriod(cmd.Month)
		if err != nil {
			return err
		}
		period = p
	}

	if err := app.Services.Ledger.CloseMonth(app.Context(), period.Year, period.Month); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Closed %s; balances carried into %s", period, period.Next()))
	return nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", apperrors.ErrValidation, s)
	}
	return d, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", apperrors.ErrValidation, s)
	}
	return t, nil
}
