package cli

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"

	"github.com/SscSPs/budgetwise/internal/apperrors"
	"github.com/SscSPs/budgetwise/internal/core/domain"
	"github.com/SscSPs/budgetwise/internal/utils"
)

type ReportCmd struct {
	Month string `arg:"" optional:"" help:"Month to report (YYYY-MM); defaults to the current month." placeholder:"YYYY-MM"`
	From  string `help:"First day of a custom range (YYYY-MM-DD)." placeholder:"DATE"`
	To    string `help:"Last day of a custom range (YYYY-MM-DD)." placeholder:"DATE"`
}

func (cmd *ReportCmd) Run(ctx *kong.Context, app *App) error {
	report, err := cmd.load(app)
	if err != nil {
		return err
	}

	from, to := report.From.Format(time.DateOnly), report.To.Format(time.DateOnly)
	if report.Len() == 0 {
		printInfof(ctx.Stdout, "No transactions between %s and %s", from, to)
		return nil
	}

	rows := make([][]string, 0, report.Len()+1)
	for _, b := range report.Balances {
		rows = append(rows, []string{b.Name, utils.FormatAmount(b.Balance)})
	}
	rows = append(rows, []string{"Total", utils.FormatAmount(report.Total())})

	printInfof(ctx.Stdout, "Balances from %s to %s", from, to)
	_, _ = fmt.Fprintln(ctx.Stdout, newTable([]string{"Envelope", "Balance"}, rows, 1).Render())
	return nil
}

func (cmd *ReportCmd) load(app *App) (*domain.BalanceReport, error) {
	ledger := app.Services.Ledger
	if cmd.From != "" || cmd.To != "" {
		if cmd.Month != "" {
			return nil, fmt.Errorf("%w: give either a month or --from/--to, not both", apperrors.ErrValidation)
		}
		if cmd.From == "" || cmd.To == "" {
			return nil, fmt.Errorf("%w: --from and --to must be used together", apperrors.ErrValidation)
		}
		from, err := parseDate(cmd.From)
		if err != nil {
			return nil, err
		}
		to, err := parseDate(cmd.To)
		if err != nil {
			return nil, err
		}
		return ledger.Report(app.Context(), from, to)
	}

	period := domain.PeriodOf(app.Now())
	if cmd.Month != "" {
		p, err := domain.ParsePeriod(cmd.Month)
		if err != nil {
			return nil, err
		}
		period = p
	}
	return ledger.ReportMonth(app.Context(), period.Year, period.Month)
}
