package cli

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"

	"github.com/SscSPs/budgetwise/internal/utils"
)

type EnvelopesCmd struct{}

func (cmd *EnvelopesCmd) Run(ctx *kong.Context, app *App) error {
	envelopes, err := app.Services.Ledger.ListEnvelopes(app.Context())
	if err != nil {
		return err
	}
	if len(envelopes) == 0 {
		printInfof(ctx.Stdout, "No envelopes yet; add a transaction to create one")
		return nil
	}

	rows := make([][]string, len(envelopes))
	for i, e := range envelopes {
		rows[i] = []string{e.Name, utils.FormatAmount(e.Budget), e.CreatedAt.Format(time.DateOnly)}
	}
	_, _ = fmt.Fprintln(ctx.Stdout, newTable([]string{"Envelope", "Budget", "Created"}, rows, 1).Render())
	return nil
}

type HistoryCmd struct {
	Envelope string `arg:"" help:"Envelope name."`
	Limit    int    `help:"Transactions per page." default:"20"`
	Next     string `help:"Page token printed by a previous call." placeholder:"TOKEN"`
}

func (cmd *HistoryCmd) Run(ctx *kong.Context, app *App) error {
	var token *string
	if cmd.Next != "" {
		token = &cmd.Next
	}

	txns, next, err := app.Services.Ledger.ListEnvelopeTransactions(app.Context(), cmd.Envelope, cmd.Limit, token)
	if err != nil {
		return err
	}
	if len(txns) == 0 {
		printInfof(ctx.Stdout, "No transactions in %s", envelopeStyle.Render(cmd.Envelope))
		return nil
	}

	rows := make([][]string, len(txns))
	for i, t := range txns {
		rows[i] = []string{t.Timestamp.Format("2006-01-02 15:04"), string(t.Kind), utils.FormatAmount(t.Amount), t.Note}
	}
	_, _ = fmt.Fprintln(ctx.Stdout, newTable([]string{"Date", "Kind", "Amount", "Note"}, rows, 2).Render())

	if next != nil {
		printInfof(ctx.Stdout, "More transactions: --next %s", *next)
	}
	return nil
}
