package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/kong"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/budgetwise/internal/adapters/database/memory"
	"github.com/SscSPs/budgetwise/internal/apperrors"
	portsrepo "github.com/SscSPs/budgetwise/internal/core/ports/repositories"
	"github.com/SscSPs/budgetwise/internal/core/services"
	"github.com/SscSPs/budgetwise/internal/platform/config"
)

var testNow = time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) *App {
	t.Helper()
	store := memory.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := func() time.Time { return testNow }

	return &App{
		Config: &config.Config{
			Backend:            config.BackendMemory,
			Port:               "0",
			LogLevel:           "info",
			LogFormat:          "text",
			RateLimit:          "1000-M",
			CORSAllowedOrigins: []string{"*"},
			ShutdownTimeout:    2 * time.Second,
		},
		Logger:   logger,
		Services: services.NewServiceContainer(&portsrepo.RepositoryProvider{Ledger: store, Closer: store}, logger, services.WithClock(clock)),
		Now:      clock,
	}
}

// run parses args like the real binary and returns what the command wrote to stdout.
func run(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	var cmds Commands

	parser, err := kong.New(&cmds,
		kong.Name("budgetwise"),
		kong.Writers(&stdout, &stderr),
		kong.Exit(func(int) { t.Fatalf("unexpected exit: %s", stderr.String()) }),
		kong.Bind(app),
	)
	assert.NoError(t, err)

	kctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}
	err = kctx.Run()
	return stdout.String(), err
}

func mustRun(t *testing.T, app *App, args ...string) string {
	t.Helper()
	out, err := run(t, app, args...)
	assert.NoError(t, err)
	return out
}

func TestAddCmd(t *testing.T) {
	t.Run("Income", func(t *testing.T) {
		app := newTestApp(t)
		out := mustRun(t, app, "add", "Salary", "3000", "April pay")
		assert.Contains(t, out, "Recorded income of 3000.00 in Salary")
	})

	t.Run("ExpenseFlag", func(t *testing.T) {
		app := newTestApp(t)
		out := mustRun(t, app, "add", "-e", "Groceries", "42.10", "weekly shop")
		assert.Contains(t, out, "Recorded expense of -42.10 in Groceries")
	})

	t.Run("NegativeAfterTerminator", func(t *testing.T) {
		app := newTestApp(t)
		out := mustRun(t, app, "add", "--", "Groceries", "-5")
		assert.Contains(t, out, "Recorded expense of -5.00")
	})

	t.Run("AtDate", func(t *testing.T) {
		app := newTestApp(t)
		mustRun(t, app, "add", "Groceries", "10", "--at", "2024-03-31")

		report, err := app.Services.Ledger.ReportMonth(context.Background(), 2024, 3)
		assert.NoError(t, err)
		bal, ok := report.Balance("Groceries")
		assert.True(t, ok)
		assert.True(t, bal.Equal(decimal.NewFromInt(10)))
	})

	t.Run("InvalidInput", func(t *testing.T) {
		app := newTestApp(t)
		_, err := run(t, app, "add", "Groceries", "ten")
		assert.IsError(t, err, apperrors.ErrValidation)

		_, err = run(t, app, "add", "Groceries", "10", "--at", "31/03/2024")
		assert.IsError(t, err, apperrors.ErrValidation)
	})
}

func TestMoveCmd(t *testing.T) {
	app := newTestApp(t)
	mustRun(t, app, "add", "Salary", "500")

	out := mustRun(t, app, "move", "Salary", "Groceries", "200")
	assert.Contains(t, out, "Moved 200.00 from Salary to Groceries")

	report, err := app.Services.Ledger.ReportMonth(context.Background(), 2024, 4)
	assert.NoError(t, err)
	assert.True(t, report.Total().Equal(decimal.NewFromInt(500)))

	_, err = run(t, app, "move", "Salary", "Groceries", "0")
	assert.IsError(t, err, apperrors.ErrInvalidAmount)
}

func TestCloseMonthAndReport(t *testing.T) {
	app := newTestApp(t)
	mustRun(t, app, "add", "Salary", "3000.00", "--at", "2024-03-01")
	mustRun(t, app, "add", "-e", "Groceries", "150.00", "--at", "2024-03-05")
	mustRun(t, app, "add", "-e", "Leisure", "100.00", "--at", "2024-03-20")

	out := mustRun(t, app, "close-month", "-m", "2024-03")
	assert.Contains(t, out, "Closed 2024-03; balances carried into 2024-04")

	out = mustRun(t, app, "report", "2024-04")
	assert.Contains(t, out, "Balances from 2024-04-01 to 2024-04-30")
	for _, want := range []string{"Groceries", "-150.00", "Leisure", "-100.00", "Salary", "3000.00", "Total", "2750.00"} {
		assert.Contains(t, out, want)
	}
	assert.True(t, strings.Index(out, "Groceries") < strings.Index(out, "Leisure"))
	assert.True(t, strings.Index(out, "Leisure") < strings.Index(out, "Salary"))

	_, err := run(t, app, "close-month", "--month", "2024-03")
	assert.IsError(t, err, apperrors.ErrMonthAlreadyClosed)
}

func TestCloseMonthDefaultsToCurrentMonth(t *testing.T) {
	app := newTestApp(t)
	mustRun(t, app, "add", "Salary", "10")

	out := mustRun(t, app, "close-month")
	assert.Contains(t, out, "Closed 2024-04")

	closed, err := app.Services.Ledger.IsMonthClosed(context.Background(), 2024, 4)
	assert.NoError(t, err)
	assert.True(t, closed)
}

func TestReportCmd(t *testing.T) {
	t.Run("EmptyCurrentMonth", func(t *testing.T) {
		app := newTestApp(t)
		out := mustRun(t, app, "report")
		assert.Contains(t, out, "No transactions between 2024-04-01 and 2024-04-30")
	})

	t.Run("DateRange", func(t *testing.T) {
		app := newTestApp(t)
		mustRun(t, app, "add", "Groceries", "1", "--at", "2024-04-01")
		mustRun(t, app, "add", "Groceries", "2", "--at", "2024-04-10")

		out := mustRun(t, app, "report", "--from", "2024-04-01", "--to", "2024-04-01")
		assert.Contains(t, out, "1.00")
		assert.NotContains(t, out, "3.00")
	})

	t.Run("BadFlags", func(t *testing.T) {
		app := newTestApp(t)
		_, err := run(t, app, "report", "--from", "2024-04-01")
		assert.IsError(t, err, apperrors.ErrValidation)

		_, err = run(t, app, "report", "2024-04", "--from", "2024-04-01", "--to", "2024-04-02")
		assert.IsError(t, err, apperrors.ErrValidation)

		_, err = run(t, app, "report", "--from", "2024-04-02", "--to", "2024-04-01")
		assert.IsError(t, err, apperrors.ErrInvalidDateRange)

		_, err = run(t, app, "report", "2024-13")
		assert.IsError(t, err, apperrors.ErrInvalidPeriod)
	})
}

func TestEnvelopesCmd(t *testing.T) {
	app := newTestApp(t)
	out := mustRun(t, app, "envelopes")
	assert.Contains(t, out, "No envelopes yet")

	mustRun(t, app, "add", "Salary", "1")
	mustRun(t, app, "add", "Groceries", "1")
	out = mustRun(t, app, "envelopes")
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "Salary")
	assert.Contains(t, out, "2024-04-15")
}

func TestHistoryCmd(t *testing.T) {
	app := newTestApp(t)
	for _, day := range []string{"2024-04-01", "2024-04-02", "2024-04-03"} {
		mustRun(t, app, "add", "Groceries", "1", "day "+day, "--at", day)
	}

	out := mustRun(t, app, "history", "Groceries", "--limit", "2")
	assert.Contains(t, out, "day 2024-04-03")
	assert.Contains(t, out, "day 2024-04-02")
	assert.NotContains(t, out, "day 2024-04-01")
	assert.Contains(t, out, "More transactions: --next ")

	token := strings.TrimSpace(out[strings.LastIndex(out, "--next ")+len("--next "):])
	out = mustRun(t, app, "history", "Groceries", "--limit", "2", "--next", token)
	assert.Contains(t, out, "day 2024-04-01")
	assert.NotContains(t, out, "More transactions")

	_, err := run(t, app, "history", "Unknown")
	assert.IsError(t, err, apperrors.ErrNotFound)
}

func TestGlobalsApply(t *testing.T) {
	cfg := &config.Config{Backend: config.BackendSQLite, SQLiteDBPath: "data/budgetwise.db", LogLevel: "info"}

	Globals{}.Apply(cfg)
	assert.Equal(t, config.BackendSQLite, cfg.Backend)

	Globals{Backend: "memory", SQLitePath: "/tmp/x.db", LogLevel: "debug", DatabaseURL: "postgres://localhost/db"}.Apply(cfg)
	assert.Equal(t, &config.Config{
		Backend:      config.BackendMemory,
		DatabaseURL:  "postgres://localhost/db",
		SQLiteDBPath: "/tmp/x.db",
		LogLevel:     "debug",
	}, cfg)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app := newTestApp(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, app, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	assert.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
