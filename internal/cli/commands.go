package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands. Set flags override the
// environment and .env configuration.
type Globals struct {
	Backend     string `help:"Storage backend: postgres, sqlite or memory." placeholder:"BACKEND"`
	DatabaseURL string `help:"PostgreSQL connection URL." name:"database-url" placeholder:"URL"`
	SQLitePath  string `help:"SQLite database file." name:"sqlite-path" placeholder:"PATH"`
	LogLevel    string `help:"Log level: debug, info, warn or error." name:"log-level" placeholder:"LEVEL"`
}

type Commands struct {
	Globals

	Add        AddCmd        `cmd:"" help:"Record an income or expense against an envelope."`
	Move       MoveCmd       `cmd:"" help:"Move money from one envelope to another."`
	Report     ReportCmd     `cmd:"" help:"Show envelope balances for a month or a date range."`
	CloseMonth CloseMonthCmd `cmd:"" name:"close-month" help:"Close a month and roll balances into the next one."`
	Envelopes  EnvelopesCmd  `cmd:"" help:"List envelopes."`
	History    HistoryCmd    `cmd:"" help:"Show an envelope's transactions, newest first."`
	Serve      ServeCmd      `cmd:"" help:"Start the HTTP API server."`
}
