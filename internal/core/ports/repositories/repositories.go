package repositories

import "io"

// RepositoryProvider holds the persistence gateway needed by services
// together with the resource that has to be released on shutdown.
type RepositoryProvider struct {
	Ledger LedgerStore
	Closer io.Closer
}

// Close releases the backend, if it holds anything.
func (p *RepositoryProvider) Close() error {
	if p == nil || p.Closer == nil {
		return nil
	}
	return p.Closer.Close()
}
