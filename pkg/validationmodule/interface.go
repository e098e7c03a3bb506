// Package validationmodule defines the client used to talk to external
// COUNTER validation modules and the schema of the results they return.
package validationmodule

import (
	"context"
	"io"
)

// Client sends validation requests to a validation module and returns the
// raw JSON body of its answer. The moduleURL selects which module is called.
//
//go:generate mockgen -package mockvalidationmodule -source=interface.go -destination=mock/mockvalidationmodule.go *
type Client interface {
	// ValidateFile posts a report file with the given extension (without the dot).
	ValidateFile(ctx context.Context, moduleURL, extension string, body io.Reader) ([]byte, error)
	// ValidateCounterAPI asks the module to fetch and validate sushiURL.
	ValidateCounterAPI(ctx context.Context, moduleURL, sushiURL string) ([]byte, error)
}
