// Package stdout writes parse results to standard output as NDJSON.
package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/wagescope/ladder/internal/model"
)

// Output streams JSON-encoded parse results to stdout, one per line.
type Output struct {
	enc *json.Encoder
}

// New creates a stdout Output. pretty indents the JSON for eyeballing;
// leave it off when piping into another tool.
func New(pretty bool) *Output {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Output{enc: enc}
}

func (o *Output) Write(_ context.Context, result model.ParseResult) error {
	if err := o.enc.Encode(result); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
