// Package multi fans parse results out to several outputs at once — e.g.
// an NDJSON file for the aggregation job plus stdout for a spot check.
package multi

import (
	"context"
	"errors"
	"fmt"

	"github.com/wagescope/ladder/internal/model"
	"github.com/wagescope/ladder/internal/output"
)

// Multi delivers every result to each wrapped output in order. A failing
// output does not stop delivery to the rest.
type Multi struct {
	outputs []output.Output
}

// New creates a Multi over the given outputs.
func New(outputs ...output.Output) *Multi {
	return &Multi{outputs: outputs}
}

func (m *Multi) Write(ctx context.Context, result model.ParseResult) error {
	var errs []error
	for i, o := range m.outputs {
		if err := o.Write(ctx, result); err != nil {
			errs = append(errs, fmt.Errorf("output %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (m *Multi) Close() error {
	var errs []error
	for i, o := range m.outputs {
		if err := o.Close(); err != nil {
			errs = append(errs, fmt.Errorf("output %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
