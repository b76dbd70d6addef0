// Package output defines where parse results go once the pipeline is done
// with them. Results serialize as NDJSON — plain scalar fields only, so any
// downstream aggregation job can consume them without a schema library.
package output

import (
	"context"

	"github.com/wagescope/ladder/internal/model"
)

// Output is a destination for parse results.
type Output interface {
	Write(ctx context.Context, result model.ParseResult) error
	Close() error
}
