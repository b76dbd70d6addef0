package multi

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagescope/ladder/internal/model"
)

type recording struct {
	writes int
	closed bool
	fail   bool
}

func (r *recording) Write(context.Context, model.ParseResult) error {
	if r.fail {
		return fmt.Errorf("write failed")
	}
	r.writes++
	return nil
}

func (r *recording) Close() error {
	r.closed = true
	return nil
}

func TestWriteFansOut(t *testing.T) {
	a, b := &recording{}, &recording{}
	m := New(a, b)

	require.NoError(t, m.Write(context.Background(), model.ParseResult{RawTitle: "RN"}))
	assert.Equal(t, 1, a.writes)
	assert.Equal(t, 1, b.writes)
}

func TestWriteContinuesPastFailure(t *testing.T) {
	a, b := &recording{fail: true}, &recording{}
	m := New(a, b)

	err := m.Write(context.Background(), model.ParseResult{})
	assert.Error(t, err)
	// The error names which output failed.
	assert.Contains(t, err.Error(), "output 0")
	// The healthy output still got the result.
	assert.Equal(t, 1, b.writes)
}

func TestCloseClosesAll(t *testing.T) {
	a, b := &recording{}, &recording{}
	m := New(a, b)

	require.NoError(t, m.Close())
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}
