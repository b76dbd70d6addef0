package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s Source) []string {
	t.Helper()
	ch, err := s.Stream(context.Background())
	require.NoError(t, err)
	var lines []string
	for line := range ch {
		lines = append(lines, line)
	}
	return lines
}

func TestStreamSkipsBlankLines(t *testing.T) {
	in := "Registered Nurse\n\n  \nCustodian\n\tSenior Attorney\t\n"
	s := New(strings.NewReader(in))

	got := drain(t, s)
	assert.Equal(t, []string{"Registered Nurse", "Custodian", "Senior Attorney"}, got)
}

func TestStreamEmptyInput(t *testing.T) {
	s := New(strings.NewReader(""))
	assert.Empty(t, drain(t, s))
}

func TestStreamCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := New(strings.NewReader(strings.Repeat("title\n", 10_000)))

	ch, err := s.Stream(ctx)
	require.NoError(t, err)

	<-ch
	cancel()

	// The feeder goroutine stops; the channel closes without delivering
	// the whole input.
	count := 1
	for range ch {
		count++
	}
	assert.Less(t, count, 10_000)
}

func TestStreamSkipsOverlongLines(t *testing.T) {
	// A malformed export row blows past the line limit; the titles after
	// it must still come through.
	in := strings.Repeat("x", 2*1024*1024) + "\nRegistered Nurse\nCustodian\n"
	s := New(strings.NewReader(in))

	got := drain(t, s)
	assert.Equal(t, []string{"Registered Nurse", "Custodian"}, got)
}

func TestStreamLineAtLimitSurvives(t *testing.T) {
	long := strings.Repeat("y", maxLine)
	s := New(strings.NewReader(long + "\nRN\n"))

	got := drain(t, s)
	assert.Equal(t, []string{long, "RN"}, got)
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "titles.txt")
	require.NoError(t, os.WriteFile(path, []byte("RN\nTeacher\n"), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"RN", "Teacher"}, drain(t, s))
	assert.NoError(t, s.Close())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open("/nonexistent/titles.txt")
	assert.Error(t, err)
}

func TestCloseWithoutFile(t *testing.T) {
	s := New(strings.NewReader("x"))
	assert.NoError(t, s.Close())
}
