package semantic

import (
	"bufio"
	"fmt"
	"os"
)

const unkToken = "[UNK]"

// vocab is a WordPiece vocabulary; the token id is the 0-indexed line
// number in vocab.txt.
type vocab struct {
	ids map[string]int64

	padID int64
	unkID int64
	clsID int64
	sepID int64
}

func loadVocab(path string) (*vocab, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: %w", err)
	}
	defer f.Close()

	ids := make(map[string]int64, 32000)
	scanner := bufio.NewScanner(f)
	var next int64
	for scanner.Scan() {
		ids[scanner.Text()] = next
		next++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("vocab: read %s: %w", path, err)
	}
	if next == 0 {
		return nil, fmt.Errorf("vocab: %s is empty", path)
	}

	v := &vocab{ids: ids}
	for _, special := range []struct {
		token string
		dest  *int64
	}{
		{"[PAD]", &v.padID},
		{unkToken, &v.unkID},
		{"[CLS]", &v.clsID},
		{"[SEP]", &v.sepID},
	} {
		id, ok := ids[special.token]
		if !ok {
			return nil, fmt.Errorf("vocab: missing special token %s", special.token)
		}
		*special.dest = id
	}
	return v, nil
}

// lookup returns the id for a token, falling back to [UNK].
func (v *vocab) lookup(token string) int64 {
	if id, ok := v.ids[token]; ok {
		return id
	}
	return v.unkID
}

func (v *vocab) contains(token string) bool {
	_, ok := v.ids[token]
	return ok
}
