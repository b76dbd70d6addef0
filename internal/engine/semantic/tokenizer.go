package semantic

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// maxSeqLen caps tokenized sequence length. Job titles rarely exceed a
// dozen words; 32 leaves generous headroom including subword splits.
const maxSeqLen = 32

// tokenized holds a batch ready for inference. All slices are flat,
// [batchSize * seqLen].
type tokenized struct {
	inputIDs      []int64
	attentionMask []int64
	tokenTypeIDs  []int64
	batchSize     int64
	seqLen        int64
}

// tokenizer performs BERT-style WordPiece tokenization over title strings.
type tokenizer struct {
	vocab *vocab
}

func newTokenizer(vocabPath string) (*tokenizer, error) {
	v, err := loadVocab(vocabPath)
	if err != nil {
		return nil, err
	}
	return &tokenizer{vocab: v}, nil
}

// tokenizeBatch tokenizes several titles and packs them into flat tensors
// padded to the longest sequence in the batch.
func (t *tokenizer) tokenizeBatch(texts []string) tokenized {
	n := len(texts)
	if n == 0 {
		return tokenized{}
	}

	idSeqs := make([][]int64, n)
	maxLen := 0
	for i, text := range texts {
		ids := t.encode(text)
		idSeqs[i] = ids
		if len(ids) > maxLen {
			maxLen = len(ids)
		}
	}

	batchSize := int64(n)
	seqLen := int64(maxLen)
	total := batchSize * seqLen

	out := tokenized{
		inputIDs:      make([]int64, total),
		attentionMask: make([]int64, total),
		tokenTypeIDs:  make([]int64, total), // single segment, all zeros
		batchSize:     batchSize,
		seqLen:        seqLen,
	}
	for i, ids := range idSeqs {
		off := int64(i) * seqLen
		for j, id := range ids {
			out.inputIDs[off+int64(j)] = id
			out.attentionMask[off+int64(j)] = 1
		}
		// Remaining positions stay 0: [PAD] with mask 0.
	}
	return out
}

// encode converts one title to its id sequence: [CLS] subwords... [SEP],
// truncated to maxSeqLen.
func (t *tokenizer) encode(text string) []int64 {
	words := basicTokenize(text)

	ids := make([]int64, 0, maxSeqLen)
	ids = append(ids, t.vocab.clsID)
	for _, word := range words {
		for _, sub := range t.wordpiece(word) {
			if len(ids) == maxSeqLen-1 {
				break
			}
			ids = append(ids, t.vocab.lookup(sub))
		}
	}
	ids = append(ids, t.vocab.sepID)
	return ids
}

// wordpiece decomposes one word into greedy longest-match subwords.
// A word with no decomposition maps to a single [UNK].
func (t *tokenizer) wordpiece(word string) []string {
	runes := []rune(word)
	if len(runes) == 0 {
		return nil
	}

	var subs []string
	start := 0
	for start < len(runes) {
		end := len(runes)
		matched := ""
		for end > start {
			sub := string(runes[start:end])
			if start > 0 {
				sub = "##" + sub
			}
			if t.vocab.contains(sub) {
				matched = sub
				break
			}
			end--
		}
		if matched == "" {
			return []string{unkToken}
		}
		subs = append(subs, matched)
		start = end
	}
	return subs
}

// basicTokenize lowercases, strips accents, and splits on whitespace and
// punctuation, keeping punctuation as its own tokens — matching the
// preprocessing the encoder was trained with.
func basicTokenize(text string) []string {
	text = stripMarks(strings.ToLower(text))

	var tokens []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	for _, r := range text {
		switch {
		case unicode.IsSpace(r) || unicode.IsControl(r):
			flush()
		case isPunct(r):
			flush()
			tokens = append(tokens, string(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// stripMarks drops combining marks after NFD decomposition.
func stripMarks(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFD.String(text) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isPunct mirrors BERT's punctuation classes: the four ASCII symbol ranges
// plus Unicode punctuation.
func isPunct(r rune) bool {
	if (r >= 33 && r <= 47) || (r >= 58 && r <= 64) ||
		(r >= 91 && r <= 96) || (r >= 123 && r <= 126) {
		return true
	}
	return unicode.IsPunct(r)
}
