// Package semantic provides the optional embedding-based fallback for the
// role matcher: titles and roles are embedded with a local ONNX
// sentence-encoder and compared by cosine similarity. The whole package is
// inert unless a model directory is configured — the lexical tiers carry
// the engine on their own.
package semantic

import (
	"fmt"
	"path/filepath"
)

// Embedder produces vector embeddings from text.
type Embedder interface {
	Embed(text string) ([]float32, error)
	EmbedBatch(texts []string) ([][]float32, error)
	Close() error
}

// Model file names expected inside the configured model directory.
const (
	modelFile = "model.onnx"
	vocabFile = "vocab.txt"
	libFile   = "libonnxruntime.so"
)

// ONNXEmbedder runs a BERT-style encoder locally: tokenize → inference →
// attention-weighted mean pooling. Titles are short, so sequences are capped
// far below what a log or document encoder would need.
type ONNXEmbedder struct {
	session *onnxSession
	tok     *tokenizer
}

// New loads the encoder from a model directory containing model.onnx,
// vocab.txt, and the ONNX runtime shared library. Loading is expensive and
// happens once per process, outside the per-title hot path.
func New(modelDir string) (*ONNXEmbedder, error) {
	sess, err := newONNXSession(
		filepath.Join(modelDir, modelFile),
		filepath.Join(modelDir, libFile),
	)
	if err != nil {
		return nil, fmt.Errorf("semantic: %w", err)
	}

	tok, err := newTokenizer(filepath.Join(modelDir, vocabFile))
	if err != nil {
		sess.close()
		return nil, fmt.Errorf("semantic: %w", err)
	}

	return &ONNXEmbedder{session: sess, tok: tok}, nil
}

// Dim returns the embedding dimensionality.
func (e *ONNXEmbedder) Dim() int {
	return int(e.session.embedDim)
}

// Embed produces one embedding vector for a title string.
func (e *ONNXEmbedder) Embed(text string) ([]float32, error) {
	vecs, err := e.EmbedBatch([]string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch embeds several titles in one inference call. Used at snapshot
// build time to pre-embed the whole taxonomy.
func (e *ONNXEmbedder) EmbedBatch(texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	batch := e.tok.tokenizeBatch(texts)

	hidden, err := e.session.infer(batch)
	if err != nil {
		return nil, fmt.Errorf("semantic: %w", err)
	}

	dim := e.session.embedDim
	pooled := meanPool(hidden, batch.attentionMask, batch.batchSize, batch.seqLen, dim)

	out := make([][]float32, batch.batchSize)
	for i := int64(0); i < batch.batchSize; i++ {
		out[i] = pooled[i*dim : (i+1)*dim : (i+1)*dim]
	}
	return out, nil
}

// Close releases the ONNX runtime resources.
func (e *ONNXEmbedder) Close() error {
	if e.session != nil {
		return e.session.close()
	}
	return nil
}

// meanPool averages the per-token hidden states of each sequence, weighted
// by the attention mask so padding never contributes.
//
// hidden is flat [batch * seqLen * dim], mask flat [batch * seqLen]; the
// result is flat [batch * dim].
func meanPool(hidden []float32, mask []int64, batchSize, seqLen, dim int64) []float32 {
	out := make([]float32, batchSize*dim)

	for b := int64(0); b < batchSize; b++ {
		maskOff := b * seqLen
		hiddenOff := b * seqLen * dim
		outOff := b * dim

		var count float32
		for s := int64(0); s < seqLen; s++ {
			if mask[maskOff+s] != 1 {
				continue
			}
			count++
			tokOff := hiddenOff + s*dim
			for d := int64(0); d < dim; d++ {
				out[outOff+d] += hidden[tokOff+d]
			}
		}
		if count == 0 {
			continue
		}
		inv := 1 / count
		for d := int64(0); d < dim; d++ {
			out[outOff+d] *= inv
		}
	}
	return out
}
