package semantic

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// The ONNX runtime environment is process-wide; initialize it exactly once
// no matter how many embedders are created.
var ortEnv struct {
	once sync.Once
	err  error
}

func initRuntime(libPath string) error {
	ortEnv.once.Do(func() {
		ort.SetSharedLibraryPath(libPath)
		ortEnv.err = ort.InitializeEnvironment()
	})
	return ortEnv.err
}

// onnxSession wraps a dynamic session for a BERT-style encoder with the
// standard three inputs and a [batch, seq, dim] hidden-state output.
type onnxSession struct {
	session    *ort.DynamicAdvancedSession
	inputNames []string
	outputName string
	embedDim   int64
}

func newONNXSession(modelPath, libPath string) (*onnxSession, error) {
	if err := initRuntime(libPath); err != nil {
		return nil, fmt.Errorf("onnx: runtime init: %w", err)
	}

	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("onnx: model info: %w", err)
	}

	inputNames, err := encoderInputs(inputs)
	if err != nil {
		return nil, err
	}

	if len(outputs) == 0 {
		return nil, fmt.Errorf("onnx: model has no outputs")
	}
	outputName := outputs[0].Name
	dims := outputs[0].Dimensions
	if len(dims) != 3 {
		return nil, fmt.Errorf("onnx: expected [batch, seq, dim] output, got %v", dims)
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("onnx: session options: %w", err)
	}
	defer opts.Destroy()
	// Title strings are tiny; a couple of intra-op threads is plenty.
	opts.SetIntraOpNumThreads(2)
	opts.SetInterOpNumThreads(1)

	session, err := ort.NewDynamicAdvancedSession(modelPath, inputNames, []string{outputName}, opts)
	if err != nil {
		return nil, fmt.Errorf("onnx: create session: %w", err)
	}

	return &onnxSession{
		session:    session,
		inputNames: inputNames,
		outputName: outputName,
		embedDim:   dims[2],
	}, nil
}

// encoderInputs verifies the model exposes the standard BERT input tensors
// and returns them in feed order.
func encoderInputs(inputs []ort.InputOutputInfo) ([]string, error) {
	have := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		have[in.Name] = true
	}
	required := []string{"input_ids", "attention_mask", "token_type_ids"}
	for _, name := range required {
		if !have[name] {
			return nil, fmt.Errorf("onnx: model missing input %q", name)
		}
	}
	return required, nil
}

// infer runs one forward pass and returns the flat hidden states,
// [batch * seqLen * embedDim].
func (s *onnxSession) infer(batch tokenized) ([]float32, error) {
	shape := ort.NewShape(batch.batchSize, batch.seqLen)

	tIDs, err := ort.NewTensor(shape, batch.inputIDs)
	if err != nil {
		return nil, fmt.Errorf("onnx: input_ids tensor: %w", err)
	}
	defer tIDs.Destroy()

	tMask, err := ort.NewTensor(shape, batch.attentionMask)
	if err != nil {
		return nil, fmt.Errorf("onnx: attention_mask tensor: %w", err)
	}
	defer tMask.Destroy()

	tTypes, err := ort.NewTensor(shape, batch.tokenTypeIDs)
	if err != nil {
		return nil, fmt.Errorf("onnx: token_type_ids tensor: %w", err)
	}
	defer tTypes.Destroy()

	outShape := ort.NewShape(batch.batchSize, batch.seqLen, s.embedDim)
	tOut, err := ort.NewEmptyTensor[float32](outShape)
	if err != nil {
		return nil, fmt.Errorf("onnx: output tensor: %w", err)
	}
	defer tOut.Destroy()

	if err := s.session.Run([]ort.Value{tIDs, tMask, tTypes}, []ort.Value{tOut}); err != nil {
		return nil, fmt.Errorf("onnx: inference: %w", err)
	}

	src := tOut.GetData()
	out := make([]float32, len(src))
	copy(out, src)
	return out, nil
}

func (s *onnxSession) close() error {
	return s.session.Destroy()
}
