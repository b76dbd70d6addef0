package ladder

type options struct {
	roles             []Role
	taxonomyPath      string
	rulesPath         string
	overlapThreshold  float64
	keywordConfidence float64
	semanticThreshold float64
	modelDir          string
}

// Option configures a Ladder instance.
type Option func(*options)

// WithRoles supplies the canonical role set directly, e.g. from the
// persistence layer. Takes precedence over WithTaxonomyFile. When neither
// is given, the built-in starter taxonomy is used.
func WithRoles(roles []Role) Option {
	return func(o *options) {
		o.roles = roles
	}
}

// WithTaxonomyFile loads the canonical role set from a YAML export.
func WithTaxonomyFile(path string) Option {
	return func(o *options) {
		o.taxonomyPath = path
	}
}

// WithRulesFile loads the lexical rule tables (acronyms, minor words,
// stopwords, seniority lexicon, keyword rules) from a YAML file instead of
// the built-in defaults.
func WithRulesFile(path string) Option {
	return func(o *options) {
		o.rulesPath = path
	}
}

// WithOverlapThreshold sets the minimum token-overlap score accepted by the
// matcher's scoring tier. Default: 0.6.
func WithOverlapThreshold(t float64) Option {
	return func(o *options) {
		o.overlapThreshold = t
	}
}

// WithKeywordConfidence sets the fixed confidence reported for keyword-rule
// matches. Default: 0.5.
func WithKeywordConfidence(c float64) Option {
	return func(o *options) {
		o.keywordConfidence = c
	}
}

// WithSemanticModel enables the embedding fallback tier using the ONNX
// encoder in dir (model.onnx, vocab.txt, libonnxruntime.so). Without it
// the matcher is purely lexical.
func WithSemanticModel(dir string) Option {
	return func(o *options) {
		o.modelDir = dir
	}
}

// WithSemanticThreshold sets the minimum cosine similarity the semantic
// tier accepts. Default: 0.7. Only meaningful with WithSemanticModel.
func WithSemanticThreshold(t float64) Option {
	return func(o *options) {
		o.semanticThreshold = t
	}
}

func defaultOptions() options {
	return options{
		overlapThreshold:  0.6,
		keywordConfidence: 0.5,
		semanticThreshold: 0.7,
	}
}
