package search

// Weights holds the scoring tunables for lexical scoring and result
// fusion. The defaults were chosen empirically; treat them as a
// starting point rather than optimal values.
type Weights struct {
	// Lexical field multipliers. Tags carry the most weight (explicit
	// curation signal), titles next, body content the least since it is
	// diluted by volume.
	ContentWeight float64 // default: 1.0
	TitleWeight   float64 // default: 2.0
	TagWeight     float64 // default: 3.0

	// Rank-score multipliers used during fusion. Semantic matches are
	// treated as the stronger relevance signal.
	SemanticRankWeight float64 // default: 1.5
	LexicalRankWeight  float64 // default: 1.0

	// Secondary boosts.
	RecencyWindowDays float64 // recency boost decays to zero at this age, default: 30
	LengthNorm        float64 // content length at which the length boost saturates, default: 1000
	LengthBoostWeight float64 // cap of the length boost, default: 0.5

	// SimilarityThreshold is the minimum raw similarity for a vector
	// index hit to count, on a 0-1 cosine scale. Default: 0.2
	SimilarityThreshold float32

	// TopK is how many candidates to request from the vector index.
	// Default: 10
	TopK int

	// MaxResults caps the fused result list. Default: 5
	MaxResults int
}

// DefaultWeights returns the default scoring configuration.
func DefaultWeights() Weights {
	return Weights{
		ContentWeight:       1.0,
		TitleWeight:         2.0,
		TagWeight:           3.0,
		SemanticRankWeight:  1.5,
		LexicalRankWeight:   1.0,
		RecencyWindowDays:   30,
		LengthNorm:          1000,
		LengthBoostWeight:   0.5,
		SimilarityThreshold: 0.2,
		TopK:                10,
		MaxResults:          5,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (w *Weights) ApplyDefaults() {
	defaults := DefaultWeights()

	if w.ContentWeight == 0 {
		w.ContentWeight = defaults.ContentWeight
	}
	if w.TitleWeight == 0 {
		w.TitleWeight = defaults.TitleWeight
	}
	if w.TagWeight == 0 {
		w.TagWeight = defaults.TagWeight
	}
	if w.SemanticRankWeight == 0 {
		w.SemanticRankWeight = defaults.SemanticRankWeight
	}
	if w.LexicalRankWeight == 0 {
		w.LexicalRankWeight = defaults.LexicalRankWeight
	}
	if w.RecencyWindowDays == 0 {
		w.RecencyWindowDays = defaults.RecencyWindowDays
	}
	if w.LengthNorm == 0 {
		w.LengthNorm = defaults.LengthNorm
	}
	if w.LengthBoostWeight == 0 {
		w.LengthBoostWeight = defaults.LengthBoostWeight
	}
	if w.SimilarityThreshold == 0 {
		w.SimilarityThreshold = defaults.SimilarityThreshold
	}
	if w.TopK == 0 {
		w.TopK = defaults.TopK
	}
	if w.MaxResults == 0 {
		w.MaxResults = defaults.MaxResults
	}
}
