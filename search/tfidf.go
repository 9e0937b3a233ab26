package search

import "math"

// corpus holds per-document term counts and document frequencies for
// one text field across a note collection. A fresh corpus is built per
// query; collections are small enough (tens to low hundreds of notes)
// that recomputation is cheaper than cache invalidation.
type corpus struct {
	docs []map[string]int // term counts per document
	df   map[string]int   // number of documents containing each term
}

// newCorpus tokenizes the given texts, one document per element.
func newCorpus(texts []string) *corpus {
	c := &corpus{
		docs: make([]map[string]int, len(texts)),
		df:   make(map[string]int),
	}

	for i, text := range texts {
		counts := make(map[string]int)
		for _, term := range tokenize(text) {
			counts[term]++
		}
		c.docs[i] = counts
		for term := range counts {
			c.df[term]++
		}
	}

	return c
}

// score sums the TF-IDF relevance of the query terms against document
// idx. TF is the raw term count; IDF = ln(N/(1+df)) + 1, which stays
// positive for any df <= N, so a zero score means no query term
// appears in the document.
func (c *corpus) score(queryTerms []string, idx int) float64 {
	if idx < 0 || idx >= len(c.docs) {
		return 0
	}

	counts := c.docs[idx]
	total := 0.0
	for _, term := range queryTerms {
		tf := counts[term]
		if tf == 0 {
			continue
		}
		idf := math.Log(float64(len(c.docs))/float64(1+c.df[term])) + 1
		total += float64(tf) * idf
	}

	return total
}
