package recommend

import (
	"math"
	"strings"
	"unicode"
)

// vectorizer is a term-frequency–inverse-document-frequency model over a
// fixed corpus: smoothed idf ln((1+n)/(1+df))+1 and L2-normalized rows, so
// cosine similarity reduces to a dot product.
type vectorizer struct {
	vocab map[string]int
	idf   []float64
}

func fit(docs [][]string) *vectorizer {
	vocab := make(map[string]int)
	var df []int
	for _, doc := range docs {
		seen := make(map[int]struct{}, len(doc))
		for _, term := range doc {
			idx, ok := vocab[term]
			if !ok {
				idx = len(vocab)
				vocab[term] = idx
				df = append(df, 0)
			}
			if _, dup := seen[idx]; dup {
				continue
			}
			seen[idx] = struct{}{}
			df[idx]++
		}
	}
	n := len(docs)
	idf := make([]float64, len(df))
	for i, d := range df {
		idf[i] = math.Log(float64(1+n)/float64(1+d)) + 1
	}
	return &vectorizer{vocab: vocab, idf: idf}
}

func (v *vectorizer) empty() bool {
	return len(v.vocab) == 0
}

func (v *vectorizer) transform(doc []string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, term := range doc {
		if i, ok := v.vocab[term]; ok {
			vec[i]++
		}
	}
	var norm float64
	for i := range vec {
		vec[i] *= v.idf[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// cosine of two L2-normalized vectors.
func cosine(a, b []float64) float64 {
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot
}

// tokenize lowercases, splits on anything that is not a letter or digit,
// and drops stop words and single-character fragments.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) < 2 || stopwords.Contains(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
