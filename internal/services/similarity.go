package services

import "math"

// TFIDFCosine scores two normalized texts in [0, 1] by building TF-IDF
// vectors over their joint vocabulary (a two-document corpus) and taking the
// cosine of the angle between them. Smoothed IDF: ln((1+N)/(1+df)) + 1.
func TFIDFCosine(a, b string) float64 {
	termsA := Tokenize(a)
	termsB := Tokenize(b)

	// An empty document has no vocabulary to vectorize; similarity is
	// defined as 0 instead of failing on the degenerate corpus.
	if len(termsA) == 0 || len(termsB) == 0 {
		return 0
	}

	tfA := termCounts(termsA)
	tfB := termCounts(termsB)

	idf := make(map[string]float64, len(tfA)+len(tfB))
	for term := range tfA {
		df := 1.0
		if _, ok := tfB[term]; ok {
			df = 2.0
		}
		idf[term] = math.Log(3.0/(1.0+df)) + 1
	}
	for term := range tfB {
		if _, ok := idf[term]; !ok {
			idf[term] = math.Log(3.0/2.0) + 1
		}
	}

	vecA := weigh(tfA, idf)
	vecB := weigh(tfB, idf)

	var dot float64
	for term, wa := range vecA {
		dot += wa * vecB[term]
	}
	return dot
}

// MatchPercentage scales a similarity score to 0-100, rounded to 2 decimals.
func MatchPercentage(similarity float64) float64 {
	return math.Round(similarity*100*100) / 100
}

func termCounts(terms []string) map[string]float64 {
	counts := make(map[string]float64, len(terms))
	for _, term := range terms {
		counts[term]++
	}
	return counts
}

// weigh builds an L2-normalized TF-IDF vector, so the cosine reduces to a
// dot product.
func weigh(tf map[string]float64, idf map[string]float64) map[string]float64 {
	vec := make(map[string]float64, len(tf))
	var norm float64
	for term, count := range tf {
		w := count * idf[term]
		vec[term] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return vec
	}
	for term := range vec {
		vec[term] /= norm
	}
	return vec
}
