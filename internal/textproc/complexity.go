package textproc

// Complexity scores text readability in [0,1], blending average sentence
// length with the proportion of long words. Longer sentences and more long
// words score higher.
func Complexity(text string) float64 {
	if text == "" {
		return 0
	}
	sentences := Sentences(text)
	words := Words(text)
	if len(sentences) == 0 || len(words) == 0 {
		return 0
	}

	avgSentenceLen := float64(len(words)) / float64(len(sentences))

	long := 0
	for _, w := range words {
		if len(w) > 6 {
			long++
		}
	}
	longRatio := float64(long) / float64(len(words))

	score := (avgSentenceLen*0.4 + longRatio*100*0.6) / 20
	if score > 1 {
		return 1
	}
	return score
}

// Similarity computes Jaccard word-overlap similarity between two texts in
// [0,1]. This is the rule-based fallback for semantic similarity.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	setA := make(map[string]struct{})
	for _, w := range Tokenize(a) {
		setA[w] = struct{}{}
	}
	setB := make(map[string]struct{})
	for _, w := range Tokenize(b) {
		setB[w] = struct{}{}
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	inter := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}
