package quiz

import "sort"

// ScoredProduct is a catalog entry annotated with its match against a
// profile. Ephemeral: recomputed per quiz run, never stored.
type ScoredProduct struct {
	Product Product
	Score   int
	Reasons []string
}

// Rank scores every product against the profile and returns the top k,
// ordered by score descending. Equal scores rank the cheaper product first;
// this tie-break is policy, not accident.
func Rank(p PreferenceProfile, products []Product, k int) []ScoredProduct {
	scored := make([]ScoredProduct, 0, len(products))
	for _, prod := range products {
		m := Score(p, prod)
		scored = append(scored, ScoredProduct{Product: prod, Score: m.Score, Reasons: m.Reasons})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Product.Price < scored[j].Product.Price
	})

	if k > 0 && len(scored) > k {
		scored = scored[:k]
	}
	return scored
}
