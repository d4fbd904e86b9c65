package quiz

import (
	"math"
	"sort"
	"strings"
)

// Product is the engine's view of a catalog entry.
type Product struct {
	ID            string
	Brand         string
	Name          string
	Price         float64
	MonthlyQuota  float64
	Processor     string
	RAMGB         int
	RAMType       string
	StorageGB     int
	StorageType   string
	GPU           GPUClass
	DisplayInches float64
	UsageTags     []Usage
	Condition     Condition
	InStock       bool
	Images        []string
}

// Match is the outcome of scoring one product against a profile.
type Match struct {
	Score   int
	Reasons []string
}

// Relative attribute weights. Usage and budget drive the ranking; brand,
// condition and stock act as tiebreakers.
const (
	weightUsage     = 3.0
	weightBudget    = 3.0
	weightRAM       = 1.5
	weightGPU       = 1.5
	weightStorage   = 1.0
	weightBrand     = 1.0
	weightCondition = 0.5
	weightStock     = 0.5
)

// reasonThreshold is the minimum partial credit an attribute needs before
// its phrase may be surfaced to the user.
const reasonThreshold = 0.8

// maxReasons caps the phrases shown per product.
const maxReasons = 3

type contribution struct {
	key     string
	weight  float64
	partial float64
	reason  string
}

// Score compares a profile against a product and returns a 0-100 match score
// plus up to three user-facing reason phrases. Only attributes present in the
// profile contribute; the weighted sum is normalized over those. Numeric
// thresholds below the requirement earn linear partial credit
// (value / required, floor 0). Deterministic: same inputs, same output.
func Score(p PreferenceProfile, prod Product) Match {
	var contribs []contribution

	if p.Usage != "" {
		partial := 0.0
		for _, u := range prod.UsageTags {
			if u == p.Usage {
				partial = 1.0
				break
			}
		}
		contribs = append(contribs, contribution{"usage", weightUsage, partial, "Ideal para tu uso"})
	}

	if p.Budget != "" {
		partial := budgetCredit(p.Budget, prod.MonthlyQuota)
		contribs = append(contribs, contribution{"budget", weightBudget, partial, "Dentro de tu presupuesto"})
	}

	if p.MinRAMGB > 0 {
		partial := thresholdCredit(prod.RAMGB, p.MinRAMGB)
		contribs = append(contribs, contribution{"ram", weightRAM, partial, "Memoria RAM suficiente"})
	}

	if p.GPU != "" {
		partial := 0.0
		if prod.GPU == p.GPU {
			partial = 1.0
		}
		contribs = append(contribs, contribution{"gpu", weightGPU, partial, "Gráficos a la altura"})
	}

	if p.MinStorageGB > 0 {
		partial := thresholdCredit(prod.StorageGB, p.MinStorageGB)
		contribs = append(contribs, contribution{"storage", weightStorage, partial, "Almacenamiento amplio"})
	}

	if p.Brand != "" {
		partial := 0.0
		if p.Brand == BrandAny || strings.EqualFold(p.Brand, prod.Brand) {
			partial = 1.0
		}
		contribs = append(contribs, contribution{"brand", weightBrand, partial, "De tu marca preferida"})
	}

	if p.Condition != "" {
		partial := 0.0
		if p.Condition == ConditionAny || p.Condition == prod.Condition {
			partial = 1.0
		}
		contribs = append(contribs, contribution{"condition", weightCondition, partial, "En la condición que buscas"})
	}

	if p.RequireStock {
		partial := 0.0
		if prod.InStock {
			partial = 1.0
		}
		contribs = append(contribs, contribution{"stock", weightStock, partial, "Disponible de inmediato"})
	}

	if len(contribs) == 0 {
		// Empty profile matches everything equally.
		return Match{Score: 100}
	}

	var sum, total float64
	for _, c := range contribs {
		sum += c.weight * c.partial
		total += c.weight
	}
	score := int(math.Round(sum / total * 100))

	return Match{Score: score, Reasons: topReasons(contribs)}
}

// topReasons picks the phrases of the strongest contributions above the
// threshold, ordered by weighted contribution then key for determinism.
func topReasons(contribs []contribution) []string {
	sorted := make([]contribution, len(contribs))
	copy(sorted, contribs)
	sort.Slice(sorted, func(i, j int) bool {
		wi, wj := sorted[i].weight*sorted[i].partial, sorted[j].weight*sorted[j].partial
		if wi != wj {
			return wi > wj
		}
		return sorted[i].key < sorted[j].key
	})

	var reasons []string
	for _, c := range sorted {
		if c.partial < reasonThreshold {
			continue
		}
		reasons = append(reasons, c.reason)
		if len(reasons) == maxReasons {
			break
		}
	}
	return reasons
}

// thresholdCredit grants full credit at or above the requirement and linear
// partial credit below it.
func thresholdCredit(value, required int) float64 {
	if required <= 0 {
		return 1.0
	}
	if value >= required {
		return 1.0
	}
	if value <= 0 {
		return 0.0
	}
	return float64(value) / float64(required)
}

// budgetCredit grants full credit inside the bucket's quota range and decays
// linearly outside it, using the bucket width as the decay scale.
func budgetCredit(b BudgetBucket, quota float64) float64 {
	min, max, ok := b.QuotaRange()
	if !ok {
		return 0.0
	}
	if quota >= min && quota <= max {
		return 1.0
	}
	width := max - min
	var dist float64
	if quota < min {
		dist = min - quota
	} else {
		dist = quota - max
	}
	credit := 1.0 - dist/width
	if credit < 0 {
		return 0.0
	}
	return credit
}
