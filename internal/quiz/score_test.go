package quiz

import (
	"reflect"
	"testing"
)

func gamingProfile() PreferenceProfile {
	return PreferenceProfile{WeightVector{
		Usage:    UsageGaming,
		Budget:   BudgetHigh,
		MinRAMGB: 16,
		GPU:      GPUDedicated,
	}}
}

func gamingLaptop() Product {
	return Product{
		ID: "p1", Brand: "Acer", Name: "Nitro V", Price: 4599, MonthlyQuota: 189,
		RAMGB: 16, StorageGB: 1024, GPU: GPUDedicated,
		UsageTags: []Usage{UsageGaming}, Condition: ConditionNew, InStock: true,
	}
}

func TestScorePerfectMatch(t *testing.T) {
	m := Score(gamingProfile(), gamingLaptop())
	if m.Score != 100 {
		t.Errorf("score = %d, want 100", m.Score)
	}
	if len(m.Reasons) == 0 || len(m.Reasons) > 3 {
		t.Errorf("reasons length = %d, want 1..3", len(m.Reasons))
	}
}

func TestScoreRange(t *testing.T) {
	products := append(FallbackCatalog(), Product{ID: "bare"})
	profiles := []PreferenceProfile{
		{},
		gamingProfile(),
		{WeightVector{Usage: UsageHome, Budget: BudgetLow, Brand: "Apple", Condition: ConditionNew, RequireStock: true}},
		{WeightVector{MinRAMGB: 64, MinStorageGB: 4096, GPU: GPUDedicated}},
	}

	for _, p := range profiles {
		for _, prod := range products {
			m := Score(p, prod)
			if m.Score < 0 || m.Score > 100 {
				t.Errorf("score for %s out of range: %d", prod.ID, m.Score)
			}
			if len(m.Reasons) > 3 {
				t.Errorf("reasons for %s too long: %d", prod.ID, len(m.Reasons))
			}
		}
	}
}

func TestScoreIdempotent(t *testing.T) {
	p := gamingProfile()
	prod := gamingLaptop()

	first := Score(p, prod)
	second := Score(p, prod)

	if first.Score != second.Score || !reflect.DeepEqual(first.Reasons, second.Reasons) {
		t.Errorf("scoring not idempotent: %+v vs %+v", first, second)
	}
}

func TestScoreEmptyProfile(t *testing.T) {
	m := Score(PreferenceProfile{}, gamingLaptop())
	if m.Score != 100 {
		t.Errorf("empty profile score = %d, want 100", m.Score)
	}
	if len(m.Reasons) != 0 {
		t.Errorf("empty profile produced reasons: %v", m.Reasons)
	}
}

func TestScoreCategoricalMiss(t *testing.T) {
	p := PreferenceProfile{WeightVector{Usage: UsageGaming}}
	prod := gamingLaptop()
	prod.UsageTags = []Usage{UsageHome}

	m := Score(p, prod)
	if m.Score != 0 {
		t.Errorf("score = %d, want 0 for sole mismatched attribute", m.Score)
	}
	if len(m.Reasons) != 0 {
		t.Errorf("mismatch produced reasons: %v", m.Reasons)
	}
}

func TestScoreBrandAnyMatchesEverything(t *testing.T) {
	p := PreferenceProfile{WeightVector{Brand: BrandAny}}
	for _, prod := range FallbackCatalog() {
		if m := Score(p, prod); m.Score != 100 {
			t.Errorf("brand any vs %s: score %d, want 100", prod.Brand, m.Score)
		}
	}
}

func TestScoreBrandCaseInsensitive(t *testing.T) {
	p := PreferenceProfile{WeightVector{Brand: "lenovo"}}
	prod := Product{ID: "x", Brand: "Lenovo"}
	if m := Score(p, prod); m.Score != 100 {
		t.Errorf("score = %d, want 100 for case-insensitive brand match", m.Score)
	}
}

func TestThresholdCredit(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		required int
		want     float64
	}{
		{"at threshold", 16, 16, 1.0},
		{"above threshold", 32, 16, 1.0},
		{"half below", 8, 16, 0.5},
		{"zero value", 0, 16, 0.0},
		{"no requirement", 0, 0, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := thresholdCredit(tt.value, tt.required); got != tt.want {
				t.Errorf("thresholdCredit(%d, %d) = %v, want %v", tt.value, tt.required, got, tt.want)
			}
		})
	}
}

func TestBudgetCredit(t *testing.T) {
	tests := []struct {
		name   string
		bucket BudgetBucket
		quota  float64
		want   float64
	}{
		{"inside low", BudgetLow, 50, 1.0},
		{"low upper edge", BudgetLow, 80, 1.0},
		{"just above low", BudgetLow, 120, 0.5},
		{"far above low", BudgetLow, 500, 0.0},
		{"inside medium", BudgetMedium, 100, 1.0},
		{"below medium", BudgetMedium, 45, 0.5},
		{"inside premium", BudgetPremium, 400, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := budgetCredit(tt.bucket, tt.quota)
			if got != tt.want {
				t.Errorf("budgetCredit(%s, %v) = %v, want %v", tt.bucket, tt.quota, got, tt.want)
			}
			if got < 0 {
				t.Errorf("budget credit went negative: %v", got)
			}
		})
	}
}

func TestReasonsComeFromStrongestContributions(t *testing.T) {
	p := PreferenceProfile{WeightVector{
		Usage:    UsageGaming,
		Budget:   BudgetHigh,
		MinRAMGB: 16,
		GPU:      GPUDedicated,
		Brand:    "Acer",
	}}
	m := Score(p, gamingLaptop())

	if len(m.Reasons) != 3 {
		t.Fatalf("reasons length = %d, want 3", len(m.Reasons))
	}
	// Usage and budget carry the highest weight, so their phrases lead.
	if m.Reasons[0] != "Dentro de tu presupuesto" && m.Reasons[0] != "Ideal para tu uso" {
		t.Errorf("leading reason = %q, want a primary attribute phrase", m.Reasons[0])
	}
}

func TestWeakContributionsProduceNoReason(t *testing.T) {
	p := PreferenceProfile{WeightVector{MinRAMGB: 32}}
	prod := gamingLaptop() // 16 GB -> partial 0.5, below the 0.8 threshold

	m := Score(p, prod)
	if len(m.Reasons) != 0 {
		t.Errorf("weak partial produced reasons: %v", m.Reasons)
	}
}
