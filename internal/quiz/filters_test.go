package quiz

import "testing"

func TestProjectToFiltersStudentLowBudget(t *testing.T) {
	// answers {usage=student, budget=low} must project quota range [0,80].
	questions := testQuestions()
	answers := []Answer{
		{QuestionID: "q-usage", OptionIDs: []string{"opt-student"}},
		{QuestionID: "q-budget", OptionIDs: []string{"opt-low"}},
	}

	filters := ProjectToFilters(Accumulate(answers, questions))

	if filters[FilterUsage] != "student" {
		t.Errorf("usage filter = %q, want student", filters[FilterUsage])
	}
	if filters[FilterQuotaMin] != "0" || filters[FilterQuotaMax] != "80" {
		t.Errorf("quota range = [%s,%s], want [0,80]", filters[FilterQuotaMin], filters[FilterQuotaMax])
	}
}

func TestProjectToFiltersOmitsAbsentAttributes(t *testing.T) {
	filters := ProjectToFilters(PreferenceProfile{WeightVector{Usage: UsageHome}})

	if len(filters) != 1 {
		t.Errorf("filters = %v, want only usage", filters)
	}
	for _, key := range []string{FilterQuotaMin, FilterQuotaMax, FilterBrand, FilterRAMMin, FilterStorageMin, FilterStock, FilterCondition} {
		if _, ok := filters[key]; ok {
			t.Errorf("unanswered attribute leaked filter key %q", key)
		}
	}
}

func TestProjectToFiltersEmptyProfile(t *testing.T) {
	if filters := ProjectToFilters(PreferenceProfile{}); len(filters) != 0 {
		t.Errorf("empty profile projected filters: %v", filters)
	}
}

func TestProjectToFiltersFullProfile(t *testing.T) {
	p := PreferenceProfile{WeightVector{
		Usage:        UsageGaming,
		Budget:       BudgetHigh,
		Brand:        "Lenovo",
		Condition:    ConditionRefurbished,
		MinRAMGB:     16,
		MinStorageGB: 512,
		RequireStock: true,
	}}

	filters := ProjectToFilters(p)

	want := map[string]string{
		FilterUsage:      "gaming",
		FilterQuotaMin:   "150",
		FilterQuotaMax:   "250",
		FilterBrand:      "lenovo",
		FilterCondition:  "refurbished",
		FilterRAMMin:     "16",
		FilterStorageMin: "512",
		FilterStock:      StockAvailable,
	}
	for k, v := range want {
		if filters[k] != v {
			t.Errorf("filter %s = %q, want %q", k, filters[k], v)
		}
	}
	if len(filters) != len(want) {
		t.Errorf("filters = %v, want exactly %d keys", filters, len(want))
	}
}

func TestProjectToFiltersAnyValuesOmitted(t *testing.T) {
	p := PreferenceProfile{WeightVector{Brand: BrandAny, Condition: ConditionAny}}
	filters := ProjectToFilters(p)

	if _, ok := filters[FilterBrand]; ok {
		t.Error("brand any must not project a brand filter")
	}
	if _, ok := filters[FilterCondition]; ok {
		t.Error("condition any must not project a condition filter")
	}
}
