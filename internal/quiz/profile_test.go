package quiz

import (
	"reflect"
	"testing"
)

func testQuestions() []Question {
	return []Question{
		{
			ID:     "q-usage",
			Prompt: "¿Para qué vas a usar tu equipo?",
			Options: []Option{
				{ID: "opt-gaming", Label: "Juegos", Icon: IconGamepad, Weights: WeightVector{Usage: UsageGaming, MinRAMGB: 16, GPU: GPUDedicated}},
				{ID: "opt-student", Label: "Estudios", Icon: IconBackpack, Weights: WeightVector{Usage: UsageStudent, MinRAMGB: 8}},
				{ID: "opt-work", Label: "Trabajo", Icon: IconBriefcase, Weights: WeightVector{Usage: UsageWork, MinRAMGB: 16}},
			},
		},
		{
			ID:     "q-budget",
			Prompt: "¿Cuánto puedes pagar al mes?",
			Options: []Option{
				{ID: "opt-low", Label: "Hasta S/80", Icon: IconCoins, Weights: WeightVector{Budget: BudgetLow}},
				{ID: "opt-medium", Label: "S/80 a S/150", Icon: IconWallet, Weights: WeightVector{Budget: BudgetMedium}},
				{ID: "opt-premium", Label: "Más de S/250", Icon: IconGem, Weights: WeightVector{Budget: BudgetPremium}},
			},
		},
		{
			ID:     "q-brand",
			Prompt: "¿Tienes una marca preferida?",
			Options: []Option{
				{ID: "opt-lenovo", Label: "Lenovo", Icon: IconBox, Weights: WeightVector{Brand: "Lenovo"}},
				{ID: "opt-any", Label: "Cualquiera", Icon: IconSparkles, Weights: WeightVector{Brand: BrandAny}},
			},
		},
		{
			ID:     "q-stock",
			Prompt: "¿Lo necesitas de inmediato?",
			Options: []Option{
				{ID: "opt-now", Label: "Sí, ya", Icon: IconTruck, Weights: WeightVector{RequireStock: true, Condition: ConditionAny}},
				{ID: "opt-wait", Label: "Puedo esperar", Icon: IconHouse, Weights: WeightVector{Condition: ConditionNew}},
			},
		},
	}
}

func TestAccumulateMergesDisjointKeys(t *testing.T) {
	questions := testQuestions()
	answers := []Answer{
		{QuestionID: "q-usage", OptionIDs: []string{"opt-student"}},
		{QuestionID: "q-budget", OptionIDs: []string{"opt-low"}},
		{QuestionID: "q-brand", OptionIDs: []string{"opt-lenovo"}},
	}

	p := Accumulate(answers, questions)

	if p.Usage != UsageStudent {
		t.Errorf("usage = %q, want %q", p.Usage, UsageStudent)
	}
	if p.Budget != BudgetLow {
		t.Errorf("budget = %q, want %q", p.Budget, BudgetLow)
	}
	if p.Brand != "Lenovo" {
		t.Errorf("brand = %q, want Lenovo", p.Brand)
	}
	if p.MinRAMGB != 8 {
		t.Errorf("min ram = %d, want 8", p.MinRAMGB)
	}
}

func TestAccumulateOrderIndependentForDisjointKeys(t *testing.T) {
	questions := testQuestions()
	answers := []Answer{
		{QuestionID: "q-usage", OptionIDs: []string{"opt-work"}},
		{QuestionID: "q-budget", OptionIDs: []string{"opt-medium"}},
		{QuestionID: "q-stock", OptionIDs: []string{"opt-now"}},
	}
	reversed := []Answer{answers[2], answers[1], answers[0]}

	a := Accumulate(answers, questions)
	b := Accumulate(reversed, questions)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("profiles differ by answer order: %+v vs %+v", a, b)
	}
}

func TestAccumulateLastWriteWinsPerKey(t *testing.T) {
	questions := testQuestions()
	answers := []Answer{
		{QuestionID: "q-usage", OptionIDs: []string{"opt-gaming"}},  // MinRAMGB 16
		{QuestionID: "q-usage", OptionIDs: []string{"opt-student"}}, // MinRAMGB 8
	}

	p := Accumulate(answers, questions)

	if p.MinRAMGB != 8 {
		t.Errorf("min ram = %d, want 8 (later answer wins)", p.MinRAMGB)
	}
	if p.Usage != UsageStudent {
		t.Errorf("usage = %q, want %q", p.Usage, UsageStudent)
	}
}

func TestAccumulateSkipsUnknownOption(t *testing.T) {
	questions := testQuestions()
	answers := []Answer{
		{QuestionID: "q-usage", OptionIDs: []string{"opt-deleted"}},
		{QuestionID: "q-missing", OptionIDs: []string{"opt-low"}},
		{QuestionID: "q-budget", OptionIDs: []string{"opt-low"}},
	}

	p := Accumulate(answers, questions)

	if p.Usage != "" {
		t.Errorf("usage = %q, want absent", p.Usage)
	}
	if p.Budget != BudgetLow {
		t.Errorf("budget = %q, want %q", p.Budget, BudgetLow)
	}
}

func TestAccumulateEmpty(t *testing.T) {
	p := Accumulate(nil, testQuestions())
	if !p.IsZero() {
		t.Errorf("empty answers gave non-empty profile: %+v", p)
	}
}

func TestParseIconTag(t *testing.T) {
	if _, err := ParseIconTag("gamepad"); err != nil {
		t.Errorf("gamepad should parse: %v", err)
	}
	if _, err := ParseIconTag("rocketship"); err == nil {
		t.Error("unknown tag should be rejected, got nil error")
	}
}
