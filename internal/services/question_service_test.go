package services

import (
	"context"
	"errors"
	"testing"

	"credimatch/internal/models/db_models"
	"credimatch/pkg/utils"
)

// mockQuestionRepo implements repositories.QuestionRepository for testing.
type mockQuestionRepo struct {
	config    *db_models.QuizConfig
	err       error
	updateErr error
}

func (m *mockQuestionRepo) GetActiveConfigByLanding(context.Context, string) (*db_models.QuizConfig, error) {
	return m.config, m.err
}

func (m *mockQuestionRepo) GetConfigByID(context.Context, string) (*db_models.QuizConfig, error) {
	return m.config, m.err
}

func (m *mockQuestionRepo) UpdateResultsCount(context.Context, string, int) error {
	return m.updateErr
}

func storedConfig(t *testing.T) *db_models.QuizConfig {
	t.Helper()
	config := &db_models.QuizConfig{
		LandingID:    "landing-1",
		Title:        "Encuentra tu laptop",
		ResultsCount: 4,
		Active:       true,
	}
	config.ID = stableUUID(t, 100)

	question := db_models.QuizQuestion{
		Position: 1,
		Prompt:   "¿Para qué vas a usar tu equipo?",
	}
	question.ID = stableUUID(t, 101)

	option := db_models.QuizOption{
		Position: 1,
		Label:    "Juegos",
		IconTag:  "gamepad",
		Usage:    "gaming",
		GPUClass: "dedicated",
		MinRAMGB: 16,
	}
	option.ID = stableUUID(t, 102)

	question.Options = []db_models.QuizOption{option}
	config.Questions = []db_models.QuizQuestion{question}
	return config
}

func TestLoadQuizForLanding(t *testing.T) {
	svc := NewQuestionService(&mockQuestionRepo{config: storedConfig(t)})

	def, err := svc.LoadQuizForLanding(context.Background(), "landing-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def == nil {
		t.Fatal("expected a quiz definition")
	}
	if def.ResultsCount != 4 {
		t.Errorf("results count = %d, want 4", def.ResultsCount)
	}
	if len(def.Questions) != 1 || len(def.Questions[0].Options) != 1 {
		t.Fatalf("definition shape = %+v", def.Questions)
	}
	opt := def.Questions[0].Options[0]
	if opt.Weights.Usage != "gaming" || opt.Weights.MinRAMGB != 16 {
		t.Errorf("option weights = %+v", opt.Weights)
	}
	if string(opt.Icon) != "gamepad" {
		t.Errorf("icon = %s, want gamepad", opt.Icon)
	}
}

func TestLoadQuizAbsenceIsNotAnError(t *testing.T) {
	svc := NewQuestionService(&mockQuestionRepo{})

	def, err := svc.LoadQuizForLanding(context.Background(), "landing-without-quiz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def != nil {
		t.Fatalf("expected no definition, got %+v", def)
	}
}

func TestLoadQuizWithoutQuestionsIsAbsence(t *testing.T) {
	config := storedConfig(t)
	config.Questions = nil
	svc := NewQuestionService(&mockQuestionRepo{config: config})

	def, err := svc.LoadQuizForLanding(context.Background(), "landing-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def != nil {
		t.Fatalf("a quiz without questions must behave like no quiz, got %+v", def)
	}
}

func TestLoadQuizStorageFailure(t *testing.T) {
	svc := NewQuestionService(&mockQuestionRepo{err: errors.New("connection reset")})

	if _, err := svc.LoadQuizForLanding(context.Background(), "landing-1"); !errors.Is(err, utils.ErrQuizLoadFailed) {
		t.Fatalf("err = %v, want ErrQuizLoadFailed", err)
	}
}

func TestLoadQuizRejectsUnknownIconTag(t *testing.T) {
	config := storedConfig(t)
	config.Questions[0].Options[0].IconTag = "unicorn"
	svc := NewQuestionService(&mockQuestionRepo{config: config})

	if _, err := svc.LoadQuizForLanding(context.Background(), "landing-1"); !errors.Is(err, utils.ErrQuizLoadFailed) {
		t.Fatalf("err = %v, want ErrQuizLoadFailed", err)
	}
}

func TestLoadQuizDefaultsResultsCount(t *testing.T) {
	config := storedConfig(t)
	config.ResultsCount = 0
	svc := NewQuestionService(&mockQuestionRepo{config: config})

	def, err := svc.LoadQuizForLanding(context.Background(), "landing-1")
	if err != nil {
		t.Fatal(err)
	}
	if def.ResultsCount != 5 {
		t.Errorf("results count = %d, want default 5", def.ResultsCount)
	}
}
