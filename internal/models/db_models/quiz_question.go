package db_models

import "github.com/google/uuid"

type QuizQuestion struct {
	BaseModel
	QuizConfigID uuid.UUID `gorm:"index"`
	Position     int
	Prompt       string
	HelpText     string
	Options      []QuizOption `gorm:"foreignKey:QuestionID"`
}
