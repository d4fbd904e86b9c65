package db_models

import "github.com/google/uuid"

// QuizOption carries the sparse weight columns an answer contributes to the
// preference profile. Empty strings and zeroes mean the option does not touch
// that attribute.
type QuizOption struct {
	BaseModel
	QuestionID  uuid.UUID `gorm:"index"`
	Position    int
	Label       string
	Description string
	IconTag     string

	Usage        string
	Budget       string
	Brand        string
	Condition    string
	GPUClass     string
	MinRAMGB     int
	MinStorageGB int
	RequireStock bool
}
