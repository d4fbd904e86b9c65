package db_models

// QuizConfig is the quiz configured for one landing page. A landing without
// an active config simply has no quiz; that is a valid state, not an error.
type QuizConfig struct {
	BaseModel
	LandingID    string `gorm:"uniqueIndex"`
	Title        string
	ResultsCount int `gorm:"default:5"`
	Active       bool
	Questions    []QuizQuestion `gorm:"foreignKey:QuizConfigID"`
}
