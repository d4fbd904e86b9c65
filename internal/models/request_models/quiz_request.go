package request_models

type StartQuizRequest struct {
	LandingID string `json:"landing_id" binding:"required"`
	Context   string `json:"context,omitempty"` // "standalone" or "embedded"
}

type AnswerRequest struct {
	// Single-select today; the container is a list so multi-select questions
	// stay representable on the wire.
	OptionIDs []string `json:"option_ids" binding:"required,min=1"`
}

type ChooseProductRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}
