package response_models

type TokenResponse struct {
	Token string `json:"token"`
}

type QuizConfigResponse struct {
	ID           string `json:"id"`
	LandingID    string `json:"landing_id"`
	Title        string `json:"title"`
	ResultsCount int    `json:"results_count"`
	Active       bool   `json:"active"`
}
