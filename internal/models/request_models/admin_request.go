package request_models

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateQuizConfigRequest struct {
	ResultsCount int `json:"results_count" binding:"required,min=1,max=20"`
}
