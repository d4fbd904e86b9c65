package response_models

type OptionView struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon"`
}

type QuestionView struct {
	ID       string       `json:"id"`
	Prompt   string       `json:"prompt"`
	HelpText string       `json:"help_text,omitempty"`
	Options  []OptionView `json:"options"`
}

// QuizStateResponse is what the quiz modal renders after every transition.
// SelectedOptionIDs is set when the displayed question already has an answer
// (right after answering, or after navigating back).
type QuizStateResponse struct {
	SessionID         string        `json:"session_id"`
	State             string        `json:"state"`
	StepIndex         int           `json:"step_index"`
	TotalSteps        int           `json:"total_steps"`
	Question          *QuestionView `json:"question,omitempty"`
	SelectedOptionIDs []string      `json:"selected_option_ids,omitempty"`
}

type ProductView struct {
	ID            string   `json:"id"`
	Brand         string   `json:"brand"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	MonthlyQuota  float64  `json:"monthly_quota"`
	Processor     string   `json:"processor"`
	RAMGB         int      `json:"ram_gb"`
	RAMType       string   `json:"ram_type,omitempty"`
	StorageGB     int      `json:"storage_gb"`
	StorageType   string   `json:"storage_type,omitempty"`
	GPUClass      string   `json:"gpu_class,omitempty"`
	DisplayInches float64  `json:"display_inches,omitempty"`
	Condition     string   `json:"condition"`
	InStock       bool     `json:"in_stock"`
	Images        []string `json:"images,omitempty"`
}

type ProductMatch struct {
	Product    ProductView `json:"product"`
	MatchScore int         `json:"match_score"`
	Reasons    []string    `json:"reasons"`
}

type QuizResultsResponse struct {
	SessionID string         `json:"session_id"`
	State     string         `json:"state"`
	Results   []ProductMatch `json:"results"`
}

// WizardSeed is the payload handed to the financing application wizard when
// the user accepts a recommendation.
type WizardSeed struct {
	ProductID    string  `json:"product_id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Price        float64 `json:"price"`
	MonthlyQuota float64 `json:"monthly_quota"`
	Processor    string  `json:"processor"`
	RAMGB        int     `json:"ram_gb"`
	StorageGB    int     `json:"storage_gb"`
	GPUClass     string  `json:"gpu_class,omitempty"`
}

// BrowseResponse hands the results and the projected catalog filters back to
// the caller, for both the navigating and the embedded variant.
type BrowseResponse struct {
	SessionID string            `json:"session_id"`
	Results   []ProductMatch    `json:"results"`
	Filters   map[string]string `json:"filters"`
}
