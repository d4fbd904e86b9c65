package response_models

type CatalogResponse struct {
	Products []ProductView `json:"products"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}
