package request_models

// CatalogQuery mirrors the filter parameters the quiz projects from a
// preference profile. Every field is optional; absent fields do not filter.
type CatalogQuery struct {
	Usage      string  `form:"usage"`
	QuotaMin   float64 `form:"quota_min"`
	QuotaMax   float64 `form:"quota_max"`
	Brand      string  `form:"brand"`
	RAMMin     int     `form:"ram_min"`
	StorageMin int     `form:"storage_min"`
	Stock      string  `form:"stock"`
	Condition  string  `form:"condition"`
	Page       int     `form:"page"`
	PageSize   int     `form:"pageSize"`
}
