package quiz

import (
	"strconv"
	"strings"
)

// Catalog filter parameter names, as the browse view expects them.
const (
	FilterUsage      = "usage"
	FilterQuotaMin   = "quota_min"
	FilterQuotaMax   = "quota_max"
	FilterBrand      = "brand"
	FilterRAMMin     = "ram_min"
	FilterStorageMin = "storage_min"
	FilterStock      = "stock"
	FilterCondition  = "condition"
)

// StockAvailable is the fixed token the catalog understands for "in stock".
const StockAvailable = "available"

// ProjectToFilters translates a preference profile into catalog browse query
// parameters. Attributes absent from the profile are omitted entirely; an
// unanswered attribute never appears as a filter key.
func ProjectToFilters(p PreferenceProfile) map[string]string {
	filters := make(map[string]string)

	if p.Usage != "" {
		filters[FilterUsage] = string(p.Usage)
	}
	if min, max, ok := p.Budget.QuotaRange(); ok {
		filters[FilterQuotaMin] = strconv.FormatFloat(min, 'f', -1, 64)
		filters[FilterQuotaMax] = strconv.FormatFloat(max, 'f', -1, 64)
	}
	if p.Brand != "" && p.Brand != BrandAny {
		filters[FilterBrand] = strings.ToLower(p.Brand)
	}
	if p.MinRAMGB > 0 {
		filters[FilterRAMMin] = strconv.Itoa(p.MinRAMGB)
	}
	if p.MinStorageGB > 0 {
		filters[FilterStorageMin] = strconv.Itoa(p.MinStorageGB)
	}
	if p.RequireStock {
		filters[FilterStock] = StockAvailable
	}
	if p.Condition != "" && p.Condition != ConditionAny {
		filters[FilterCondition] = string(p.Condition)
	}

	return filters
}
