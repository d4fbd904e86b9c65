package db_models

import "github.com/lib/pq"

type Product struct {
	BaseModel
	Brand         string `gorm:"index"`
	Name          string
	Price         float64
	MonthlyQuota  float64 `gorm:"index"`
	Processor     string
	RAMGB         int
	RAMType       string
	StorageGB     int
	StorageType   string
	GPUClass      string
	DisplayInches float64
	UsageTags     pq.StringArray `gorm:"type:text[]"`
	Condition     string
	InStock       bool
	Images        pq.StringArray `gorm:"type:text[]"`
}
