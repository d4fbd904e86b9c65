package quiz

import "fmt"

// Usage is the primary use a buyer has in mind for the machine.
type Usage string

const (
	UsageGaming  Usage = "gaming"
	UsageWork    Usage = "work"
	UsageStudent Usage = "student"
	UsageDesign  Usage = "design"
	UsageHome    Usage = "home"
)

// BudgetBucket groups the monthly quota the buyer is willing to pay.
type BudgetBucket string

const (
	BudgetLow     BudgetBucket = "low"
	BudgetMedium  BudgetBucket = "medium"
	BudgetHigh    BudgetBucket = "high"
	BudgetPremium BudgetBucket = "premium"
)

// QuotaRange returns the monthly quota range implied by the bucket.
func (b BudgetBucket) QuotaRange() (min, max float64, ok bool) {
	switch b {
	case BudgetLow:
		return 0, 80, true
	case BudgetMedium:
		return 80, 150, true
	case BudgetHigh:
		return 150, 250, true
	case BudgetPremium:
		return 250, 500, true
	default:
		return 0, 0, false
	}
}

// Condition is the accepted product condition.
type Condition string

const (
	ConditionNew         Condition = "new"
	ConditionRefurbished Condition = "refurbished"
	ConditionAny         Condition = "any"
)

// GPUClass buckets graphics capability.
type GPUClass string

const (
	GPUIntegrated GPUClass = "integrated"
	GPUEntry      GPUClass = "entry"
	GPUDedicated  GPUClass = "dedicated"
)

// BrandAny matches every brand.
const BrandAny = "any"

// IconTag identifies the visual icon attached to a quiz option. The set is
// closed: an unrecognized tag coming from configuration is a hard error at
// load time, never a silent fallback icon.
type IconTag string

const (
	IconGamepad   IconTag = "gamepad"
	IconBriefcase IconTag = "briefcase"
	IconBackpack  IconTag = "backpack"
	IconPalette   IconTag = "palette"
	IconHouse     IconTag = "house"
	IconCoins     IconTag = "coins"
	IconWallet    IconTag = "wallet"
	IconGem       IconTag = "gem"
	IconChip      IconTag = "chip"
	IconDisk      IconTag = "disk"
	IconBolt      IconTag = "bolt"
	IconBox       IconTag = "box"
	IconSparkles  IconTag = "sparkles"
	IconTruck     IconTag = "truck"
)

// ParseIconTag validates a configured icon tag.
func ParseIconTag(s string) (IconTag, error) {
	switch t := IconTag(s); t {
	case IconGamepad, IconBriefcase, IconBackpack, IconPalette, IconHouse,
		IconCoins, IconWallet, IconGem, IconChip, IconDisk, IconBolt,
		IconBox, IconSparkles, IconTruck:
		return t, nil
	default:
		return "", fmt.Errorf("unknown icon tag %q", s)
	}
}

// WeightVector is the sparse set of catalog attributes a quiz option
// contributes toward. Zero values mean "not present".
type WeightVector struct {
	Usage        Usage
	Budget       BudgetBucket
	Brand        string // BrandAny matches everything
	Condition    Condition
	GPU          GPUClass
	MinRAMGB     int
	MinStorageGB int
	RequireStock bool
}

// Merge copies the attributes present in other over v, key by key.
// Attributes absent from other are left untouched.
func (v WeightVector) Merge(other WeightVector) WeightVector {
	if other.Usage != "" {
		v.Usage = other.Usage
	}
	if other.Budget != "" {
		v.Budget = other.Budget
	}
	if other.Brand != "" {
		v.Brand = other.Brand
	}
	if other.Condition != "" {
		v.Condition = other.Condition
	}
	if other.GPU != "" {
		v.GPU = other.GPU
	}
	if other.MinRAMGB > 0 {
		v.MinRAMGB = other.MinRAMGB
	}
	if other.MinStorageGB > 0 {
		v.MinStorageGB = other.MinStorageGB
	}
	if other.RequireStock {
		v.RequireStock = true
	}
	return v
}

// IsZero reports whether no attribute is present.
func (v WeightVector) IsZero() bool {
	return v == WeightVector{}
}
