package quiz

// FallbackCatalog returns the built-in product list the local generator
// scores when the remote service is unavailable or returns nothing. It spans
// every usage and budget bucket the shipped question set can produce, so any
// answer combination yields a sensible ranking. The list is fixed: the
// fallback must produce identical results for identical answers.
func FallbackCatalog() []Product {
	return []Product{
		{
			ID: "fb-lenovo-v15", Brand: "Lenovo", Name: "Lenovo V15 G4",
			Price: 1599, MonthlyQuota: 69,
			Processor: "Intel Core i3-1215U", RAMGB: 8, RAMType: "DDR4",
			StorageGB: 256, StorageType: "SSD", GPU: GPUIntegrated, DisplayInches: 15.6,
			UsageTags: []Usage{UsageStudent, UsageHome}, Condition: ConditionNew, InStock: true,
		},
		{
			ID: "fb-hp-250", Brand: "HP", Name: "HP 250 G9",
			Price: 1799, MonthlyQuota: 75,
			Processor: "Intel Core i3-1215U", RAMGB: 8, RAMType: "DDR4",
			StorageGB: 512, StorageType: "SSD", GPU: GPUIntegrated, DisplayInches: 15.6,
			UsageTags: []Usage{UsageStudent, UsageWork, UsageHome}, Condition: ConditionNew, InStock: true,
		},
		{
			ID: "fb-acer-a315-ref", Brand: "Acer", Name: "Acer Aspire 3 (reacondicionada)",
			Price: 1199, MonthlyQuota: 52,
			Processor: "AMD Ryzen 3 7320U", RAMGB: 8, RAMType: "LPDDR5",
			StorageGB: 256, StorageType: "SSD", GPU: GPUIntegrated, DisplayInches: 15.6,
			UsageTags: []Usage{UsageStudent, UsageHome}, Condition: ConditionRefurbished, InStock: true,
		},
		{
			ID: "fb-lenovo-ideapad-slim5", Brand: "Lenovo", Name: "Lenovo IdeaPad Slim 5",
			Price: 2899, MonthlyQuota: 119,
			Processor: "AMD Ryzen 5 7530U", RAMGB: 16, RAMType: "DDR4",
			StorageGB: 512, StorageType: "SSD", GPU: GPUIntegrated, DisplayInches: 14,
			UsageTags: []Usage{UsageWork, UsageStudent}, Condition: ConditionNew, InStock: true,
		},
		{
			ID: "fb-asus-vivobook16", Brand: "Asus", Name: "Asus Vivobook 16",
			Price: 3099, MonthlyQuota: 129,
			Processor: "Intel Core i5-1335U", RAMGB: 16, RAMType: "DDR4",
			StorageGB: 512, StorageType: "SSD", GPU: GPUIntegrated, DisplayInches: 16,
			UsageTags: []Usage{UsageWork, UsageHome}, Condition: ConditionNew, InStock: false,
		},
		{
			ID: "fb-hp-victus15", Brand: "HP", Name: "HP Victus 15",
			Price: 3999, MonthlyQuota: 165,
			Processor: "Intel Core i5-12450H", RAMGB: 16, RAMType: "DDR4",
			StorageGB: 512, StorageType: "SSD", GPU: GPUEntry, DisplayInches: 15.6,
			UsageTags: []Usage{UsageGaming, UsageStudent}, Condition: ConditionNew, InStock: true,
		},
		{
			ID: "fb-acer-nitro-v", Brand: "Acer", Name: "Acer Nitro V 15",
			Price: 4599, MonthlyQuota: 189,
			Processor: "AMD Ryzen 5 7535HS", RAMGB: 16, RAMType: "DDR5",
			StorageGB: 1024, StorageType: "SSD", GPU: GPUDedicated, DisplayInches: 15.6,
			UsageTags: []Usage{UsageGaming}, Condition: ConditionNew, InStock: true,
		},
		{
			ID: "fb-lenovo-loq", Brand: "Lenovo", Name: "Lenovo LOQ 15",
			Price: 5299, MonthlyQuota: 219,
			Processor: "Intel Core i7-13650HX", RAMGB: 16, RAMType: "DDR5",
			StorageGB: 1024, StorageType: "SSD", GPU: GPUDedicated, DisplayInches: 15.6,
			UsageTags: []Usage{UsageGaming, UsageDesign}, Condition: ConditionNew, InStock: true,
		},
		{
			ID: "fb-asus-tuf-a16", Brand: "Asus", Name: "Asus TUF Gaming A16",
			Price: 6499, MonthlyQuota: 269,
			Processor: "AMD Ryzen 7 7735HS", RAMGB: 32, RAMType: "DDR5",
			StorageGB: 1024, StorageType: "SSD", GPU: GPUDedicated, DisplayInches: 16,
			UsageTags: []Usage{UsageGaming, UsageDesign}, Condition: ConditionNew, InStock: true,
		},
		{
			ID: "fb-apple-mba-m2", Brand: "Apple", Name: "MacBook Air M2",
			Price: 7299, MonthlyQuota: 299,
			Processor: "Apple M2", RAMGB: 16, RAMType: "unificada",
			StorageGB: 512, StorageType: "SSD", GPU: GPUIntegrated, DisplayInches: 13.6,
			UsageTags: []Usage{UsageDesign, UsageWork}, Condition: ConditionNew, InStock: true,
		},
		{
			ID: "fb-apple-mbp-m3", Brand: "Apple", Name: "MacBook Pro 14 M3",
			Price: 10499, MonthlyQuota: 429,
			Processor: "Apple M3 Pro", RAMGB: 18, RAMType: "unificada",
			StorageGB: 1024, StorageType: "SSD", GPU: GPUDedicated, DisplayInches: 14.2,
			UsageTags: []Usage{UsageDesign}, Condition: ConditionNew, InStock: true,
		},
		{
			ID: "fb-dell-inspiron-ref", Brand: "Dell", Name: "Dell Inspiron 15 (reacondicionada)",
			Price: 2199, MonthlyQuota: 95,
			Processor: "Intel Core i5-1135G7", RAMGB: 16, RAMType: "DDR4",
			StorageGB: 512, StorageType: "SSD", GPU: GPUIntegrated, DisplayInches: 15.6,
			UsageTags: []Usage{UsageWork, UsageHome}, Condition: ConditionRefurbished, InStock: true,
		},
	}
}
