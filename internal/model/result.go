package model

// SpamResult is the verdict of the spam/transaction rule engine.
// Signals lists the rule tags that fired, in evaluation order.
type SpamResult struct {
	Signals         []string
	Score           float64
	IsSpam          bool
	IsTransactional bool
}

// Sector is one of the fixed MSME industry sector keys.
type Sector string

// Industry sectors.
const (
	SectorManufacturing  Sector = "manufacturing"
	SectorTrading        Sector = "trading"
	SectorServices       Sector = "services"
	SectorExportImport   Sector = "export_import"
	SectorRetail         Sector = "retail"
	SectorWholesale      Sector = "wholesale"
	SectorECommerce      Sector = "e_commerce"
	SectorConsulting     Sector = "consulting"
	SectorLogistics      Sector = "logistics"
	SectorAgriculture    Sector = "agriculture"
	SectorHandicrafts    Sector = "handicrafts"
	SectorFoodProcessing Sector = "food_processing"
	SectorTextiles       Sector = "textiles"
	SectorElectronics    Sector = "electronics"
	SectorAutomotive     Sector = "automotive"
	SectorConstruction   Sector = "construction"
	SectorHealthcare     Sector = "healthcare"
	SectorEducation      Sector = "education"
	SectorTourism        Sector = "tourism"
	SectorOther          Sector = "other"
)

// MatchType records which industry detector produced a result.
type MatchType string

// Industry detector kinds, in priority order.
const (
	MatchMerchant MatchType = "merchant"
	MatchKeyword  MatchType = "keyword"
	MatchProcess  MatchType = "process"
	MatchNone     MatchType = ""
)

// IndustryResult is the output of the industry sector classifier.
type IndustryResult struct {
	Sector      Sector
	MatchType   MatchType
	Merchant    string
	Process     string
	Keywords    []string
	ReasonCodes []string
	Confidence  float64
}

// ExpenseResult is the combined record returned by the expense orchestrator.
type ExpenseResult struct {
	Category        Category
	Subcategory     Subcategory
	Merchant        string
	TransactionType TransactionType
	Amount          *MonetaryAmount
	UPI             UPIDetails
	Industry        *IndustryResult
	ReasonCodes     []string
	Confidence      float64
}

// ProcessResult is the combined record returned by the carbon orchestrator.
type ProcessResult struct {
	Classification CategoryResult
	Scope          ScopeResult
	Quantity       *Quantity
	Amount         *MonetaryAmount
	ReasonCodes    []string
	IsImportant    bool
	IsSpam         bool
}
