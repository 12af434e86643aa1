package model

// Category is a member of the closed expense/activity taxonomy.
type Category string

// Expense and carbon-activity categories. The personal-expense cascade emits
// the consumer set (food, shopping, bills, ...); the carbon cascade emits the
// activity set (energy, fuel, transport, waste, procurement). Both share
// CategoryOther as the fallback.
const (
	CategoryEnergy        Category = "energy"
	CategoryFuel          Category = "fuel"
	CategoryTransport     Category = "transport"
	CategoryWaste         Category = "waste"
	CategoryProcurement   Category = "procurement"
	CategoryFood          Category = "food"
	CategoryShopping      Category = "shopping"
	CategoryBills         Category = "bills"
	CategoryFinance       Category = "finance"
	CategoryHealthcare    Category = "healthcare"
	CategoryEntertainment Category = "entertainment"
	CategoryEducation     Category = "education"
	CategoryTransfer      Category = "transfer"
	CategoryOther         Category = "other"
)

// Subcategory refines a Category. Values are dot-joined for the carbon
// cascade's compound forms (e.g. "diesel.stationary", "car.logistics").
type Subcategory string

// Personal-expense subcategories.
const (
	SubElectricity  Subcategory = "electricity"
	SubGas          Subcategory = "gas"
	SubWater        Subcategory = "water"
	SubDelivery     Subcategory = "delivery"
	SubGrocery      Subcategory = "grocery"
	SubRestaurant   Subcategory = "restaurant"
	SubCab          Subcategory = "cab"
	SubFuel         Subcategory = "fuel"
	SubPublic       Subcategory = "public"
	SubToll         Subcategory = "toll"
	SubFlight       Subcategory = "flight"
	SubOnline       Subcategory = "online"
	SubClothing     Subcategory = "clothing"
	SubElectronics  Subcategory = "electronics"
	SubMobile       Subcategory = "mobile"
	SubDTH          Subcategory = "dth"
	SubBroadband    Subcategory = "broadband"
	SubEMI          Subcategory = "emi"
	SubInsurance    Subcategory = "insurance"
	SubInvestment   Subcategory = "investment"
	SubCreditCard   Subcategory = "credit_card"
	SubPharmacy     Subcategory = "pharmacy"
	SubHospital     Subcategory = "hospital"
	SubDiagnostic   Subcategory = "diagnostic"
	SubConsultation Subcategory = "consultation"
	SubOTT          Subcategory = "ott"
	SubMovies       Subcategory = "movies"
	SubEvents       Subcategory = "events"
	SubFees         Subcategory = "fees"
	SubCourses      Subcategory = "courses"
	SubBooks        Subcategory = "books"
	SubP2P          Subcategory = "p2p"
	SubSelf         Subcategory = "self"
	SubSalary       Subcategory = "salary"
	SubGeneral      Subcategory = "general"
)

// CategoryResult is the output of a category cascade.
type CategoryResult struct {
	Category    Category
	Subcategory Subcategory
	Activity    string
	ReasonCodes []string
	Confidence  float64
}

// Scope identifies a GHG reporting scope. Scopes 4-7 are extensions beyond
// the GHG Protocol's 1-3.
type Scope int

// Reporting scopes.
const (
	ScopeUnknown Scope = 0
	Scope1       Scope = 1 // direct combustion
	Scope2       Scope = 2 // purchased electricity
	Scope3       Scope = 3 // indirect
	Scope4       Scope = 4 // avoided emissions
	Scope5       Scope = 5 // offsets and removals
	Scope6       Scope = 6 // reporting and governance
	Scope7       Scope = 7 // government policy and compliance
)

// String returns the scope's reporting label.
func (s Scope) String() string {
	switch s {
	case Scope1:
		return "Scope 1"
	case Scope2:
		return "Scope 2"
	case Scope3:
		return "Scope 3"
	case Scope4:
		return "Avoided emissions / reductions"
	case Scope5:
		return "Offsets / removals"
	case Scope6:
		return "Reporting / targets / governance"
	case Scope7:
		return "Government policy / mandates / compliance"
	default:
		return "Unknown"
	}
}

// ScopeResult is the output of scope attribution. Reason is a one-line
// human-readable justification for the chosen branch.
type ScopeResult struct {
	CategoryLabel string
	Reason        string
	Scope         Scope
}
