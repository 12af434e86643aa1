// Package display maps taxonomy keys to presentation metadata: human
// labels, icons, and hex colors. Everything here is static lookup data for
// renderers; classification logic never depends on it.
package display

import "github.com/greenkhata/greenkhata/internal/model"

// Info is the presentation record for a category or sector.
type Info struct {
	Label string
	Icon  string
	Color string
}

// ScopeInfo is the presentation record for a GHG scope.
type ScopeInfo struct {
	Label       string
	Description string
	Color       string
}

var categoryInfo = map[model.Category]Info{
	model.CategoryFuel:          {Label: "Fuel", Icon: "⛽", Color: "#FF6B6B"},
	model.CategoryEnergy:        {Label: "Energy", Icon: "⚡", Color: "#4ECDC4"},
	model.CategoryTransport:     {Label: "Transport", Icon: "🚗", Color: "#45B7D1"},
	model.CategoryWaste:         {Label: "Waste", Icon: "♻️", Color: "#96CEB4"},
	model.CategoryProcurement:   {Label: "Procurement", Icon: "📦", Color: "#FFEAA7"},
	model.CategoryFood:          {Label: "Food", Icon: "🍽️", Color: "#FF6B6B"},
	model.CategoryShopping:      {Label: "Shopping", Icon: "🛍️", Color: "#9B59B6"},
	model.CategoryBills:         {Label: "Bills", Icon: "📱", Color: "#3498DB"},
	model.CategoryFinance:       {Label: "Finance", Icon: "💰", Color: "#27AE60"},
	model.CategoryHealthcare:    {Label: "Healthcare", Icon: "🏥", Color: "#E74C3C"},
	model.CategoryEntertainment: {Label: "Entertainment", Icon: "🎭", Color: "#8E44AD"},
	model.CategoryEducation:     {Label: "Education", Icon: "📚", Color: "#1976D2"},
	model.CategoryTransfer:      {Label: "Transfer", Icon: "💸", Color: "#16A085"},
	model.CategoryOther:         {Label: "Other", Icon: "📄", Color: "#95A5A6"},
}

var subcategoryInfo = map[model.Subcategory]Info{
	model.SubElectricity:  {Label: "Electricity", Icon: "💡"},
	model.SubGas:          {Label: "Gas", Icon: "🔥"},
	model.SubWater:        {Label: "Water", Icon: "💧"},
	model.SubDelivery:     {Label: "Delivery", Icon: "🛵"},
	model.SubGrocery:      {Label: "Grocery", Icon: "🛒"},
	model.SubRestaurant:   {Label: "Restaurant", Icon: "🍴"},
	model.SubCab:          {Label: "Cab", Icon: "🚕"},
	model.SubFuel:         {Label: "Fuel", Icon: "⛽"},
	model.SubPublic:       {Label: "Public", Icon: "🚌"},
	model.SubToll:         {Label: "Toll", Icon: "🛣️"},
	model.SubFlight:       {Label: "Flight", Icon: "✈️"},
	model.SubOnline:       {Label: "Online", Icon: "🌐"},
	model.SubClothing:     {Label: "Clothing", Icon: "👕"},
	model.SubElectronics:  {Label: "Electronics", Icon: "📱"},
	model.SubMobile:       {Label: "Mobile", Icon: "📞"},
	model.SubDTH:          {Label: "DTH", Icon: "📺"},
	model.SubBroadband:    {Label: "Internet", Icon: "📶"},
	model.SubEMI:          {Label: "EMI", Icon: "📅"},
	model.SubInsurance:    {Label: "Insurance", Icon: "🛡️"},
	model.SubInvestment:   {Label: "Investment", Icon: "📈"},
	model.SubCreditCard:   {Label: "Credit Card", Icon: "💳"},
	model.SubPharmacy:     {Label: "Pharmacy", Icon: "💊"},
	model.SubHospital:     {Label: "Hospital", Icon: "🏥"},
	model.SubDiagnostic:   {Label: "Diagnostic", Icon: "🔬"},
	model.SubConsultation: {Label: "Consultation", Icon: "🩺"},
	model.SubOTT:          {Label: "OTT", Icon: "📺"},
	model.SubMovies:       {Label: "Movies", Icon: "🎬"},
	model.SubEvents:       {Label: "Events", Icon: "🎟️"},
	model.SubFees:         {Label: "Fees", Icon: "🏫"},
	model.SubCourses:      {Label: "Courses", Icon: "🎓"},
	model.SubBooks:        {Label: "Books", Icon: "📖"},
	model.SubP2P:          {Label: "P2P", Icon: "🤝"},
	model.SubSelf:         {Label: "Self", Icon: "🔁"},
	model.SubSalary:       {Label: "Salary", Icon: "🪙"},
	model.SubGeneral:      {Label: "General", Icon: "📄"},
}

var scopeInfo = map[model.Scope]ScopeInfo{
	model.Scope1:       {Label: "Scope 1", Description: "Direct emissions", Color: "#E74C3C"},
	model.Scope2:       {Label: "Scope 2", Description: "Purchased energy", Color: "#3498DB"},
	model.Scope3:       {Label: "Scope 3", Description: "Indirect emissions", Color: "#2ECC71"},
	model.Scope4:       {Label: "Avoided", Description: "Reductions", Color: "#9B59B6"},
	model.Scope5:       {Label: "Offsets", Description: "Credits/removals", Color: "#1ABC9C"},
	model.Scope6:       {Label: "Reporting", Description: "Governance", Color: "#F39C12"},
	model.Scope7:       {Label: "Policy", Description: "Compliance", Color: "#7F8C8D"},
	model.ScopeUnknown: {Label: "Unknown", Description: "Unclassified", Color: "#BDC3C7"},
}

var sectorInfo = map[model.Sector]Info{
	model.SectorManufacturing:  {Label: "Manufacturing", Icon: "🏭", Color: "#607D8B"},
	model.SectorTrading:        {Label: "Trading", Icon: "🏪", Color: "#795548"},
	model.SectorServices:       {Label: "Services", Icon: "💼", Color: "#9C27B0"},
	model.SectorExportImport:   {Label: "Export/Import", Icon: "🚢", Color: "#00BCD4"},
	model.SectorRetail:         {Label: "Retail", Icon: "🛒", Color: "#E91E63"},
	model.SectorWholesale:      {Label: "Wholesale", Icon: "📦", Color: "#FF5722"},
	model.SectorECommerce:      {Label: "E-Commerce", Icon: "🛍️", Color: "#FF9800"},
	model.SectorConsulting:     {Label: "Consulting", Icon: "📊", Color: "#3F51B5"},
	model.SectorLogistics:      {Label: "Logistics", Icon: "🚚", Color: "#4CAF50"},
	model.SectorAgriculture:    {Label: "Agriculture", Icon: "🌾", Color: "#8BC34A"},
	model.SectorHandicrafts:    {Label: "Handicrafts", Icon: "🧶", Color: "#F44336"},
	model.SectorFoodProcessing: {Label: "Food Processing", Icon: "🍽️", Color: "#FFC107"},
	model.SectorTextiles:       {Label: "Textiles", Icon: "🧵", Color: "#673AB7"},
	model.SectorElectronics:    {Label: "Electronics", Icon: "📱", Color: "#2196F3"},
	model.SectorAutomotive:     {Label: "Automotive", Icon: "🚗", Color: "#455A64"},
	model.SectorConstruction:   {Label: "Construction", Icon: "🏗️", Color: "#FF7043"},
	model.SectorHealthcare:     {Label: "Healthcare", Icon: "🏥", Color: "#E53935"},
	model.SectorEducation:      {Label: "Education", Icon: "📚", Color: "#1976D2"},
	model.SectorTourism:        {Label: "Tourism", Icon: "✈️", Color: "#00ACC1"},
	model.SectorOther:          {Label: "Other", Icon: "📄", Color: "#9E9E9E"},
}

// sectorOrder fixes the iteration order of AllSectors.
var sectorOrder = []model.Sector{
	model.SectorManufacturing, model.SectorTrading, model.SectorServices,
	model.SectorExportImport, model.SectorRetail, model.SectorWholesale,
	model.SectorECommerce, model.SectorConsulting, model.SectorLogistics,
	model.SectorAgriculture, model.SectorHandicrafts, model.SectorFoodProcessing,
	model.SectorTextiles, model.SectorElectronics, model.SectorAutomotive,
	model.SectorConstruction, model.SectorHealthcare, model.SectorEducation,
	model.SectorTourism, model.SectorOther,
}

// categoryOrder fixes the iteration order of AllCategories.
var categoryOrder = []model.Category{
	model.CategoryEnergy, model.CategoryFuel, model.CategoryTransport,
	model.CategoryWaste, model.CategoryProcurement, model.CategoryFood,
	model.CategoryShopping, model.CategoryBills, model.CategoryFinance,
	model.CategoryHealthcare, model.CategoryEntertainment, model.CategoryEducation,
	model.CategoryTransfer, model.CategoryOther,
}

// Category returns presentation info for a category, falling back to the
// generic "other" entry for unknown keys.
func Category(c model.Category) Info {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	return categoryInfo[model.CategoryOther]
}

// Subcategory returns presentation info for a subcategory. Compound carbon
// subcategories ("diesel.stationary") have no static entry and fall back to
// the general record.
func Subcategory(s model.Subcategory) Info {
	if info, ok := subcategoryInfo[s]; ok {
		return info
	}
	return subcategoryInfo[model.SubGeneral]
}

// ForScope returns presentation info for a GHG scope.
func ForScope(s model.Scope) ScopeInfo {
	if info, ok := scopeInfo[s]; ok {
		return info
	}
	return scopeInfo[model.ScopeUnknown]
}

// Sector returns presentation info for an industry sector.
func Sector(s model.Sector) Info {
	if info, ok := sectorInfo[s]; ok {
		return info
	}
	return sectorInfo[model.SectorOther]
}

// SectorEntry pairs a sector key with its presentation info.
type SectorEntry struct {
	Key  model.Sector
	Info Info
}

// AllSectors lists every sector with its display info, in a stable order.
func AllSectors() []SectorEntry {
	out := make([]SectorEntry, 0, len(sectorOrder))
	for _, s := range sectorOrder {
		out = append(out, SectorEntry{Key: s, Info: sectorInfo[s]})
	}
	return out
}

// CategoryEntry pairs a category key with its presentation info.
type CategoryEntry struct {
	Key  model.Category
	Info Info
}

// AllCategories lists every category with its display info, in a stable order.
func AllCategories() []CategoryEntry {
	out := make([]CategoryEntry, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		out = append(out, CategoryEntry{Key: c, Info: categoryInfo[c]})
	}
	return out
}
