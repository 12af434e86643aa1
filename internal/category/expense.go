package category

import (
	"regexp"
	"strings"

	"github.com/greenkhata/greenkhata/internal/extract"
	"github.com/greenkhata/greenkhata/internal/merchant"
	"github.com/greenkhata/greenkhata/internal/model"
	"github.com/greenkhata/greenkhata/internal/upi"
)

// keywordRule maps a compiled pattern to a taxonomy assignment. Rules are
// evaluated in slice order; earlier rules shadow later ones when several
// would match.
type keywordRule struct {
	category    model.Category
	subcategory model.Subcategory
	re          *regexp.Regexp
}

const (
	keywordConfidence     = 0.7
	upiMerchantDiscount   = 0.95
	fallbackConfidence    = 0.3
	p2pConfidence         = 0.6
	creditConfidence      = 0.5
	salaryConfidence      = 0.8
	maxKeywordReasonCodes = 3
)

// keywordRules back up the merchant database: when no known merchant name
// appears, generic wording still carries a category signal. Energy is first
// so that "electricity bill" never lands on the generic bills bucket.
var keywordRules = []keywordRule{
	{model.CategoryEnergy, model.SubElectricity, regexp.MustCompile(`(?i)\b(electricity|electric|power|eb\s*bill|unit|kwh|meter\s*reading)\b`)},
	{model.CategoryEnergy, model.SubGas, regexp.MustCompile(`(?i)\b(gas\s*bill|lpg|png|piped\s*gas|cylinder|cooking\s*gas)\b`)},
	{model.CategoryEnergy, model.SubWater, regexp.MustCompile(`(?i)\b(water\s*bill|water\s*supply|water\s*charge)\b`)},
	{model.CategoryFood, model.SubDelivery, regexp.MustCompile(`(?i)\b(food\s*order|meal|delivery|delivered|restaurant\s*order)\b`)},
	{model.CategoryFood, model.SubGrocery, regexp.MustCompile(`(?i)\b(grocery|groceries|vegetables|fruits|daily\s*needs|milk|eggs)\b`)},
	{model.CategoryFood, model.SubRestaurant, regexp.MustCompile(`(?i)\b(dine|dining|restaurant|cafe|coffee|tea|snacks)\b`)},
	{model.CategoryTransport, model.SubCab, regexp.MustCompile(`(?i)\b(ride|trip|cab|taxi|auto|booking|pick\s*up|drop)\b`)},
	{model.CategoryTransport, model.SubFuel, regexp.MustCompile(`(?i)\b(petrol|diesel|fuel|cng|filled|refuel|liters?|litres?)\b`)},
	{model.CategoryTransport, model.SubPublic, regexp.MustCompile(`(?i)\b(metro|train|bus|ticket|travel|journey|railway)\b`)},
	{model.CategoryTransport, model.SubToll, regexp.MustCompile(`(?i)\b(toll|fastag|parking|park)\b`)},
	{model.CategoryTransport, model.SubFlight, regexp.MustCompile(`(?i)\b(flight|airline|boarding|airport|departure|arrival)\b`)},
	{model.CategoryShopping, model.SubOnline, regexp.MustCompile(`(?i)\b(order|ordered|purchase|bought|shopping|cart|checkout)\b`)},
	{model.CategoryShopping, model.SubClothing, regexp.MustCompile(`(?i)\b(clothing|clothes|fashion|apparel|footwear|shoes|accessories)\b`)},
	{model.CategoryShopping, model.SubElectronics, regexp.MustCompile(`(?i)\b(mobile|phone|laptop|tv|television|appliance|gadget)\b`)},
	{model.CategoryBills, model.SubMobile, regexp.MustCompile(`(?i)\b(recharge|prepaid|postpaid|mobile\s*bill|talk\s*time|data\s*pack)\b`)},
	{model.CategoryBills, model.SubDTH, regexp.MustCompile(`(?i)\b(dth|dish|set\s*top\s*box|tv\s*recharge)\b`)},
	{model.CategoryBills, model.SubBroadband, regexp.MustCompile(`(?i)\b(broadband|internet|wifi|fiber|fibernet)\b`)},
	{model.CategoryFinance, model.SubEMI, regexp.MustCompile(`(?i)\b(emi|equated\s*monthly|installment|loan\s*payment|auto\s*debit)\b`)},
	{model.CategoryFinance, model.SubInsurance, regexp.MustCompile(`(?i)\b(insurance|premium|policy|cover|claim)\b`)},
	{model.CategoryFinance, model.SubInvestment, regexp.MustCompile(`(?i)\b(investment|sip|mutual\s*fund|mf|dividend|nav|units?\s*allot)\b`)},
	{model.CategoryFinance, model.SubCreditCard, regexp.MustCompile(`(?i)\b(credit\s*card|cc\s*bill|card\s*payment|outstanding|minimum\s*due)\b`)},
	{model.CategoryHealthcare, model.SubPharmacy, regexp.MustCompile(`(?i)\b(medicine|medication|pharmacy|prescription|tablet|capsule)\b`)},
	{model.CategoryHealthcare, model.SubHospital, regexp.MustCompile(`(?i)\b(hospital|clinic|admission|discharge|treatment|surgery|opd|ipd)\b`)},
	{model.CategoryHealthcare, model.SubDiagnostic, regexp.MustCompile(`(?i)\b(test|diagnostic|pathology|lab|blood|report|checkup)\b`)},
	{model.CategoryHealthcare, model.SubConsultation, regexp.MustCompile(`(?i)\b(doctor|consultation|appointment|specialist|physician)\b`)},
	{model.CategoryEntertainment, model.SubOTT, regexp.MustCompile(`(?i)\b(subscription|streaming|watch|series|movie|music|premium)\b`)},
	{model.CategoryEntertainment, model.SubMovies, regexp.MustCompile(`(?i)\b(movie|cinema|film|theatre|theater|ticket|show|seat)\b`)},
	{model.CategoryEntertainment, model.SubEvents, regexp.MustCompile(`(?i)\b(event|concert|show|match|game|gaming|play)\b`)},
	{model.CategoryEducation, model.SubFees, regexp.MustCompile(`(?i)\b(fee|fees|tuition|admission|semester|exam)\b`)},
	{model.CategoryEducation, model.SubCourses, regexp.MustCompile(`(?i)\b(course|class|learning|certification|training|workshop)\b`)},
	{model.CategoryEducation, model.SubBooks, regexp.MustCompile(`(?i)\b(book|books|ebook|kindle|reading|textbook)\b`)},
	{model.CategoryTransfer, model.SubP2P, regexp.MustCompile(`(?i)\b(sent\s*to|received\s*from|transfer|transferred|from\s*[a-z]+@|to\s*[a-z]+@)\b`)},
	{model.CategoryTransfer, model.SubSelf, regexp.MustCompile(`(?i)\b(self\s*transfer|own\s*account|savings|fd|fixed\s*deposit)\b`)},
	{model.CategoryTransfer, model.SubSalary, regexp.MustCompile(`(?i)\b(salary|wages|pay|payroll|credited.*salary)\b`)},
}

var reSalaryCredit = regexp.MustCompile(`(?i)\b(salary|wages|pay|payroll)\b`)

// keywordMatch is a single keyword table hit.
type keywordMatch struct {
	rule    *keywordRule
	keyword string
}

func matchKeywords(t string) []keywordMatch {
	var matches []keywordMatch
	for i := range keywordRules {
		if kw := keywordRules[i].re.FindString(t); kw != "" {
			matches = append(matches, keywordMatch{rule: &keywordRules[i], keyword: kw})
		}
	}
	return matches
}

// Expense classifies a payment message into the personal-expense taxonomy.
// The cascade runs merchant lookup, then merchant lookup over the UPI handle,
// then the keyword table, then transfer heuristics; whichever step fires
// first decides the category. Amount and UPI metadata are always extracted,
// whatever the category outcome.
func Expense(text string) model.ExpenseResult {
	t := strings.TrimSpace(text)

	result := model.ExpenseResult{
		Category:    model.CategoryOther,
		Subcategory: model.SubGeneral,
		Confidence:  fallbackConfidence,
	}

	if t == "" {
		result.ReasonCodes = []string{"empty_message"}
		return result
	}

	if amt := extract.Amount(t); amt != nil {
		result.Amount = amt
		result.ReasonCodes = append(result.ReasonCodes, "amount_extracted")
	}

	result.UPI = upi.Parse(t)
	if result.UPI.IsUPI {
		result.ReasonCodes = append(result.ReasonCodes, "upi_transaction")
		result.TransactionType = result.UPI.TransactionType
	}

	// Step 1: merchant database over the raw text.
	if m := merchant.Match(t); m != nil {
		result.Category = m.Category
		result.Subcategory = m.Subcategory
		result.Merchant = m.Merchant
		result.Confidence = m.Confidence
		result.ReasonCodes = append(result.ReasonCodes, "merchant_detected")
		return result
	}

	// Step 2: merchant database over the VPA local part ("swiggy@ybl").
	if result.UPI.MerchantName != "" {
		if m := merchant.Match(result.UPI.MerchantName); m != nil {
			result.Category = m.Category
			result.Subcategory = m.Subcategory
			result.Merchant = m.Merchant
			result.Confidence = m.Confidence * upiMerchantDiscount
			result.ReasonCodes = append(result.ReasonCodes, "upi_merchant_detected")
			return result
		}
	}

	// Step 3: keyword table. The first rule decides; the matched words of
	// every firing rule become reason codes so the caller can see the
	// competing signals.
	if matches := matchKeywords(t); len(matches) > 0 {
		best := matches[0]
		result.Category = best.rule.category
		result.Subcategory = best.rule.subcategory
		result.Confidence = keywordConfidence
		result.ReasonCodes = append(result.ReasonCodes, "keyword_matched")
		for i, m := range matches {
			if i == maxKeywordReasonCodes {
				break
			}
			result.ReasonCodes = append(result.ReasonCodes, m.keyword)
		}
		return result
	}

	// Step 4: a UPI handle with no recognizable merchant is a person.
	if result.UPI.IsUPI && result.UPI.UPIID != "" {
		result.Category = model.CategoryTransfer
		result.Subcategory = model.SubP2P
		result.Confidence = p2pConfidence
		result.ReasonCodes = append(result.ReasonCodes, "upi_p2p_transfer")
		return result
	}

	// Step 5: inbound credits.
	if result.UPI.TransactionType == model.TransactionCredit {
		if reSalaryCredit.MatchString(t) {
			result.Category = model.CategoryTransfer
			result.Subcategory = model.SubSalary
			result.Confidence = salaryConfidence
			result.ReasonCodes = append(result.ReasonCodes, "salary_credit")
		} else {
			result.Category = model.CategoryTransfer
			result.Subcategory = model.SubP2P
			result.Confidence = creditConfidence
			result.ReasonCodes = append(result.ReasonCodes, "credit_received")
		}
		return result
	}

	result.ReasonCodes = append(result.ReasonCodes, "unclassified")
	return result
}
