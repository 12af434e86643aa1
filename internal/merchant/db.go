// Package merchant holds the static merchant database: groups of known
// merchant names mapped to (category, subcategory), checked in a fixed
// priority order so that the most specific grouping wins (a grocery chain
// classifies as grocery even when the text also smells like generic
// shopping). Name patterns are compiled once at package load into whole-word
// matchers; nothing here is mutated after init.
package merchant

import (
	"regexp"
	"strings"

	"github.com/greenkhata/greenkhata/internal/model"
)

// MatchConfidence is the base confidence of a direct merchant-name hit.
const MatchConfidence = 0.9

// group is one merchant grouping with its taxonomy assignment.
type group struct {
	category    model.Category
	subcategory model.Subcategory
	names       []string
	patterns    []*regexp.Regexp
}

// Result is a successful merchant lookup.
type Result struct {
	Merchant    string
	Category    model.Category
	Subcategory model.Subcategory
	Confidence  float64
}

// groups are evaluated top to bottom: specific food groupings before
// transport, entertainment before finance (so "premium" streaming does not
// trigger insurance), DTH before mobile (so "tata sky recharge" lands on
// DTH), shopping last because it is the most generic.
var groups = []*group{
	{category: model.CategoryFood, subcategory: model.SubGrocery, names: []string{
		"bigbasket", "blinkit", "zepto", "instamart", "grofers", "dunzo",
		"jiomart", "amazon fresh", "flipkart grocery", "dmart", "reliance fresh",
		"more", "spencers", "nature basket", "godrej nature", "milkbasket",
		"country delight", "supr daily", "bb daily", "bbdaily",
	}},
	{category: model.CategoryFood, subcategory: model.SubDelivery, names: []string{
		"swiggy", "zomato", "dominos", "domino", "mcdonalds", "mcd", "kfc",
		"subway", "burger king", "wendys", "pizza hut", "papa johns",
		"box8", "faasos", "behrouz", "oven story", "licious", "freshmenu",
		"rebel foods", "eatsure", "dunzo food",
	}},
	{category: model.CategoryFood, subcategory: model.SubRestaurant, names: []string{
		"starbucks", "ccd", "cafe coffee day", "barista", "costa coffee",
		"chaayos", "chai point", "haldirams", "bikanervala", "sagar ratna",
		"mainland china", "barbeque nation", "bbq", "punjabi", "dhaba",
	}},
	{category: model.CategoryEnergy, subcategory: model.SubElectricity, names: []string{
		"bescom", "tpddl", "bses", "adani electricity", "aeml", "tata power",
		"reliance energy", "msedcl", "mgvcl", "ugvcl", "dgvcl", "pgvcl",
		"tneb", "tangedco", "apspdcl", "tsspdcl", "wbsedcl", "cesc",
		"torrent power", "electricity bill", "power bill", "eb bill",
	}},
	{category: model.CategoryEnergy, subcategory: model.SubGas, names: []string{
		"mahanagar gas", "mgl", "indraprastha gas", "igl", "gail gas",
		"adani gas", "gujarat gas", "sabarmati gas", "torrent gas",
		"hp gas", "indane", "bharat gas", "lpg", "piped gas", "png",
	}},
	{category: model.CategoryEnergy, subcategory: model.SubWater, names: []string{
		"jal board", "water board", "bwssb", "mcgm water", "dda water",
		"water bill", "water supply", "jalkal",
	}},
	{category: model.CategoryTransport, subcategory: model.SubCab, names: []string{
		"uber", "ola", "rapido", "meru", "mega cabs", "blu smart", "blusmart",
		"namma yatri", "auto ride", "auto rickshaw", "rickshaw", "indriver", "jugnoo",
	}},
	{category: model.CategoryTransport, subcategory: model.SubFuel, names: []string{
		"iocl", "indian oil", "hpcl", "hindustan petroleum", "bpcl",
		"bharat petroleum", "shell", "reliance petroleum", "nayara",
		"essar", "petrol pump", "fuel station", "cng station",
	}},
	{category: model.CategoryTransport, subcategory: model.SubFlight, names: []string{
		"indigo", "6e", "spicejet", "air india", "vistara", "akasa",
		"goair", "go first", "airasia", "emirates", "etihad", "qatar",
		"lufthansa", "singapore airlines", "thai airways",
	}},
	{category: model.CategoryTransport, subcategory: model.SubToll, names: []string{
		"fastag", "paytm fastag", "netc", "toll", "parking", "park+",
		"parkwhiz", "get my parking",
	}},
	{category: model.CategoryTransport, subcategory: model.SubPublic, names: []string{
		"metro", "dmrc", "bmrc", "cmrl", "nmmc", "mmrda", "best bus",
		"dtc", "ksrtc", "apsrtc", "tsrtc", "msrtc", "gsrtc", "upsrtc",
		"irctc", "indian railways", "redbus", "abhibus", "goibibo",
		"makemytrip", "mmt", "cleartrip", "ixigo", "trainman",
	}},
	{category: model.CategoryHealthcare, subcategory: model.SubPharmacy, names: []string{
		"apollo pharmacy", "1mg", "pharmeasy", "netmeds", "medplus",
		"medlife", "wellness forever", "frank ross", "guardian pharmacy",
		"medicine", "pharmacy", "chemist", "drugstore",
	}},
	{category: model.CategoryHealthcare, subcategory: model.SubHospital, names: []string{
		"apollo hospital", "fortis", "max healthcare", "medanta",
		"manipal hospital", "narayana health", "aster", "columbia asia",
		"sahyadri", "ruby hall", "kokilaben", "lilavati", "breach candy",
		"hospital", "clinic", "nursing home", "medical center",
	}},
	{category: model.CategoryHealthcare, subcategory: model.SubDiagnostic, names: []string{
		"dr lal", "lal path", "thyrocare", "metropolis", "srl diagnostics",
		"healthians", "redcliffe", "orange health", "diagnostic", "pathlab",
		"blood test", "lab test", "health checkup",
	}},
	{category: model.CategoryHealthcare, subcategory: model.SubConsultation, names: []string{
		"practo", "docprime", "lybrate", "mfine", "docsapp", "tata 1mg",
		"consultation", "doctor", "appointment",
	}},
	{category: model.CategoryEntertainment, subcategory: model.SubMovies, names: []string{
		"pvr", "inox", "cinepolis", "bookmyshow", "paytm movies",
		"carnival cinemas", "miraj cinemas", "movie ticket", "multiplex",
	}},
	{category: model.CategoryEntertainment, subcategory: model.SubOTT, names: []string{
		"netflix", "amazon prime", "prime video", "hotstar", "disney+",
		"disney plus", "zee5", "sonyliv", "voot", "jiocinema", "mxplayer",
		"aha", "hoichoi", "alt balaji", "eros now", "hungama",
		"spotify", "gaana", "jiosaavn", "wynk", "apple music", "youtube premium",
	}},
	{category: model.CategoryEntertainment, subcategory: model.SubEvents, names: []string{
		"paytm insider", "insider.in", "townscript", "explara", "eventbrite",
		"dream11", "mpl", "winzo", "gaming", "playstation", "xbox", "steam",
	}},
	{category: model.CategoryFinance, subcategory: model.SubEMI, names: []string{
		"emi", "loan emi", "home loan", "car loan", "personal loan",
		"education loan", "bajaj finserv", "hdfc ltd", "lichfl", "pnb housing",
		"iifl", "fullerton", "tata capital", "aditya birla finance",
	}},
	{category: model.CategoryFinance, subcategory: model.SubInsurance, names: []string{
		"lic", "life insurance", "hdfc life", "icici prudential", "icici pru",
		"sbi life", "max life", "bajaj allianz", "tata aia", "kotak life",
		"birla sun life", "health insurance", "car insurance", "motor insurance",
		"term insurance", "premium", "policy premium",
	}},
	{category: model.CategoryFinance, subcategory: model.SubInvestment, names: []string{
		"zerodha", "groww", "upstox", "angel one", "angel broking", "5paisa",
		"paytm money", "kuvera", "coin", "smallcase", "et money", "scripbox",
		"mutual fund", "mf", "sip", "equity", "shares", "stocks", "nps",
		"ppf", "epf", "investment",
	}},
	{category: model.CategoryFinance, subcategory: model.SubCreditCard, names: []string{
		"credit card", "cc bill", "card payment", "card outstanding",
		"minimum due", "total due", "statement", "card bill",
	}},
	{category: model.CategoryBills, subcategory: model.SubDTH, names: []string{
		"tata sky", "tatasky", "tata sky recharge", "dish tv", "dishtv", "d2h", "videocon d2h",
		"airtel digital tv", "airtel dth", "sun direct", "dth recharge", "dth",
	}},
	{category: model.CategoryBills, subcategory: model.SubBroadband, names: []string{
		"act fibernet", "actcorp", "hathway", "tikona", "you broadband",
		"spectra", "excitel", "airtel xstream", "jio fiber", "jiofiber",
		"tata sky broadband", "wifi", "broadband", "internet bill",
	}},
	{category: model.CategoryBills, subcategory: model.SubMobile, names: []string{
		"jio", "airtel", "vi", "vodafone", "idea", "bsnl", "mtnl",
		"recharge", "prepaid", "postpaid", "mobile bill",
	}},
	{category: model.CategoryEducation, subcategory: model.SubCourses, names: []string{
		"udemy", "coursera", "edx", "skillshare", "linkedin learning",
		"unacademy", "byjus", "vedantu", "toppr", "physicswallah",
		"upgrad", "simplilearn", "great learning", "scaler", "coding ninjas",
	}},
	{category: model.CategoryEducation, subcategory: model.SubFees, names: []string{
		"school fee", "college fee", "university fee", "tuition fee",
		"admission fee", "exam fee", "registration fee", "semester fee",
	}},
	{category: model.CategoryEducation, subcategory: model.SubBooks, names: []string{
		"amazon books", "flipkart books", "kindle", "audible", "scribd",
		"crossword", "om book shop", "sapna book", "pustakwala",
	}},
	{category: model.CategoryShopping, subcategory: model.SubElectronics, names: []string{
		"reliance digital", "croma", "vijay sales", "poorvika",
		"sangeetha", "big c", "lot mobiles", "apple store", "samsung",
		"mi store", "oneplus", "realme",
	}},
	{category: model.CategoryShopping, subcategory: model.SubClothing, names: []string{
		"myntra", "ajio", "meesho", "nykaa", "nykaa fashion", "bewakoof",
		"limeroad", "koovs", "jabong", "zara", "h&m", "uniqlo",
		"westside", "pantaloons", "lifestyle", "shoppers stop",
		"central", "max fashion", "fbb", "reliance trends",
	}},
	{category: model.CategoryShopping, subcategory: model.SubOnline, names: []string{
		"amazon", "flipkart", "snapdeal", "paytm mall", "tatacliq",
		"tata cliq", "jiomart", "shopclues", "firstcry", "purplle",
	}},
}

func init() {
	for _, g := range groups {
		g.patterns = make([]*regexp.Regexp, len(g.names))
		for i, name := range g.names {
			g.patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
		}
	}
}

// Match scans text against the merchant database in priority order and
// returns the first hit, or nil when no known merchant appears.
func Match(text string) *Result {
	t := strings.ToLower(text)
	if strings.TrimSpace(t) == "" {
		return nil
	}

	for _, g := range groups {
		for i, re := range g.patterns {
			if re.MatchString(t) {
				return &Result{
					Merchant:    g.names[i],
					Category:    g.category,
					Subcategory: g.subcategory,
					Confidence:  MatchConfidence,
				}
			}
		}
	}
	return nil
}
