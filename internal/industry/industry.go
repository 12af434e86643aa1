// Package industry classifies messages into MSME industry sectors. Three
// detectors run in priority order: known merchant names (strongest), sector
// keyword patterns scored by how many fire, and named business processes.
package industry

import (
	"regexp"
	"strings"

	"github.com/greenkhata/greenkhata/internal/model"
)

// Detector confidences.
const (
	merchantConfidence = 0.95
	processConfidence  = 0.7
	otherConfidence    = 0.3

	keywordBase    = 0.4
	keywordStep    = 0.15
	keywordCeiling = 0.85
)

// sectorProfile is the static fingerprint of one sector.
type sectorProfile struct {
	sector           model.Sector
	merchants        []string
	keywords         []*regexp.Regexp
	processes        []string
	merchantPatterns []*regexp.Regexp
	processPatterns  []*regexp.Regexp
}

// profiles are evaluated in declaration order. Keyword scoring compares all
// sectors, but merchant and process lookups stop at the first hit, so
// sectors with the most distinctive merchant lists come first.
var profiles = []*sectorProfile{
	{
		sector: model.SectorManufacturing,
		merchants: []string{
			"tata steel", "jsw", "jindal", "sail", "hindalco", "vedanta",
			"godrej", "mahindra", "larsen", "l&t", "bhel", "siemens",
			"abb", "schneider", "havells", "crompton", "finolex", "polycab",
		},
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(factory|plant|assembly|fabrication|machining|cnc|lathe|welding)\b`),
			regexp.MustCompile(`(?i)\b(raw\s*material|component|spare\s*part|machinery|boiler|compressor)\b`),
			regexp.MustCompile(`(?i)\b(production|manufacturing|industrial|workshop|tooling)\b`),
			regexp.MustCompile(`(?i)\b(steel|metal|plastic|chemical|polymer|alloy)\b`),
			regexp.MustCompile(`(?i)\b(batch|lot|inventory\s*stock|finished\s*goods|byproduct)\b`),
		},
		processes: []string{"assembly", "fabrication", "machining", "coating", "inspection"},
	},
	{
		sector: model.SectorTrading,
		merchants: []string{
			"dmart", "reliance", "future group", "metro cash", "walmart",
			"best price", "booker", "udaan", "indiamart", "tradeindia",
		},
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(wholesale|distributor|dealer|stockist|reseller|trader)\b`),
			regexp.MustCompile(`(?i)\b(bulk\s*order|inventory|stock|godown|warehouse)\b`),
			regexp.MustCompile(`(?i)\b(procurement|sourcing|supply\s*chain|distribution)\b`),
			regexp.MustCompile(`(?i)\b(margin|markup|trade\s*price|channel\s*partner)\b`),
		},
		processes: []string{"procurement", "inventory_management", "distribution"},
	},
	{
		sector: model.SectorServices,
		merchants: []string{
			"tcs", "infosys", "wipro", "hcl", "tech mahindra", "cognizant",
			"accenture", "capgemini", "ltimindtree", "mphasis", "persistent",
		},
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(software|it\s*services|consulting|advisory|professional\s*services)\b`),
			regexp.MustCompile(`(?i)\b(billing|invoice|retainer|project\s*fee|service\s*charge)\b`),
			regexp.MustCompile(`(?i)\b(client|customer|engagement|contract|sow|statement\s*of\s*work)\b`),
			regexp.MustCompile(`(?i)\b(support|maintenance|amc|annual\s*maintenance)\b`),
		},
		processes: []string{"service_delivery", "client_support", "billing"},
	},
	{
		sector: model.SectorExportImport,
		merchants: []string{
			"dhl", "fedex", "ups", "maersk", "msc", "hapag", "evergreen",
			"cma cgm", "cosco", "oocl", "mediterranean shipping",
		},
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(export|import|customs|duty|shipment|consignment)\b`),
			regexp.MustCompile(`(?i)\b(bill\s*of\s*lading|airway\s*bill|iec|dgft)\b`),
			regexp.MustCompile(`(?i)\b(fob|cif|cfr|exw|incoterms|letter\s*of\s*credit|lc)\b`),
			regexp.MustCompile(`(?i)\b(port|container|freight|clearing|forwarding)\b`),
			regexp.MustCompile(`(?i)\b(cha|customs\s*house|shipping\s*line)\b`),
		},
		processes: []string{"customs_clearance", "international_shipping", "documentation"},
	},
	{
		sector: model.SectorRetail,
		merchants: []string{
			"big bazaar", "vishal mega", "reliance retail", "spencer",
			"more", "easyday", "spar", "star bazaar", "hyper city",
		},
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(retail|store|outlet|shop|counter|pos|point\s*of\s*sale)\b`),
			regexp.MustCompile(`(?i)\b(footfall|billing|consumer|shopper|display)\b`),
			regexp.MustCompile(`(?i)\b(shelf|rack|merchandising|promotion|discount)\b`),
		},
		processes: []string{"store_operations", "point_of_sale", "merchandising"},
	},
	{
		sector:    model.SectorWholesale,
		merchants: []string{"metro", "bestprice", "walmart b2b", "reliance market"},
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(wholesale|bulk|carton|pallet|lot|godown)\b`),
			regexp.MustCompile(`(?i)\b(channel\s*partner|super\s*stockist|c&f|carrying\s*forwarding)\b`),
			regexp.MustCompile(`(?i)\b(margin|trade\s*discount|volume\s*discount)\b`),
		},
		processes: []string{"bulk_ordering", "warehouse_handling", "distribution"},
	},
	{
		sector: model.SectorECommerce,
		merchants: []string{
			"amazon seller", "flipkart seller", "meesho", "shopify",
			"woocommerce", "magento", "opencart", "shiprocket", "delhivery",
			"ecom express", "xpressbees", "shadowfax",
		},
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(e-?commerce|online\s*store|marketplace|seller\s*central)\b`),
			regexp.MustCompile(`(?i)\b(sku|fulfillment|fba|fbm|cod|prepaid|shipping\s*label)\b`),
			regexp.MustCompile(`(?i)\b(return|refund|rto|last\s*mile|pincode)\b`),
			regexp.MustCompile(`(?i)\b(listing|catalog|product\s*page|cart)\b`),
		},
		processes: []string{"order_fulfillment", "last_mile_delivery", "returns_processing"},
	},
	{
		sector: model.SectorConsulting,
		merchants: []string{
			"mckinsey", "bcg", "bain", "deloitte", "pwc", "ey", "kpmg",
			"roland berger", "oliver wyman", "at kearney",
		},
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(consulting|advisory|strategy|due\s*diligence|assessment)\b`),
			regexp.MustCompile(`(?i)\b(engagement|proposal|pitch|deliverable|report)\b`),
			regexp.MustCompile(`(?i)\b(workshop|training|facilitation|coaching)\b`),
		},
		processes: []string{"project_delivery", "research", "client_management"},
	},
	{
		sector: model.SectorLogistics,
		merchants: []string{
			"blue dart", "gati", "safexpress", "tci", "vrl", "om logistics",
			"mahindra logistics", "tvs supply chain", "allcargo", "container corporation",
		},
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(logistics|transport|freight|trucking|fleet|haulage)\b`),
			regexp.MustCompile(`(?i)\b(warehouse|3pl|4pl|supply\s*chain|cold\s*chain)\b`),
			regexp.MustCompile(`(?i)\b(consignment|lr|lorry\s*receipt|pod|proof\s*of\s*delivery)\b`),
			regexp.MustCompile(`(?i)\b(toll|fastag|fuel|diesel|petrol|cng)\b`),
		},
		processes: []string{"fleet_operations", "warehouse_management", "route_planning"},
	},
	{
		sector: model.SectorAgriculture,
		merchants: []string{
			"iffco", "kribhco", "national fertilizer", "rashtriya chemicals",
			"upl", "bayer crop", "syngenta", "basf agro", "fmc",
			"mahindra agri", "escorts", "sonalika", "john deere",
		},
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(farm|agriculture|agri|crop|harvest|seed|fertilizer|pesticide)\b`),
			regexp.MustCompile(`(?i)\b(tractor|irrigation|sprayer|drip|kisan|mandi)\b`),
			regexp.MustCompile(`(?i)\b(urea|dap|npk|organic\s*manure|bio\s*fertilizer)\b`),
			regexp.MustCompile(`(?i)\b(apmc|fpo|farmer\s*producer|krishi)\b`),
		},
		processes: []string{"irrigation", "harvesting", "soil_preparation", "crop_protection"},
	},
	{
		sector: model.SectorHandicrafts,
		merchants: []string{
			"fabindia", "khadi", "cottage emporium", "cauvery",
			"lepakshi", "gurjari", "poompuhar", "phulkari",
		},
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(handicraft|handmade|artisan|craftsman|loom|weaving)\b`),
			regexp.MustCompile(`(?i)\b(embroidery|block\s*print|tie\s*dye|batik|kalamkari)\b`),
			regexp.MustCompile(`(?i)\b(pottery|ceramic|woodwork|metalwork|lacquer)\b`),
			regexp.MustCompile(`(?i)\b(gi\s*tag|geographical\s*indication|heritage)\b`),
		},
		processes: []string{"handcrafting", "dyeing", "finishing", "polishing"},
	},
	{
		sector: model.SectorFoodProcessing,
		merchants: []string{
			"nestle", "britannia", "parle", "itc foods", "amul", "mother dairy",
			"haldiram", "mtr", "lijjat", "patanjali", "dabur",
		},
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(food\s*processing|fssai|fda|packaged\s*food|ready\s*to\s*eat)\b`),
			regexp.MustCompile(`(?i)\b(cold\s*storage|blast\s*freezer|pasteurizer|homogenizer)\b`),
			regexp.MustCompile(`(?i)\b(shelf\s*life|batch\s*code|expiry|mrp|nutritional)\b`),
			regexp.MustCompile(`(?i)\b(flour|oil|spice|pickle|beverage|dairy)\b`),
		},
		processes: []string{"processing", "cold_storage", "packaging", "quality_testing"},
	},
	{
		sector: model.SectorTextiles,
		merchants: []string{
			"raymond", "arvind", "welspun", "trident", "vardhman", "alok",
			"bombay dyeing", "grasim", "aditya birla fashion", "page industries",
		},
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(textile|fabric|yarn|cotton|polyester|viscose|linen)\b`),
			regexp.MustCompile(`(?i)\b(spinning|weaving|dyeing|printing|finishing|stitching)\b`),
			regexp.MustCompile(`(?i)\b(garment|apparel|fashion|readymade|rtw)\b`),
			regexp.MustCompile(`(?i)\b(gsm|thread\s*count|denier|tex|warp|weft)\b`),
		},
		processes: []string{"spinning", "weaving", "dyeing", "finishing", "stitching"},
	},
	{
		sector: model.SectorElectronics,
		merchants: []string{
			"samsung", "lg", "sony", "panasonic", "philips", "bosch",
			"havells", "orient", "crompton", "bajaj electricals",
			"voltas", "blue star", "daikin", "dixon", "amber",
		},
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(electronics|pcb|circuit|smt|smd|component|semiconductor)\b`),
			regexp.MustCompile(`(?i)\b(led|lcd|display|battery|charger|adapter|transformer)\b`),
			regexp.MustCompile(`(?i)\b(appliance|consumer\s*durable|white\s*goods|brown\s*goods)\b`),
			regexp.MustCompile(`(?i)\b(bis|isi|rohs|weee|e-?waste)\b`),
		},
		processes: []string{"pcb_assembly", "testing", "packaging", "burn_in"},
	},
	{
		sector: model.SectorAutomotive,
		merchants: []string{
			"maruti", "hyundai", "tata motors", "mahindra auto", "hero",
			"bajaj auto", "tvs motor", "ashok leyland", "eicher", "force",
			"bosch auto", "denso", "valeo", "minda", "motherson",
		},
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(automotive|automobile|vehicle|auto\s*parts|oem|tier-?1|tier-?2)\b`),
			regexp.MustCompile(`(?i)\b(chassis|engine|transmission|axle|suspension|braking)\b`),
			regexp.MustCompile(`(?i)\b(paint\s*shop|body\s*shop|assembly\s*line|pressing|stamping)\b`),
			regexp.MustCompile(`(?i)\b(bharat\s*stage|bs6|emission|catalytic|ev|electric\s*vehicle)\b`),
		},
		processes: []string{"stamping", "assembly", "painting", "heat_treatment"},
	},
	{
		sector: model.SectorConstruction,
		merchants: []string{
			"ultratech", "acc", "ambuja", "shree cement", "jk cement",
			"jk lakshmi", "dalmia", "birla corp", "india cement",
			"l&t construction", "shapoorji", "tata projects", "kalpataru",
		},
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(construction|civil|builder|contractor|infrastructure|real\s*estate)\b`),
			regexp.MustCompile(`(?i)\b(cement|concrete|rmc|ready\s*mix|steel|rebar|tmt)\b`),
			regexp.MustCompile(`(?i)\b(site|excavation|foundation|formwork|shuttering|scaffolding)\b`),
			regexp.MustCompile(`(?i)\b(rera|occupation\s*certificate|completion|possession)\b`),
		},
		processes: []string{"site_preparation", "construction", "finishing", "curing"},
	},
	{
		sector: model.SectorHealthcare,
		merchants: []string{
			"apollo", "fortis", "max", "manipal", "narayana", "medanta",
			"cipla", "sun pharma", "dr reddy", "lupin", "biocon", "glenmark",
		},
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(hospital|clinic|diagnostic|pharma|pharmaceutical|medical)\b`),
			regexp.MustCompile(`(?i)\b(patient|doctor|consultation|treatment|therapy|surgery)\b`),
			regexp.MustCompile(`(?i)\b(medicine|tablet|capsule|injection|iv|saline)\b`),
			regexp.MustCompile(`(?i)\b(fda|cdsco|dcgi|gmp|who|usfda)\b`),
		},
		processes: []string{"patient_care", "diagnostics", "sterilization", "pharmacy_operations"},
	},
	{
		sector: model.SectorEducation,
		merchants: []string{
			"byju", "unacademy", "vedantu", "upgrad", "great learning",
			"simplilearn", "coursera", "udemy", "edx", "khan academy",
		},
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(education|school|college|university|institute|academy)\b`),
			regexp.MustCompile(`(?i)\b(tuition|fee|admission|semester|course|class|lecture)\b`),
			regexp.MustCompile(`(?i)\b(student|teacher|faculty|curriculum|syllabus|exam)\b`),
			regexp.MustCompile(`(?i)\b(ugc|aicte|ncte|naac|nba|accreditation)\b`),
		},
		processes: []string{"teaching", "facility_management", "lab_operations"},
	},
	{
		sector: model.SectorTourism,
		merchants: []string{
			"taj", "oberoi", "itc hotels", "marriott", "hyatt", "hilton",
			"oyo", "treebo", "fabhotel", "lemon tree", "radisson",
			"makemytrip", "goibibo", "cleartrip", "yatra", "thomas cook",
		},
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(hotel|resort|hospitality|tourism|travel|booking)\b`),
			regexp.MustCompile(`(?i)\b(room|suite|accommodation|stay|checkin|checkout)\b`),
			regexp.MustCompile(`(?i)\b(tour|package|itinerary|sightseeing|excursion)\b`),
			regexp.MustCompile(`(?i)\b(guest|visitor|tourist|traveller|holiday)\b`),
		},
		processes: []string{"hospitality", "travel_services", "event_management"},
	},
}

func init() {
	for _, p := range profiles {
		p.merchantPatterns = make([]*regexp.Regexp, len(p.merchants))
		for i, m := range p.merchants {
			p.merchantPatterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(m) + `\b`)
		}
		p.processPatterns = make([]*regexp.Regexp, len(p.processes))
		for i, proc := range p.processes {
			p.processPatterns[i] = regexp.MustCompile(`(?i)\b` + strings.ReplaceAll(proc, "_", `\s*`) + `\b`)
		}
	}
}

func detectByMerchant(t string) *model.IndustryResult {
	for _, p := range profiles {
		for i, re := range p.merchantPatterns {
			if re.MatchString(t) {
				return &model.IndustryResult{
					Sector:     p.sector,
					MatchType:  model.MatchMerchant,
					Merchant:   p.merchants[i],
					Confidence: merchantConfidence,
				}
			}
		}
	}
	return nil
}

func detectByKeywords(t string) *model.IndustryResult {
	var best *model.IndustryResult
	bestCount := 0

	for _, p := range profiles {
		count := 0
		var matched []string
		for _, re := range p.keywords {
			if kw := re.FindString(t); kw != "" {
				count++
				matched = append(matched, strings.ToLower(kw))
			}
		}
		// Strictly greater keeps declaration order as the tiebreak.
		if count > bestCount {
			bestCount = count
			best = &model.IndustryResult{
				Sector:     p.sector,
				MatchType:  model.MatchKeyword,
				Keywords:   matched,
				Confidence: min(keywordBase+float64(count)*keywordStep, keywordCeiling),
			}
		}
	}
	return best
}

func detectByProcess(t string) *model.IndustryResult {
	for _, p := range profiles {
		for i, re := range p.processPatterns {
			if re.MatchString(t) {
				return &model.IndustryResult{
					Sector:     p.sector,
					MatchType:  model.MatchProcess,
					Process:    p.processes[i],
					Confidence: processConfidence,
				}
			}
		}
	}
	return nil
}

// Classify resolves the industry sector for a message. A recognized merchant
// name decides outright; otherwise sectors compete on keyword hit counts,
// and process names are the last resort before the generic "other" bucket.
func Classify(text string) model.IndustryResult {
	t := strings.TrimSpace(text)

	result := model.IndustryResult{
		Sector:     model.SectorOther,
		MatchType:  model.MatchNone,
		Confidence: otherConfidence,
	}

	if t == "" {
		result.ReasonCodes = []string{"empty_message"}
		return result
	}

	if m := detectByMerchant(t); m != nil {
		m.ReasonCodes = []string{"industry_merchant_detected"}
		return *m
	}

	if k := detectByKeywords(t); k != nil {
		k.ReasonCodes = []string{"industry_keyword_matched"}
		return *k
	}

	if p := detectByProcess(t); p != nil {
		p.ReasonCodes = []string{"industry_process_detected"}
		return *p
	}

	return result
}
