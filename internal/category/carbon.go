// Package category holds the two category cascades: the carbon-activity
// classifier (quantity-driven, used for scope attribution) and the personal
// expense classifier (merchant and keyword driven). Both are pure functions
// over message text; all pattern tables are compiled at package load.
package category

import (
	"regexp"
	"strings"

	"github.com/greenkhata/greenkhata/internal/model"
)

// transportModes are checked in order; the first matching mode wins. Car is
// first so that generic driving verbs don't fall through to rideshare.
var transportModes = []struct {
	mode string
	re   *regexp.Regexp
}{
	{"car", regexp.MustCompile(`(?i)\b(drove|drive|driving|car|vehicle|sedan|suv|hatchback)\b`)},
	{"rideshare", regexp.MustCompile(`(?i)\b(uber|ola|lyft|taxi|cab|rideshare|grab)\b`)},
	{"bus", regexp.MustCompile(`(?i)\b(bus|coach|public\s*transport)\b`)},
	{"train", regexp.MustCompile(`(?i)\b(train|rail|metro|subway|local\s*train)\b`)},
	{"bike", regexp.MustCompile(`(?i)\b(bike|bicycle|cycling|cycled)\b`)},
	{"walk", regexp.MustCompile(`(?i)\b(walk|walked|walking|on\s*foot)\b`)},
	{"flight", regexp.MustCompile(`(?i)\b(flight|flew|flying|airplane|plane|airport|boarding)\b`)},
	{"auto", regexp.MustCompile(`(?i)\b(auto|rickshaw|auto-rickshaw|autorickshaw)\b`)},
}

var (
	reElectricity = regexp.MustCompile(`(?i)\b(kwh|electricity|power|meter\s*reading|bill|unit|grid|consumed)\b`)

	reDiesel = regexp.MustCompile(`(?i)\b(diesel|hsd)\b`)
	rePetrol = regexp.MustCompile(`(?i)\b(petrol|gasoline|unleaded)\b`)
	reCNG    = regexp.MustCompile(`(?i)\b(cng)\b`)
	reLPG    = regexp.MustCompile(`(?i)\b(lpg|cylinder|cooking\s*gas)\b`)

	reFuelContext = regexp.MustCompile(`(?i)\b(pump|petrol\s*pump|fuel\s*station|hp|iocl|bpcl|shell|filled|refuel|tank)\b`)
	reStationary  = regexp.MustCompile(`(?i)\b(generator|genset|dg\s*set|boiler|furnace|kiln|heater)\b`)
	rePurchase    = regexp.MustCompile(`(?i)\b(order|ordered|purchase|invoice|shipping|delivery|courier|package|dispatch|shipment)\b`)
)

var wasteTypes = []struct {
	kind string
	re   *regexp.Regexp
}{
	{"recycling", regexp.MustCompile(`(?i)\b(recycle|recycling|recycled|sorted|segregat)\b`)},
	{"trash", regexp.MustCompile(`(?i)\b(trash|garbage|waste|landfill|dump|disposed)\b`)},
}

var foodTypes = []struct {
	kind string
	re   *regexp.Regexp
}{
	{"beef", regexp.MustCompile(`(?i)\b(beef|steak|burger|mutton|lamb|goat)\b`)},
	{"chicken", regexp.MustCompile(`(?i)\b(chicken|poultry)\b`)},
	{"fish", regexp.MustCompile(`(?i)\b(fish|seafood|prawn|shrimp)\b`)},
	{"vegan", regexp.MustCompile(`(?i)\b(vegan|vegetarian|plant\s*based|tofu|lentil|dal)\b`)},
}

// Context refinements for quantity-driven branches.
var (
	reMeter     = regexp.MustCompile(`(?i)\b(meter|metering|reading)\b`)
	reSolar     = regexp.MustCompile(`(?i)\b(solar|pv|net\s*metering|rooftop)\b`)
	reLighting  = regexp.MustCompile(`(?i)\b(led|lighting|bulb)\b`)
	reHVAC      = regexp.MustCompile(`(?i)\b(ac|hvac|air\s*con|heater|heating|cooling)\b`)
	reMachinery = regexp.MustCompile(`(?i)\b(cnc|machine|motor|compressor|welding|kiln)\b`)
	reEV        = regexp.MustCompile(`(?i)\b(ev|e-?rickshaw|charged|charging|electric\s*vehicle)\b`)
	reLogistics = regexp.MustCompile(`(?i)\b(delivery|dispatch|courier|shipment|pickup)\b`)
	reBizTravel = regexp.MustCompile(`(?i)\b(client|meeting|audit|visit)\b`)
	reCommute   = regexp.MustCompile(`(?i)\b(commute|to\s*work|to\s*office|office)\b`)
	reRawMat    = regexp.MustCompile(`(?i)\b(raw\s*material|inputs?)\b`)
	rePackaging = regexp.MustCompile(`(?i)\b(packaging|carton|box)\b`)
)

// Carbon classifies text into a carbon activity category. An extracted
// quantity, when present, takes precedence over text patterns: a unit tells
// us what was consumed far more reliably than wording does.
func Carbon(text string, qty *model.Quantity) model.CategoryResult {
	t := strings.TrimSpace(text)
	if t == "" {
		return model.CategoryResult{
			Category:    model.CategoryOther,
			Subcategory: "empty",
			Activity:    "unknown",
			Confidence:  0,
			ReasonCodes: []string{"empty_message"},
		}
	}

	if qty != nil {
		switch qty.Unit {
		case model.UnitKWh:
			return classifyElectricity(t)
		case model.UnitLiter:
			return classifyLiquidFuel(t)
		case model.UnitM3:
			return model.CategoryResult{
				Category:    model.CategoryFuel,
				Subcategory: "natural_gas.stationary",
				Activity:    "combustion",
				Confidence:  0.9,
				ReasonCodes: []string{"gas_volume_detected"},
			}
		case model.UnitKm:
			return classifyDistance(t)
		}
	}

	// Text-only branches, most specific first.
	if reFuelContext.MatchString(t) {
		fuelType := "fuel"
		switch {
		case reDiesel.MatchString(t):
			fuelType = "diesel"
		case rePetrol.MatchString(t):
			fuelType = "petrol"
		case reCNG.MatchString(t):
			fuelType = "cng"
		case reLPG.MatchString(t):
			fuelType = "lpg"
		}
		return model.CategoryResult{
			Category:    model.CategoryFuel,
			Subcategory: model.Subcategory(fuelType + ".mobile"),
			Activity:    "purchase",
			Confidence:  0.75,
			ReasonCodes: []string{"fuel_context"},
		}
	}

	if reElectricity.MatchString(t) {
		return model.CategoryResult{
			Category:    model.CategoryEnergy,
			Subcategory: "electricity.general",
			Activity:    "consumption",
			Confidence:  0.7,
			ReasonCodes: []string{"electricity_keyword"},
		}
	}

	for _, m := range transportModes {
		if m.re.MatchString(t) {
			return model.CategoryResult{
				Category:    model.CategoryTransport,
				Subcategory: model.Subcategory(m.mode),
				Activity:    "travel",
				Confidence:  0.7,
				ReasonCodes: []string{m.mode + "_keyword"},
			}
		}
	}

	for _, w := range wasteTypes {
		if w.re.MatchString(t) {
			activity := "disposal"
			if w.kind == "recycling" {
				activity = "recycling"
			}
			return model.CategoryResult{
				Category:    model.CategoryWaste,
				Subcategory: model.Subcategory(w.kind),
				Activity:    activity,
				Confidence:  0.7,
				ReasonCodes: []string{"waste_" + w.kind},
			}
		}
	}

	if rePurchase.MatchString(t) {
		sub := model.SubGeneral
		switch {
		case reRawMat.MatchString(t):
			sub = "raw_materials"
		case rePackaging.MatchString(t):
			sub = "packaging"
		case reLogistics.MatchString(t):
			sub = "courier_logistics"
		}
		return model.CategoryResult{
			Category:    model.CategoryProcurement,
			Subcategory: sub,
			Activity:    "delivery",
			Confidence:  0.65,
			ReasonCodes: []string{"purchase_keyword"},
		}
	}

	for _, f := range foodTypes {
		if f.re.MatchString(t) {
			return model.CategoryResult{
				Category:    model.CategoryFood,
				Subcategory: model.Subcategory(f.kind),
				Activity:    "consumption",
				Confidence:  0.6,
				ReasonCodes: []string{"food_" + f.kind},
			}
		}
	}

	return model.CategoryResult{
		Category:    model.CategoryOther,
		Subcategory: model.SubGeneral,
		Activity:    "unknown",
		Confidence:  0.3,
		ReasonCodes: []string{"unclassified"},
	}
}

func classifyElectricity(t string) model.CategoryResult {
	reasons := []string{"kwh_detected"}
	sub := model.SubGeneral
	switch {
	case reEV.MatchString(t):
		sub, reasons = "ev_charging", append(reasons, "ev_context")
	case reSolar.MatchString(t):
		sub, reasons = "solar_net_metering", append(reasons, "solar_context")
	case reMeter.MatchString(t):
		sub, reasons = "meter_reading", append(reasons, "meter_context")
	case reHVAC.MatchString(t):
		sub, reasons = "hvac", append(reasons, "hvac_context")
	case reMachinery.MatchString(t):
		sub, reasons = "machinery", append(reasons, "machinery_context")
	case reLighting.MatchString(t):
		sub, reasons = "lighting", append(reasons, "lighting_context")
	}
	return model.CategoryResult{
		Category:    model.CategoryEnergy,
		Subcategory: sub,
		Activity:    "electricity",
		Confidence:  0.9,
		ReasonCodes: reasons,
	}
}

func classifyLiquidFuel(t string) model.CategoryResult {
	reasons := []string{"fuel_volume_detected"}

	fuelType := "liquid_fuel"
	switch {
	case reDiesel.MatchString(t):
		fuelType = "diesel"
		reasons = append(reasons, "diesel_keyword")
	case rePetrol.MatchString(t):
		fuelType = "petrol"
		reasons = append(reasons, "petrol_keyword")
	}

	mode := "mobile"
	if reStationary.MatchString(t) {
		mode = "stationary"
		reasons = append(reasons, "stationary_combustion")
	} else {
		reasons = append(reasons, "mobile_combustion")
	}

	return model.CategoryResult{
		Category:    model.CategoryFuel,
		Subcategory: model.Subcategory(fuelType + "." + mode),
		Activity:    "combustion",
		Confidence:  0.9,
		ReasonCodes: reasons,
	}
}

func classifyDistance(t string) model.CategoryResult {
	reasons := []string{"distance_detected"}

	for _, m := range transportModes {
		if !m.re.MatchString(t) {
			continue
		}
		reasons = append(reasons, m.mode+"_keyword")

		sub := m.mode
		switch {
		case reLogistics.MatchString(t):
			sub = m.mode + ".logistics"
		case reBizTravel.MatchString(t):
			sub = m.mode + ".business_travel"
		case reCommute.MatchString(t):
			sub = m.mode + ".commute"
		}
		return model.CategoryResult{
			Category:    model.CategoryTransport,
			Subcategory: model.Subcategory(sub),
			Activity:    "travel",
			Confidence:  0.85,
			ReasonCodes: reasons,
		}
	}

	// Distance with no recognizable mode: assume a car trip, weakly.
	return model.CategoryResult{
		Category:    model.CategoryTransport,
		Subcategory: "car.general",
		Activity:    "travel",
		Confidence:  0.6,
		ReasonCodes: append(reasons, "default_car"),
	}
}
