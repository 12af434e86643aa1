// Package extract pulls physical quantities and monetary amounts out of free
// message text. All unit patterns are compiled once at package load and tried
// in a fixed priority order; imperial units are normalized to metric before
// they leave this package.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/greenkhata/greenkhata/internal/model"
)

// Unit conversion factors.
const (
	kmPerMile      = 1.60934
	litersPerGal   = 3.78541
	kgPerTonne     = 1000.0
)

// numPattern matches a number with optional thousands separators.
const numPattern = `(\d+(?:,\d{3})*(?:\.\d+)?)`

var (
	reKWh    = regexp.MustCompile(`(?i)\b` + numPattern + `\s*(?:k\s*wh|kwh|units?)\b`)
	reLiter  = regexp.MustCompile(`(?i)\b` + numPattern + `\s*(?:l|ltr|litre(?:s)?|liter(?:s)?)\b`)
	reGallon = regexp.MustCompile(`(?i)\b` + numPattern + `\s*(?:gal|gallon(?:s)?)\b`)
	reM3     = regexp.MustCompile(`(?i)\b` + numPattern + `\s*(?:m3|m\^3|cubic\s*met(?:er|re)(?:s)?)\b`)
	reCNGKg  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*kg`)
	reKm     = regexp.MustCompile(`(?i)\b` + numPattern + `\s*(?:km|kilometer(?:s)?|kilometre(?:s)?)\b`)
	reMile   = regexp.MustCompile(`(?i)\b` + numPattern + `\s*(?:mi|mile(?:s)?)\b`)
	reKgCO2e = regexp.MustCompile(`(?i)\b` + numPattern + `\s*(?:kg)\s*(?:co2e?|carbon)\b`)
	reTCO2e  = regexp.MustCompile(`(?i)\b` + numPattern + `\s*(?:t|tonne(?:s)?|ton(?:s)?)\s*(?:co2e?|carbon)\b`)

	reDiesel = regexp.MustCompile(`(?i)\b(diesel|hsd)\b`)
	rePetrol = regexp.MustCompile(`(?i)\b(petrol|gasoline|unleaded)\b`)
	reCNG    = regexp.MustCompile(`(?i)\b(cng|natural\s*gas)\b`)
	reLPG    = regexp.MustCompile(`(?i)\b(lpg|propane)\b`)
)

// parseNumber parses a matched numeric group, stripping thousands
// separators. A failed parse means "no match", never an error.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// fuelCommodity refines a liquid-fuel match using nearby keywords.
func fuelCommodity(text string, allowLPG bool) string {
	switch {
	case reDiesel.MatchString(text):
		return "diesel"
	case rePetrol.MatchString(text):
		return "petrol"
	case allowLPG && reLPG.MatchString(text):
		return "lpg"
	default:
		return "fuel"
	}
}

// Quantity extracts the first physical quantity from text. The unit patterns
// are tried in a fixed priority order (kWh, liters, gallons, m3, CNG kg, km,
// miles, kgCO2e, tCO2e) and the first successful parse wins regardless of
// position in the text. Returns nil when nothing matches.
func Quantity(text string) *model.Quantity {
	t := strings.TrimSpace(text)
	if t == "" {
		return nil
	}

	if m := reKWh.FindStringSubmatch(t); m != nil {
		if v, ok := parseNumber(m[1]); ok {
			return &model.Quantity{Value: v, Unit: model.UnitKWh, Commodity: "electricity"}
		}
	}

	if m := reLiter.FindStringSubmatch(t); m != nil {
		if v, ok := parseNumber(m[1]); ok {
			return &model.Quantity{Value: v, Unit: model.UnitLiter, Commodity: fuelCommodity(t, true)}
		}
	}

	if m := reGallon.FindStringSubmatch(t); m != nil {
		if v, ok := parseNumber(m[1]); ok {
			return &model.Quantity{Value: v * litersPerGal, Unit: model.UnitLiter, Commodity: fuelCommodity(t, false)}
		}
	}

	if m := reM3.FindStringSubmatch(t); m != nil {
		if v, ok := parseNumber(m[1]); ok {
			return &model.Quantity{Value: v, Unit: model.UnitM3, Commodity: "natural_gas"}
		}
	}

	// CNG is sold by the kilogram; only trust a kg figure when a CNG
	// keyword is present.
	if reCNG.MatchString(t) {
		if m := reCNGKg.FindStringSubmatch(t); m != nil {
			if v, ok := parseNumber(m[1]); ok {
				return &model.Quantity{Value: v, Unit: model.UnitKg, Commodity: "cng"}
			}
		}
	}

	if m := reKm.FindStringSubmatch(t); m != nil {
		if v, ok := parseNumber(m[1]); ok {
			return &model.Quantity{Value: v, Unit: model.UnitKm, Commodity: "distance"}
		}
	}

	if m := reMile.FindStringSubmatch(t); m != nil {
		if v, ok := parseNumber(m[1]); ok {
			return &model.Quantity{Value: v * kmPerMile, Unit: model.UnitKm, Commodity: "distance"}
		}
	}

	if m := reKgCO2e.FindStringSubmatch(t); m != nil {
		if v, ok := parseNumber(m[1]); ok {
			return &model.Quantity{Value: v, Unit: model.UnitKgCO2e, Commodity: "emissions"}
		}
	}

	if m := reTCO2e.FindStringSubmatch(t); m != nil {
		if v, ok := parseNumber(m[1]); ok {
			return &model.Quantity{Value: v * kgPerTonne, Unit: model.UnitKgCO2e, Commodity: "emissions"}
		}
	}

	return nil
}
