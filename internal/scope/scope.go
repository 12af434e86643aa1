// Package scope attributes a GHG reporting scope to a classified message.
// Attribution is a fixed cascade: explicit offset/avoidance language first,
// then physical quantities (a unit pins the scope far better than wording),
// then the carbon category, then residual keyword fallbacks. The first
// branch that fires wins.
package scope

import (
	"regexp"
	"strings"

	"github.com/greenkhata/greenkhata/internal/model"
)

var (
	reElectricity = regexp.MustCompile(`(?i)\b(kwh|electricity|meter|power|grid|ac|hvac)\b`)
	reDiesel      = regexp.MustCompile(`(?i)\b(diesel)\b`)
	reGasoline    = regexp.MustCompile(`(?i)\b(petrol|gasoline)\b`)
	reFuelGeneric = regexp.MustCompile(`(?i)\b(fuel|refuel|filled\s*up)\b`)
	reStationary  = regexp.MustCompile(`(?i)\b(generator|genset|dg\s*set|boiler|furnace|kiln|heater)\b`)
	reFleet       = regexp.MustCompile(`(?i)\b(company\s*van|fleet|company\s*car|delivery\s*van|truck)\b`)

	reTravel3P = regexp.MustCompile(`(?i)\b(uber|ola|lyft|taxi|rideshare|flight|plane|train|rail|bus|subway|metro)\b`)
	reWaste    = regexp.MustCompile(`(?i)\b(recycle|recycling|landfill|trash|garbage|waste)\b`)
	rePurchase = regexp.MustCompile(`(?i)\b(order|ordered|purchase|invoice|shipping|delivery|courier|package)\b`)

	reAvoided   = regexp.MustCompile(`(?i)\b(saved|save|reduced|reduce|avoided|avoid|switched|switch|replaced|replace|installed|install)\b`)
	reLEDSolar  = regexp.MustCompile(`(?i)\b(led|solar|pv|heat\s*pump)\b`)
	reModeShift = regexp.MustCompile(`(?i)\b(remote\s*meeting|video\s*call|carpool|bike|cycled|walked)\b`)

	reOffset  = regexp.MustCompile(`(?i)\b(offset|offsets|carbon\s*credit|credit\s*purchase|vcu|ver|cer|gold\s*standard|vcs|verra)\b`)
	reRemoval = regexp.MustCompile(`(?i)\b(removal|removals|sequestration|tree\s*plant|afforestation|reforestation|biochar)\b`)
	reREC     = regexp.MustCompile(`(?i)\b(rec|renewable\s*energy\s*certificate|i-rec|irec)\b`)

	reReporting = regexp.MustCompile(`(?i)\b(esg|sustainability|ghg|emissions?\s*report|disclosure|audit|assurance|sbti|net\s*zero|target|baseline)\b`)
	reGovPolicy = regexp.MustCompile(`(?i)\b(government|ministry|authority|regulatory|regulation|policy|mandate|compliance|permit|license|inspection|pollution\s*control|cpcb|spcb|carbon\s*tax)\b`)
)

// Attribute assigns a GHG scope given the message text, the carbon category
// result, and the extracted quantity (nil when none was found).
func Attribute(text string, classification model.CategoryResult, qty *model.Quantity) model.ScopeResult {
	t := strings.TrimSpace(text)

	if reOffset.MatchString(t) || reRemoval.MatchString(t) || reREC.MatchString(t) {
		return model.ScopeResult{
			Scope:         model.Scope5,
			CategoryLabel: "Offsets / removals",
			Reason:        "Message indicates offsets/removals/credits.",
		}
	}

	if reAvoided.MatchString(t) && (reLEDSolar.MatchString(t) || reModeShift.MatchString(t) || qty != nil) {
		return model.ScopeResult{
			Scope:         model.Scope4,
			CategoryLabel: "Avoided emissions / reductions",
			Reason:        "Message indicates reduction/savings action.",
		}
	}

	if qty != nil {
		switch qty.Unit {
		case model.UnitKWh:
			return model.ScopeResult{
				Scope:         model.Scope2,
				CategoryLabel: "Purchased electricity",
				Reason:        "kWh detected (Scope 2).",
			}
		case model.UnitLiter:
			if reDiesel.MatchString(t) || reGasoline.MatchString(t) || reFuelGeneric.MatchString(t) || reStationary.MatchString(t) {
				return model.ScopeResult{
					Scope:         model.Scope1,
					CategoryLabel: "Fuel combustion (mobile/stationary)",
					Reason:        "Fuel quantity with combustion keywords (Scope 1).",
				}
			}
		case model.UnitM3:
			return model.ScopeResult{
				Scope:         model.Scope1,
				CategoryLabel: "Stationary combustion (natural gas)",
				Reason:        "Natural gas volume detected (Scope 1).",
			}
		case model.UnitKm:
			if reFleet.MatchString(t) {
				return model.ScopeResult{
					Scope:         model.Scope1,
					CategoryLabel: "Company-owned fleet travel",
					Reason:        "Distance with fleet keywords (Scope 1).",
				}
			}
			if reTravel3P.MatchString(t) || classification.Category == model.CategoryTransport {
				return model.ScopeResult{
					Scope:         model.Scope3,
					CategoryLabel: "Transport / travel (indirect)",
					Reason:        "Third-party travel/transport (Scope 3).",
				}
			}
		}
	}

	switch classification.Category {
	case model.CategoryFuel:
		label := "Mobile combustion"
		if strings.Contains(string(classification.Subcategory), "stationary") {
			label = "Stationary combustion"
		}
		return model.ScopeResult{
			Scope:         model.Scope1,
			CategoryLabel: label,
			Reason:        "Fuel category detected (Scope 1).",
		}
	case model.CategoryEnergy:
		return model.ScopeResult{
			Scope:         model.Scope2,
			CategoryLabel: "Purchased electricity",
			Reason:        "Energy category detected (Scope 2).",
		}
	case model.CategoryTransport:
		return model.ScopeResult{
			Scope:         model.Scope3,
			CategoryLabel: "Transport / travel",
			Reason:        "Transport category detected (Scope 3).",
		}
	}

	if reWaste.MatchString(t) || classification.Category == model.CategoryWaste {
		return model.ScopeResult{
			Scope:         model.Scope3,
			CategoryLabel: "Waste",
			Reason:        "Waste keywords detected (Scope 3).",
		}
	}

	if rePurchase.MatchString(t) || classification.Category == model.CategoryProcurement {
		return model.ScopeResult{
			Scope:         model.Scope3,
			CategoryLabel: "Purchased goods/services & logistics",
			Reason:        "Purchase/logistics keywords detected (Scope 3).",
		}
	}

	if reElectricity.MatchString(t) {
		return model.ScopeResult{
			Scope:         model.Scope2,
			CategoryLabel: "Purchased electricity",
			Reason:        "Electricity keywords detected (Scope 2).",
		}
	}

	if reGovPolicy.MatchString(t) {
		return model.ScopeResult{
			Scope:         model.Scope7,
			CategoryLabel: "Government policies & mandates",
			Reason:        "Policy/compliance language detected.",
		}
	}

	if reReporting.MatchString(t) {
		return model.ScopeResult{
			Scope:         model.Scope6,
			CategoryLabel: "Reporting / targets / governance",
			Reason:        "Reporting/governance language detected.",
		}
	}

	return model.ScopeResult{
		Scope:         model.ScopeUnknown,
		CategoryLabel: "Unclassified",
		Reason:        "No scope heuristic matched.",
	}
}
