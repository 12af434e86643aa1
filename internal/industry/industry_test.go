package industry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greenkhata/greenkhata/internal/model"
)

func TestClassifyMerchant(t *testing.T) {
	got := Classify("Payment of Rs.1,20,000 to Tata Steel for TMT bars")

	assert.Equal(t, model.SectorManufacturing, got.Sector)
	assert.Equal(t, model.MatchMerchant, got.MatchType)
	assert.Equal(t, "tata steel", got.Merchant)
	assert.InDelta(t, 0.95, got.Confidence, 1e-9)
	assert.Equal(t, []string{"industry_merchant_detected"}, got.ReasonCodes)
}

func TestClassifyKeywordsCountWins(t *testing.T) {
	// Two construction patterns fire (cement/concrete and site); nothing
	// else scores as high.
	got := Classify("Concrete poured at the site, excavation next week")

	assert.Equal(t, model.SectorConstruction, got.Sector)
	assert.Equal(t, model.MatchKeyword, got.MatchType)
	assert.InDelta(t, 0.4+2*0.15, got.Confidence, 1e-9)
	assert.Contains(t, got.Keywords, "concrete")
	assert.Contains(t, got.Keywords, "site")
}

func TestClassifyKeywordConfidenceCeiling(t *testing.T) {
	// All five export/import patterns fire; confidence caps at 0.85.
	got := Classify("Export consignment held: bill of lading, letter of credit, container at port, customs house agent notified")

	assert.Equal(t, model.SectorExportImport, got.Sector)
	assert.InDelta(t, 0.85, got.Confidence, 1e-9)
}

func TestClassifyKeywordTiebreakIsDeclarationOrder(t *testing.T) {
	// "wholesale" fires one pattern for trading and one for wholesale;
	// trading is declared first and keeps the tie.
	got := Classify("wholesale rates revised")

	assert.Equal(t, model.SectorTrading, got.Sector)
	assert.Equal(t, model.MatchKeyword, got.MatchType)
}

func TestClassifyProcessFallback(t *testing.T) {
	got := Classify("pcb assembly run scheduled tonight")

	// "assembly" is a manufacturing keyword, so the keyword detector
	// resolves this before the process detector is consulted.
	assert.Equal(t, model.SectorManufacturing, got.Sector)
	assert.Equal(t, model.MatchKeyword, got.MatchType)

	got = Classify("christmas handcrafting orders open")
	assert.Equal(t, model.SectorHandicrafts, got.Sector)
	assert.Equal(t, model.MatchProcess, got.MatchType)
	assert.Equal(t, "handcrafting", got.Process)
	assert.InDelta(t, 0.7, got.Confidence, 1e-9)
}

func TestClassifyOther(t *testing.T) {
	got := Classify("Dinner at 8?")

	assert.Equal(t, model.SectorOther, got.Sector)
	assert.Equal(t, model.MatchNone, got.MatchType)
	assert.InDelta(t, 0.3, got.Confidence, 1e-9)
}

func TestClassifyEmpty(t *testing.T) {
	got := Classify("")

	assert.Equal(t, model.SectorOther, got.Sector)
	assert.Equal(t, []string{"empty_message"}, got.ReasonCodes)
}
