package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greenkhata/greenkhata/internal/model"
)

func TestCategoryLookup(t *testing.T) {
	assert.Equal(t, "Fuel", Category(model.CategoryFuel).Label)
	assert.Equal(t, "#4ECDC4", Category(model.CategoryEnergy).Color)

	// Unknown keys fall back to the generic entry.
	assert.Equal(t, "Other", Category(model.Category("bogus")).Label)
}

func TestSubcategoryFallback(t *testing.T) {
	assert.Equal(t, "Electricity", Subcategory(model.SubElectricity).Label)
	assert.Equal(t, "General", Subcategory(model.Subcategory("diesel.stationary")).Label)
}

func TestForScope(t *testing.T) {
	assert.Equal(t, "Direct emissions", ForScope(model.Scope1).Description)
	assert.Equal(t, "Offsets", ForScope(model.Scope5).Label)
	assert.Equal(t, "Unknown", ForScope(model.Scope(42)).Label)
}

func TestSectorLookup(t *testing.T) {
	assert.Equal(t, "Manufacturing", Sector(model.SectorManufacturing).Label)
	assert.Equal(t, "Other", Sector(model.Sector("nope")).Label)
}

func TestAllSectorsStableOrder(t *testing.T) {
	all := AllSectors()
	assert.Len(t, all, 20)
	assert.Equal(t, model.SectorManufacturing, all[0].Key)
	assert.Equal(t, model.SectorOther, all[len(all)-1].Key)
	for _, e := range all {
		assert.NotEmpty(t, e.Info.Label)
		assert.NotEmpty(t, e.Info.Color)
	}
}

func TestAllCategoriesStableOrder(t *testing.T) {
	all := AllCategories()
	assert.Len(t, all, 14)
	assert.Equal(t, model.CategoryEnergy, all[0].Key)
	for _, e := range all {
		assert.NotEmpty(t, e.Info.Label)
	}
}
