package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roamio/travelagency/model"
)

func TestTourListKeyDeterministic(t *testing.T) {
	a := TourListKey(model.TourFilter{Category: "adventure", Country: "Nepal", MinPrice: 100, MaxPrice: 2000, SortBy: model.SortPriceAsc})
	b := TourListKey(model.TourFilter{Category: "adventure", Country: "Nepal", MinPrice: 100, MaxPrice: 2000, SortBy: model.SortPriceAsc})
	assert.Equal(t, a, b)
}

func TestTourListKeySentinelsForAbsentFilters(t *testing.T) {
	key := TourListKey(model.TourFilter{})
	assert.Equal(t, "tours:list:all:all:0:max:default", key)
}

func TestTourListKeyDistinctFiltersDistinctKeys(t *testing.T) {
	filters := []model.TourFilter{
		{},
		{Category: "adventure"},
		{Country: "Nepal"},
		{Category: "adventure", Country: "Nepal"},
		{MinPrice: 100},
		{MaxPrice: 2000},
		{SortBy: model.SortPriceDesc},
		{SortBy: model.SortRating},
	}

	seen := make(map[string]model.TourFilter)
	for _, f := range filters {
		key := TourListKey(f)
		prev, dup := seen[key]
		assert.False(t, dup, "filters %+v and %+v collided on %q", prev, f, key)
		seen[key] = f
	}
}

func TestTourListKeySeparatorInValuesDoesNotCollide(t *testing.T) {
	a := TourListKey(model.TourFilter{Category: "a:b", Country: "c"})
	b := TourListKey(model.TourFilter{Category: "a", Country: "b:c"})
	assert.NotEqual(t, a, b)

	// Escaping must stay deterministic across calls.
	assert.Equal(t, a, TourListKey(model.TourFilter{Category: "a:b", Country: "c"}))
}

func TestEntityKeysDoNotCollideWithListKeys(t *testing.T) {
	assert.NotEqual(t, TourSlugKey("featured"), FeaturedToursKey())
	assert.NotEqual(t, TourListKey(model.TourFilter{}), VisaListKey(model.VisaFilter{}))
}

func TestVisaListKeySentinels(t *testing.T) {
	assert.Equal(t, "visas:list:all:all", VisaListKey(model.VisaFilter{}))
	assert.Equal(t, "visas:list:Japan:tourist", VisaListKey(model.VisaFilter{Country: "Japan", Type: "tourist"}))
}
