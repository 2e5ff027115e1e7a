package cache

import (
	"strconv"
	"strings"

	"github.com/roamio/travelagency/model"
)

// Cache key builders. Keys are pure deterministic functions of the logical
// query: fixed field order, ":" separator, sentinel tokens for absent
// filters. Two identical queries must always map to the same key and two
// distinct queries must never collide.

// escape neutralizes the separator inside caller-supplied values so a ":"
// in one field cannot collide with the field boundary of another.
func escape(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	return strings.ReplaceAll(s, ":", "%3A")
}

// TourListKey derives the cache key for a filtered tour listing.
func TourListKey(filter model.TourFilter) string {
	category := "all"
	if filter.Category != "" {
		category = escape(filter.Category)
	}
	country := "all"
	if filter.Country != "" {
		country = escape(filter.Country)
	}
	minPrice := strconv.FormatFloat(filter.MinPrice, 'f', -1, 64)
	maxPrice := "max"
	if filter.MaxPrice > 0 {
		maxPrice = strconv.FormatFloat(filter.MaxPrice, 'f', -1, 64)
	}
	sortBy := "default"
	if filter.SortBy != "" {
		sortBy = escape(filter.SortBy)
	}

	return strings.Join([]string{"tours", "list", category, country, minPrice, maxPrice, sortBy}, ":")
}

// TourSlugKey derives the cache key for a single-tour lookup by slug.
func TourSlugKey(slug string) string {
	return "tours:slug:" + escape(slug)
}

// FeaturedToursKey is the cache key for the featured tour listing.
func FeaturedToursKey() string {
	return "tours:featured"
}

// VisaListKey derives the cache key for a filtered visa package listing.
func VisaListKey(filter model.VisaFilter) string {
	country := "all"
	if filter.Country != "" {
		country = escape(filter.Country)
	}
	visaType := "all"
	if filter.Type != "" {
		visaType = escape(filter.Type)
	}

	return strings.Join([]string{"visas", "list", country, visaType}, ":")
}

// VisaSlugKey derives the cache key for a single visa package lookup.
func VisaSlugKey(slug string) string {
	return "visas:slug:" + escape(slug)
}
