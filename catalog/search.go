package catalog

import (
	"sort"
	"strings"

	"github.com/debghosh/kreations/models"
)

// Sort keys understood by Search.
const (
	SortPopularity = "popularity" // descending, the default
	SortPriceLow   = "price-low"  // ascending
	SortPriceHigh  = "price-high" // descending
)

// Search filters items on a case-insensitive substring match against title,
// description, and tags, then orders by the given sort key. The sort is
// stable: ties keep the original array order, so repeated calls over the
// same catalog return identical sequences.
func Search(items []models.Item, query, sortBy string) []models.Item {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Item, 0, len(items))
	for _, item := range items {
		if q == "" || matches(item, q) {
			out = append(out, item)
		}
	}

	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Popularity > out[j].Popularity })
	}
	return out
}

func matches(item models.Item, q string) bool {
	if strings.Contains(strings.ToLower(item.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Description), q) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
