package catalog

import "github.com/streamix/streamix-cli/internal/models"

// DedupeByID merges catalog lists into one containing each service-assigned
// ID exactly once, preserving first-seen order across the inputs.
func DedupeByID(lists ...[]models.ContentItem) []models.ContentItem {
	seen := make(map[string]struct{})
	var merged []models.ContentItem
	for _, list := range lists {
		for _, item := range list {
			if _, ok := seen[item.ID]; ok {
				continue
			}
			seen[item.ID] = struct{}{}
			merged = append(merged, item)
		}
	}
	return merged
}

// FilterByCategory returns the items tagged with the given category, checking
// both the single-category field and the multi-category list.
func FilterByCategory(items []models.ContentItem, category string) []models.ContentItem {
	var out []models.ContentItem
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
			continue
		}
		for _, c := range item.Categories {
			if c == category {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// SimilarFallback selects same-category titles when the similar endpoint
// returns nothing, excluding the item itself.
func SimilarFallback(all []models.ContentItem, item models.ContentItem, limit int) []models.ContentItem {
	var out []models.ContentItem
	for _, candidate := range all {
		if candidate.ID == item.ID || candidate.Category != item.Category {
			continue
		}
		out = append(out, candidate)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
