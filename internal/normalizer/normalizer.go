// Package normalizer derives deduplicated characteristic sets and dashboard
// counters from extracted feed structures. All functions are pure.
package normalizer

import (
	"github.com/feedline/yml-feed-parser/internal/platform/models"
)

// CollectCharacteristics flattens characteristics across all offers and
// deduplicates them by name and language. First occurrence wins, later
// duplicates are dropped, not merged, so characteristic values always come
// from the earliest offer declaring them.
func CollectCharacteristics(offers []models.Offer) []models.Characteristic {
	unique := []models.Characteristic{}
	seen := map[string]struct{}{}

	for _, offer := range offers {
		for _, characteristic := range offer.Characteristics {
			key := characteristic.DedupKey()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			unique = append(unique, characteristic)
		}
	}

	return unique
}

// CategoriesFromOffers derives the persisted category shape from parsed
// feed categories and offers, tallying product counts per category id.
func CategoriesFromOffers(categories []models.Category, offers []models.Offer) []models.ProductCategory {
	byID := make(map[string]int, len(categories))
	result := make([]models.ProductCategory, 0, len(categories))

	for _, category := range categories {
		byID[category.ID] = len(result)
		result = append(result, models.ProductCategory{
			Name:       category.Name,
			ExternalID: optionalString(category.ID),
			ParentID:   category.ParentID,
		})
	}

	for _, offer := range offers {
		if ix, ok := byID[offer.CategoryID]; ok {
			result[ix].ProductCount++
		}
	}

	return result
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// CountByCategory returns per-category counters over the flat extracted
// parameter list.
func CountByCategory(parameters []models.Parameter) models.CategoryCounts {
	counts := models.CategoryCounts{}

	for _, parameter := range parameters {
		if parameter.Kind == models.KindCharacteristic {
			counts.Characteristics++
			continue
		}

		switch parameter.Category {
		case models.CategoryCurrency:
			counts.Currencies++
		case models.CategoryCategory:
			counts.Categories++
		case models.CategoryOffer:
			counts.Offers++
		default:
			counts.Parameters++
		}
	}

	return counts
}

// CountTemplateByCategory returns per-category counters over persisted
// template parameter rows.
func CountTemplateByCategory(parameters []models.TemplateParameter) models.CategoryCounts {
	counts := models.CategoryCounts{}

	for _, parameter := range parameters {
		switch parameter.Category {
		case models.CategoryCurrency:
			counts.Currencies++
		case models.CategoryCategory:
			counts.Categories++
		case models.CategoryOffer:
			counts.Offers++
		case models.CategoryCharacteristic:
			counts.Characteristics++
		default:
			counts.Parameters++
		}
	}

	return counts
}
