package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/feedline/yml-feed-parser/internal/platform/models"
)

// ProductsFromStructure converts extracted offers into the ingestion product
// shape. Category references are resolved to category names, offer fields
// without a product column become attributes.
func ProductsFromStructure(structure *models.ParsedStructure) []models.Product {
	categoryNames := make(map[string]string, len(structure.Categories))
	for _, category := range structure.Categories {
		categoryNames[category.ID] = category.Name
	}

	products := make([]models.Product, 0, len(structure.Offers))
	for _, offer := range structure.Offers {
		products = append(products, productFromOffer(offer, categoryNames))
	}

	return products
}

func productFromOffer(offer models.Offer, categoryNames map[string]string) models.Product {
	product := models.Product{
		Name:          offer.Name,
		Price:         offer.Price,
		OldPrice:      offer.OldPrice,
		Currency:      offer.CurrencyID,
		CategoryName:  categoryNames[offer.CategoryID],
		StockQuantity: offer.StockQuantity,
		Available:     offer.Available,
		IsActive:      true,
	}

	if offer.Description != nil {
		product.Description = *offer.Description
	}
	if offer.Vendor != nil {
		product.Manufacturer = *offer.Vendor
	}
	if offer.Picture != "" {
		product.Images = []models.ProductImage{{URL: offer.Picture, IsMain: true}}
	}

	product.Attributes = attributesFromOffer(offer)

	return product
}

func attributesFromOffer(offer models.Offer) []models.ProductAttribute {
	attributes := []models.ProductAttribute{}

	appendAttribute := func(name string, value *string) {
		if value == nil || *value == "" {
			return
		}
		attributes = append(attributes, models.ProductAttribute{Name: name, Value: *value})
	}

	appendAttribute("external_id", &offer.ID)
	appendAttribute("article", offer.Article)
	appendAttribute("name_ua", offer.NameUA)
	appendAttribute("description_ua", offer.DescriptionUA)
	appendAttribute("url", &offer.URL)

	for _, characteristic := range offer.Characteristics {
		attributes = append(attributes, models.ProductAttribute{
			Name:     characteristic.Name,
			Value:    characteristic.Value,
			Language: characteristic.Language,
		})
	}

	return attributes
}

// TemplateParametersFromStructure converts the flat sampled parameter list
// into editable template parameter rows. Value types are guessed from the
// sampled values, display order follows extraction order.
func TemplateParametersFromStructure(parameters []models.Parameter) []models.TemplateParameter {
	rows := make([]models.TemplateParameter, 0, len(parameters))

	for ix, parameter := range parameters {
		rows = append(rows, models.TemplateParameter{
			Name:         parameter.Name,
			Value:        parameter.Value,
			Type:         guessValueType(parameter.Value),
			Category:     parameter.Category,
			XMLPath:      parameter.Path,
			IsActive:     true,
			DisplayOrder: int32(ix),
		})
	}

	return rows
}

// dateLayouts are formats seen in supplier feed date fields.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006",
}

func guessValueType(value string) models.ValueType {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return models.ValueTypeText
	}

	switch strings.ToLower(trimmed) {
	case "true", "false":
		return models.ValueTypeBoolean
	}

	if _, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", "."), 64); err == nil {
		return models.ValueTypeNumber
	}

	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, trimmed); err == nil {
			return models.ValueTypeDate
		}
	}

	return models.ValueTypeText
}
