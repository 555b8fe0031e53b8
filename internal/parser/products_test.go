package parser_test

import (
	"testing"

	"github.com/feedline/yml-feed-parser/internal/parser"
	"github.com/feedline/yml-feed-parser/internal/platform/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitProductsFromStructure(t *testing.T) {
	structure := &models.ParsedStructure{
		Categories: []models.Category{
			{ID: "10", Name: "Смартфони"},
		},
		Offers: []models.Offer{
			{
				ID:            "1001",
				Available:     true,
				Name:          "Phone X",
				NameUA:        lo.ToPtr("Телефон X"),
				Article:       lo.ToPtr("PX-1"),
				Vendor:        lo.ToPtr("Acme"),
				Description:   lo.ToPtr("Flagship phone"),
				Price:         12499.5,
				OldPrice:      lo.ToPtr(13999.0),
				CurrencyID:    "UAH",
				CategoryID:    "10",
				URL:           "https://shop.example.ua/phone-x",
				Picture:       "https://shop.example.ua/phone-x.jpg",
				StockQuantity: lo.ToPtr(5),
				Characteristics: []models.Characteristic{
					{Name: "Колір", Value: "Чорний", Language: lo.ToPtr("ua")},
				},
			},
			{
				ID:         "1002",
				Name:       "Case",
				Price:      199,
				CurrencyID: "UAH",
				CategoryID: "99",
				URL:        "https://shop.example.ua/case",
			},
		},
	}

	products := parser.ProductsFromStructure(structure)

	require.Len(t, products, 2, "should convert every offer")

	phone := products[0]
	assert.Equal(t, "Phone X", phone.Name)
	assert.Equal(t, "Flagship phone", phone.Description)
	assert.Equal(t, 12499.5, phone.Price)
	assert.Equal(t, lo.ToPtr(13999.0), phone.OldPrice)
	assert.Equal(t, "UAH", phone.Currency)
	assert.Equal(t, "Acme", phone.Manufacturer)
	assert.Equal(t, "Смартфони", phone.CategoryName, "should resolve category id to its name")
	assert.Equal(t, lo.ToPtr(5), phone.StockQuantity)
	assert.True(t, phone.Available)
	assert.True(t, phone.IsActive)
	assert.Equal(t, []models.ProductImage{
		{URL: "https://shop.example.ua/phone-x.jpg", IsMain: true},
	}, phone.Images)
	assert.Equal(t, []models.ProductAttribute{
		{Name: "external_id", Value: "1001"},
		{Name: "article", Value: "PX-1"},
		{Name: "name_ua", Value: "Телефон X"},
		{Name: "url", Value: "https://shop.example.ua/phone-x"},
		{Name: "Колір", Value: "Чорний", Language: lo.ToPtr("ua")},
	}, phone.Attributes, "should skip empty offer fields and keep characteristics order")

	box := products[1]
	assert.Empty(t, box.CategoryName, "unknown category reference should resolve to empty name")
	assert.Nil(t, box.Images, "offer without picture shouldn't produce images")
	assert.Equal(t, []models.ProductAttribute{
		{Name: "external_id", Value: "1002"},
		{Name: "url", Value: "https://shop.example.ua/case"},
	}, box.Attributes)
}

func TestUnitTemplateParametersFromStructure(t *testing.T) {
	parameters := []models.Parameter{
		{
			Name:     "shop_name",
			Value:    "MyShop",
			Path:     "/yml_catalog/shop/name",
			Kind:     models.KindParameter,
			Category: models.CategoryShop,
		},
		{
			Name:     "offer_price",
			Value:    "12 499,50",
			Path:     "/yml_catalog/shop/offers/offer/price",
			Kind:     models.KindParameter,
			Category: models.CategoryOffer,
		},
	}

	rows := parser.TemplateParametersFromStructure(parameters)

	require.Len(t, rows, 2)
	assert.Equal(t, models.TemplateParameter{
		Name:         "shop_name",
		Value:        "MyShop",
		Type:         models.ValueTypeText,
		Category:     models.CategoryShop,
		XMLPath:      "/yml_catalog/shop/name",
		IsActive:     true,
		DisplayOrder: 0,
	}, rows[0])
	assert.Equal(t, models.ValueTypeText, rows[1].Type, "price with thousands space isn't a bare number")
	assert.Equal(t, int32(1), rows[1].DisplayOrder, "display order should follow extraction order")
}

func TestUnitTemplateParametersValueTypes(t *testing.T) {
	testCases := map[string]struct {
		value    string
		wantType models.ValueType
	}{
		"true is boolean": {
			value:    "true",
			wantType: models.ValueTypeBoolean,
		},
		"False is boolean": {
			value:    "False",
			wantType: models.ValueTypeBoolean,
		},
		"integer is number": {
			value:    "42",
			wantType: models.ValueTypeNumber,
		},
		"decimal comma is number": {
			value:    "41,5",
			wantType: models.ValueTypeNumber,
		},
		"rfc3339 is date": {
			value:    "2024-05-01T10:00:00Z",
			wantType: models.ValueTypeDate,
		},
		"plain date is date": {
			value:    "2024-05-01",
			wantType: models.ValueTypeDate,
		},
		"dotted date is date": {
			value:    "01.05.2024",
			wantType: models.ValueTypeDate,
		},
		"word is text": {
			value:    "Чорний",
			wantType: models.ValueTypeText,
		},
		"empty is text": {
			value:    "",
			wantType: models.ValueTypeText,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			rows := parser.TemplateParametersFromStructure([]models.Parameter{
				{Name: "p", Value: testCase.value},
			})

			require.Len(t, rows, 1)
			assert.Equal(t, testCase.wantType, rows[0].Type)
		})
	}
}
