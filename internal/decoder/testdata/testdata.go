// Package testdata holds the expected extraction result of feed.xml.
package testdata

import (
	"github.com/feedline/yml-feed-parser/internal/platform/models"
	"github.com/samber/lo"
)

// Shop is the expected shop header of feed.xml.
var Shop = &models.ShopInfo{
	Name:    "MyShop",
	Company: "MyShop LLC",
	URL:     "https://myshop.ua",
}

// Currencies are the expected currencies of feed.xml, the duplicate UAH
// entry is dropped.
var Currencies = []models.Currency{
	{ID: "UAH", Rate: 1},
	{ID: "USD", Rate: 41.5},
}

// Categories are the expected categories of feed.xml.
var Categories = []models.Category{
	{ID: "10", Name: "Смартфони"},
	{ID: "11", Name: "Аксесуари", ParentID: lo.ToPtr("10")},
}

// Offers are the expected offers of feed.xml.
var Offers = []models.Offer{
	{
		ID:            "1001",
		Available:     true,
		Name:          "Phone X",
		NameUA:        lo.ToPtr("Телефон X"),
		Article:       lo.ToPtr("PX-1"),
		Vendor:        lo.ToPtr("Acme"),
		Description:   lo.ToPtr("Good phone"),
		Price:         12499.50,
		OldPrice:      lo.ToPtr(13999.0),
		CurrencyID:    "UAH",
		CategoryID:    "10",
		URL:           "https://myshop.ua/p/1001",
		Picture:       "https://myshop.ua/i/1001.jpg",
		StockQuantity: lo.ToPtr(5),
		Characteristics: []models.Characteristic{
			{Name: "Колір", Value: "Сірий", Language: lo.ToPtr("ua")},
			{Name: "Color", Value: "Black", Language: lo.ToPtr("en")},
		},
	},
	{
		ID:         "1002",
		Available:  false,
		Name:       "Case",
		Price:      199,
		CurrencyID: "UAH",
		CategoryID: "11",
		URL:        "https://myshop.ua/p/1002",
		Picture:    "https://myshop.ua/i/1002.jpg",
		Characteristics: []models.Characteristic{
			{Name: "Колір", Value: "Червоний"},
		},
	},
}

// Parameters is the expected flat parameter list of feed.xml with default
// first-element sampling.
var Parameters = []models.Parameter{
	{Name: "shop_name", Value: "MyShop", Path: "/yml_catalog/shop/name", Kind: models.KindParameter, Category: models.CategoryShop},
	{Name: "shop_company", Value: "MyShop LLC", Path: "/yml_catalog/shop/company", Kind: models.KindParameter, Category: models.CategoryShop},
	{Name: "shop_url", Value: "https://myshop.ua", Path: "/yml_catalog/shop/url", Kind: models.KindParameter, Category: models.CategoryShop},
	{Name: "currency_id", Value: "UAH", Path: "/yml_catalog/shop/currencies/currency/@id", Kind: models.KindParameter, Category: models.CategoryCurrency},
	{Name: "currency_rate", Value: "1", Path: "/yml_catalog/shop/currencies/currency/@rate", Kind: models.KindParameter, Category: models.CategoryCurrency},
	{Name: "category_id", Value: "10", Path: "/yml_catalog/shop/categories/category/@id", Kind: models.KindParameter, Category: models.CategoryCategory},
	{Name: "category_name", Value: "Смартфони", Path: "/yml_catalog/shop/categories/category", Kind: models.KindParameter, Category: models.CategoryCategory},
	{Name: "offer_price", Value: "12 499,50", Path: "/yml_catalog/shop/offers/offer/price", Kind: models.KindParameter, Category: models.CategoryOffer},
	{Name: "offer_price_old", Value: "13999", Path: "/yml_catalog/shop/offers/offer/price_old", Kind: models.KindParameter, Category: models.CategoryOffer},
	{Name: "offer_currencyId", Value: "UAH", Path: "/yml_catalog/shop/offers/offer/currencyId", Kind: models.KindParameter, Category: models.CategoryOffer},
	{Name: "offer_categoryId", Value: "10", Path: "/yml_catalog/shop/offers/offer/categoryId", Kind: models.KindParameter, Category: models.CategoryOffer},
	{Name: "offer_picture", Value: "https://myshop.ua/i/1001.jpg", Path: "/yml_catalog/shop/offers/offer/picture", Kind: models.KindParameter, Category: models.CategoryOffer},
	{Name: "offer_vendor", Value: "Acme", Path: "/yml_catalog/shop/offers/offer/vendor", Kind: models.KindParameter, Category: models.CategoryOffer},
	{Name: "offer_name", Value: "Phone X", Path: "/yml_catalog/shop/offers/offer/name", Kind: models.KindParameter, Category: models.CategoryOffer},
	{Name: "offer_description", Value: "Good phone", Path: "/yml_catalog/shop/offers/offer/description", Kind: models.KindParameter, Category: models.CategoryOffer},
	{Name: "offer_stock_quantity", Value: "5", Path: "/yml_catalog/shop/offers/offer/stock_quantity", Kind: models.KindParameter, Category: models.CategoryOffer},
	{Name: "offer_url", Value: "https://myshop.ua/p/1001", Path: "/yml_catalog/shop/offers/offer/url", Kind: models.KindParameter, Category: models.CategoryOffer},
	{Name: "offer_param_name", Value: "Колір", Path: "/yml_catalog/shop/offers/offer/param/@name", Kind: models.KindCharacteristic, Category: models.CategoryOffer},
	{Name: "offer_param_value", Value: "Чорний", Path: "/yml_catalog/shop/offers/offer/param", Kind: models.KindCharacteristic, Category: models.CategoryOffer},
	{Name: "offer_id", Value: "1001", Path: "/yml_catalog/shop/offers/offer/@id", Kind: models.KindParameter, Category: models.CategoryOffer},
	{Name: "offer_available", Value: "true", Path: "/yml_catalog/shop/offers/offer/@available", Kind: models.KindParameter, Category: models.CategoryOffer},
}
