package storage

import (
	"github.com/feedline/yml-feed-parser/internal/platform/models"
	"github.com/samber/lo"

	pgmodels "github.com/feedline/yml-feed-parser/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toDBRun(run *models.Run) *pgmodels.Run {
	return &pgmodels.Run{
		ProductsVersion: run.ProductsVersion,
		ShopID:          int32(run.ShopID),
		FinishedAt:      run.FinishedAt,
		Success:         run.IsSuccess,
		StatusMessage:   run.StatusMessage,
		CreatedProducts: run.CreatedProducts,
		UpdatedProducts: run.UpdatedProducts,
		DeletedProducts: run.DeletedProducts,
		FailedOffers:    run.FailedOffers,
	}
}

// ToDBProduct converts models.Product into postgres product model.
func ToDBProduct(product *models.Product, shopID int64, id *int32) *pgmodels.Product {
	dbProduct := pgmodels.Product{
		ShopID:        int32(shopID),
		Version:       product.Version,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		OldPrice:      product.OldPrice,
		SalePrice:     product.SalePrice,
		Currency:      product.Currency,
		Manufacturer:  product.Manufacturer,
		CategoryName:  product.CategoryName,
		StockQuantity: toInt32Ptr(product.StockQuantity),
		Available:     product.Available,
		IsActive:      product.IsActive,
		DeletedAt:     product.DeletedAt,
	}

	if id != nil {
		dbProduct.ID = *id
	}

	return &dbProduct
}

// ToDBImages converts models.ProductImage slice into postgres image slice.
func ToDBImages(productID int32, images []models.ProductImage) []pgmodels.ProductImage {
	if len(images) == 0 {
		return []pgmodels.ProductImage{}
	}

	dbImages := make([]pgmodels.ProductImage, 0, len(images))
	for ix := range images {
		dbImages = append(dbImages, pgmodels.ProductImage{
			ProductID: productID,
			URL:       images[ix].URL,
			IsMain:    images[ix].IsMain,
		})
	}
	return dbImages
}

// ToDBAttributes converts models.ProductAttribute slice into postgres attribute slice.
func ToDBAttributes(productID int32, attributes []models.ProductAttribute) []pgmodels.ProductAttribute {
	if len(attributes) == 0 {
		return []pgmodels.ProductAttribute{}
	}

	dbAttributes := make([]pgmodels.ProductAttribute, 0, len(attributes))
	for ix := range attributes {
		dbAttributes = append(dbAttributes, pgmodels.ProductAttribute{
			ProductID: productID,
			Name:      attributes[ix].Name,
			Value:     attributes[ix].Value,
			Language:  attributes[ix].Language,
		})
	}
	return dbAttributes
}

// ToDBCategory converts models.ProductCategory into postgres category model.
func ToDBCategory(shopID int32, category models.ProductCategory) pgmodels.Category {
	return pgmodels.Category{
		ShopID:           shopID,
		ExternalID:       category.ExternalID,
		ParentExternalID: category.ParentID,
		Name:             category.Name,
		ProductCount:     int32(category.ProductCount),
	}
}

// ToDBCurrency converts models.Currency into postgres currency model.
func ToDBCurrency(shopID int32, currency models.Currency) pgmodels.Currency {
	return pgmodels.Currency{
		ShopID: shopID,
		Code:   currency.ID,
		Rate:   currency.Rate,
	}
}

// ToDBTemplateParameter converts models.TemplateParameter into postgres model.
func ToDBTemplateParameter(templateID int32, parameter models.TemplateParameter) pgmodels.TemplateParameter {
	return pgmodels.TemplateParameter{
		TemplateID:   templateID,
		Name:         parameter.Name,
		Value:        parameter.Value,
		ValueType:    string(parameter.Type),
		Category:     string(parameter.Category),
		XMLPath:      parameter.XMLPath,
		ParentID:     parameter.ParentID,
		ParentName:   parameter.ParentName,
		IsActive:     parameter.IsActive,
		IsRequired:   parameter.IsRequired,
		DisplayOrder: parameter.DisplayOrder,
	}
}

// FromDBTemplateParameter converts postgres model into models.TemplateParameter.
func FromDBTemplateParameter(row pgmodels.TemplateParameter) models.TemplateParameter {
	return models.TemplateParameter{
		ID:           row.ID,
		TemplateID:   row.TemplateID,
		Name:         row.Name,
		Value:        row.Value,
		Type:         models.ValueType(row.ValueType),
		Category:     models.ParameterCategory(row.Category),
		XMLPath:      row.XMLPath,
		ParentID:     row.ParentID,
		ParentName:   row.ParentName,
		IsActive:     row.IsActive,
		IsRequired:   row.IsRequired,
		DisplayOrder: row.DisplayOrder,
	}
}

func toInt32Ptr(value *int) *int32 {
	if value == nil {
		return nil
	}
	return lo.ToPtr(int32(*value))
}
