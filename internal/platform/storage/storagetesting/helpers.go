package storagetesting

import (
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/feedline/yml-feed-parser/internal/platform/models"
	pgmodels "github.com/feedline/yml-feed-parser/internal/platform/storage/gen/postgres/public/model"
	"github.com/feedline/yml-feed-parser/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertShops is a helper test function to insert shops.
func InsertShops(t *testing.T, exc qrm.Executable, shops ...pgmodels.Shop) {
	t.Helper()

	if len(shops) == 0 {
		return
	}

	_, err := table.Shop.INSERT(table.Shop.AllColumns).MODELS(shops).Exec(exc)
	if err != nil {
		t.Fatal("can't insert shops", err)
	}
}

// InsertRuns is a helper test function to insert runs.
func InsertRuns(t *testing.T, exc qrm.Executable, runs ...pgmodels.Run) {
	t.Helper()

	if len(runs) == 0 {
		return
	}

	_, err := table.Run.INSERT(table.Run.AllColumns).MODELS(runs).Exec(exc)
	if err != nil {
		t.Fatal("can't insert runs", err)
	}
}

// InsertProducts is a helper test function to insert products.
func InsertProducts(t *testing.T, exc qrm.Executable, products ...pgmodels.Product) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	_, err := table.Product.INSERT(table.Product.AllColumns.Except(table.Product.ID)).MODELS(products).Exec(exc)
	if err != nil {
		t.Fatal("can't insert products", err)
	}
}

// InsertTemplates is a helper test function to insert templates.
func InsertTemplates(t *testing.T, exc qrm.Executable, templates ...pgmodels.Template) {
	t.Helper()

	if len(templates) == 0 {
		return
	}

	_, err := table.Template.INSERT(table.Template.AllColumns).MODELS(templates).Exec(exc)
	if err != nil {
		t.Fatal("can't insert templates", err)
	}
}

// InsertTemplateParameters is a helper test function to insert template parameters.
func InsertTemplateParameters(t *testing.T, exc qrm.Executable, parameters ...pgmodels.TemplateParameter) {
	t.Helper()

	if len(parameters) == 0 {
		return
	}

	_, err := table.TemplateParameter.INSERT(table.TemplateParameter.AllColumns).MODELS(parameters).Exec(exc)
	if err != nil {
		t.Fatal("can't insert template parameters", err)
	}
}

// GetRuns is a helper test function to get all runs.
func GetRuns(t *testing.T, queryable qrm.Queryable) []pgmodels.Run {
	t.Helper()

	runs := []pgmodels.Run{}
	err := table.Run.SELECT(table.Run.AllColumns).
		WHERE(table.Run.ID.IS_NOT_NULL()).
		Query(queryable, &runs)
	if err != nil {
		t.Fatal("can't get runs", err)
	}

	return runs
}

// GetProducts is a helper test function to get all products.
func GetProducts(t *testing.T, queryable qrm.Queryable) []pgmodels.Product {
	t.Helper()

	products := []pgmodels.Product{}
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.ID.IS_NOT_NULL()).
		Query(queryable, &products)
	if err != nil {
		t.Fatal("can't get products", err)
	}

	return products
}

// GetProductImages is a helper test function to get all product images.
func GetProductImages(t *testing.T, queryable qrm.Queryable) []pgmodels.ProductImage {
	t.Helper()

	images := []pgmodels.ProductImage{}
	err := table.ProductImage.SELECT(table.ProductImage.AllColumns).
		WHERE(table.ProductImage.ID.IS_NOT_NULL()).
		Query(queryable, &images)
	if err != nil {
		t.Fatal("can't get product images", err)
	}

	return images
}

// GetProductAttributes is a helper test function to get all product attributes.
func GetProductAttributes(t *testing.T, queryable qrm.Queryable) []pgmodels.ProductAttribute {
	t.Helper()

	attributes := []pgmodels.ProductAttribute{}
	err := table.ProductAttribute.SELECT(table.ProductAttribute.AllColumns).
		WHERE(table.ProductAttribute.ID.IS_NOT_NULL()).
		Query(queryable, &attributes)
	if err != nil {
		t.Fatal("can't get product attributes", err)
	}

	return attributes
}

// GetCategories is a helper test function to get all categories.
func GetCategories(t *testing.T, queryable qrm.Queryable) []pgmodels.Category {
	t.Helper()

	categories := []pgmodels.Category{}
	err := table.Category.SELECT(table.Category.AllColumns).
		WHERE(table.Category.ID.IS_NOT_NULL()).
		Query(queryable, &categories)
	if err != nil {
		t.Fatal("can't get categories", err)
	}

	return categories
}

// GetCurrencies is a helper test function to get all currencies.
func GetCurrencies(t *testing.T, queryable qrm.Queryable) []pgmodels.Currency {
	t.Helper()

	currencies := []pgmodels.Currency{}
	err := table.Currency.SELECT(table.Currency.AllColumns).
		WHERE(table.Currency.ID.IS_NOT_NULL()).
		Query(queryable, &currencies)
	if err != nil {
		t.Fatal("can't get currencies", err)
	}

	return currencies
}

// GetShopID is a helper test function to get shop ID by feed URL.
func GetShopID(t *testing.T, queryable qrm.Queryable, feedURL string) int {
	t.Helper()

	var shop pgmodels.Shop
	err := table.Shop.SELECT(table.Shop.ID).
		WHERE(table.Shop.URL.EQ(pg.String(feedURL))).
		Query(queryable, &shop)

	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		t.Fatal("can't get shop ID", err)
	}

	return int(shop.ID)
}

// GetLatestRun is a helper test function to get latest run by shop ID.
func GetLatestRun(t *testing.T, queryable qrm.Queryable, shopID int) *models.Run {
	t.Helper()

	var runs []pgmodels.Run
	err := table.Run.SELECT(table.Run.AllColumns).
		WHERE(table.Run.ShopID.EQ(pg.Int32(int32(shopID)))).
		ORDER_BY(table.Run.CreatedAt.DESC()).
		LIMIT(1).
		Query(queryable, &runs)

	if err != nil || len(runs) == 0 {
		t.Fatal("can't get latest run", err)
	}

	return &models.Run{
		ID:              int(runs[0].ID),
		ShopID:          int(runs[0].ShopID),
		CreatedAt:       runs[0].CreatedAt,
		FinishedAt:      runs[0].FinishedAt,
		IsSuccess:       runs[0].Success,
		StatusMessage:   runs[0].StatusMessage,
		CreatedProducts: runs[0].CreatedProducts,
		UpdatedProducts: runs[0].UpdatedProducts,
		DeletedProducts: runs[0].DeletedProducts,
		FailedOffers:    runs[0].FailedOffers,
		ProductsVersion: runs[0].ProductsVersion,
	}
}

// GetProductsByShopID is a helper test function to get products by shop ID.
func GetProductsByShopID(t *testing.T, queryable qrm.Queryable, shopID int) []pgmodels.Product {
	t.Helper()

	products := []pgmodels.Product{}
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(pg.AND(
			table.Product.ID.IS_NOT_NULL(),
			table.Product.ShopID.EQ(pg.Int32(int32(shopID))),
		)).
		Query(queryable, &products)
	if err != nil {
		t.Fatal("can't get products", err)
	}

	return products
}

// GetImagesByProductID is a helper test function to get images of one product.
func GetImagesByProductID(t *testing.T, queryable qrm.Queryable, productID int) []pgmodels.ProductImage {
	t.Helper()

	images := []pgmodels.ProductImage{}
	err := table.ProductImage.SELECT(table.ProductImage.AllColumns).
		WHERE(table.ProductImage.ProductID.EQ(pg.Int32(int32(productID)))).
		Query(queryable, &images)
	if err != nil {
		t.Fatal("can't get product images", err)
	}

	return images
}

// GetAttributesByProductID is a helper test function to get attributes of one product.
func GetAttributesByProductID(t *testing.T, queryable qrm.Queryable, productID int) []pgmodels.ProductAttribute {
	t.Helper()

	attributes := []pgmodels.ProductAttribute{}
	err := table.ProductAttribute.SELECT(table.ProductAttribute.AllColumns).
		WHERE(table.ProductAttribute.ProductID.EQ(pg.Int32(int32(productID)))).
		Query(queryable, &attributes)
	if err != nil {
		t.Fatal("can't get product attributes", err)
	}

	return attributes
}

// GetTemplates is a helper test function to get templates of a shop.
func GetTemplates(t *testing.T, queryable qrm.Queryable, shopID int) []pgmodels.Template {
	t.Helper()

	templates := []pgmodels.Template{}
	err := table.Template.SELECT(table.Template.AllColumns).
		WHERE(table.Template.ShopID.EQ(pg.Int32(int32(shopID)))).
		Query(queryable, &templates)
	if err != nil {
		t.Fatal("can't get templates", err)
	}

	return templates
}

// GetTemplateParameters is a helper test function to get parameters of a template.
func GetTemplateParameters(t *testing.T, queryable qrm.Queryable, templateID int32) []pgmodels.TemplateParameter {
	t.Helper()

	parameters := []pgmodels.TemplateParameter{}
	err := table.TemplateParameter.SELECT(table.TemplateParameter.AllColumns).
		WHERE(table.TemplateParameter.TemplateID.EQ(pg.Int32(templateID))).
		ORDER_BY(table.TemplateParameter.DisplayOrder.ASC(), table.TemplateParameter.ID.ASC()).
		Query(queryable, &parameters)
	if err != nil {
		t.Fatal("can't get template parameters", err)
	}

	return parameters
}

// CleanupData is a helper test function to delete all data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	deletes := []struct {
		name string
		stmt pg.DeleteStatement
	}{
		{"template parameters", table.TemplateParameter.DELETE().WHERE(table.TemplateParameter.ID.IS_NOT_NULL())},
		{"templates", table.Template.DELETE().WHERE(table.Template.ID.IS_NOT_NULL())},
		{"product attributes", table.ProductAttribute.DELETE().WHERE(table.ProductAttribute.ID.IS_NOT_NULL())},
		{"product images", table.ProductImage.DELETE().WHERE(table.ProductImage.ID.IS_NOT_NULL())},
		{"products", table.Product.DELETE().WHERE(table.Product.ID.IS_NOT_NULL())},
		{"categories", table.Category.DELETE().WHERE(table.Category.ID.IS_NOT_NULL())},
		{"currencies", table.Currency.DELETE().WHERE(table.Currency.ID.IS_NOT_NULL())},
		{"runs", table.Run.DELETE().WHERE(table.Run.ID.IS_NOT_NULL())},
		{"shops", table.Shop.DELETE().WHERE(table.Shop.ID.IS_NOT_NULL())},
	}

	for _, del := range deletes {
		if _, err := del.stmt.Exec(exc); err != nil {
			t.Fatalf("can't delete %s data: %s", del.name, err)
		}
	}
}
