package parser_test

import (
	"context"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/feedline/yml-feed-parser/internal/normalizer"
	"github.com/feedline/yml-feed-parser/internal/parser"
	"github.com/feedline/yml-feed-parser/internal/parser/mocks"
	"github.com/feedline/yml-feed-parser/internal/platform/models"
	"github.com/feedline/yml-feed-parser/internal/platform/models/modelstesting"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reusable test data
var (
	batchSize  = uint(2) // will affect tests results when changed
	xmlFeedURL = "https://shop.example.ua/feed.xml"
	csvFeedURL = "https://shop.example.ua/export.csv"
	version    = rand.Int63()
	loc        = func() *time.Location {
		loc, err := time.LoadLocation("Etc/UTC")
		if err != nil {
			panic(err)
		}
		return loc
	}()
	createdAt = time.Date(2024, time.April, 1, 1, 1, 1, 0, loc)
	now       = time.Date(2024, time.May, 1, 1, 1, 1, 0, loc)
	runID     = rand.Int()
	shopID    = rand.Int()

	errShouldContainAssertErrorMsg = "should return error containing assert.AnError"
)

func feedStructure() *models.ParsedStructure {
	return &models.ParsedStructure{
		Shop: &models.ShopInfo{Name: "MyShop", URL: "https://shop.example.ua"},
		Currencies: []models.Currency{
			{ID: "UAH", Rate: 1},
		},
		Categories: []models.Category{
			{ID: "10", Name: "Смартфони"},
		},
		Offers: []models.Offer{
			modelstesting.FakeOffer(func(o *models.Offer) { o.CategoryID = "10" }),
			modelstesting.FakeOffer(func(o *models.Offer) { o.CategoryID = "10" }),
			modelstesting.FakeOffer(func(o *models.Offer) { o.CategoryID = "10" }),
		},
		Parameters: []models.Parameter{
			{
				Name:     "shop_name",
				Value:    "MyShop",
				Path:     "/yml_catalog/shop/name",
				Kind:     models.KindParameter,
				Category: models.CategoryShop,
			},
		},
		Issues: []models.ItemError{
			{Index: 3, Err: assert.AnError},
		},
	}
}

func TestUnitParse(t *testing.T) {
	structure := feedStructure()

	products := parser.ProductsFromStructure(structure)
	lo.ForEach(products, func(_ models.Product, ix int) { products[ix].Version = version })
	categories := normalizer.CategoriesFromOffers(structure.Categories, structure.Offers)
	templateParameters := parser.TemplateParametersFromStructure(structure.Parameters)
	templateID := rand.Int31()

	run := &models.Run{
		ID:              runID,
		ShopID:          shopID,
		CreatedAt:       createdAt,
		ProductsVersion: version,
	}

	wantDeletedProducts := rand.Int31()
	wantRun := &models.Run{
		ID:              runID,
		ShopID:          shopID,
		CreatedAt:       createdAt,
		FinishedAt:      &now,
		IsSuccess:       lo.ToPtr(true),
		CreatedProducts: lo.ToPtr(int32(2)),
		UpdatedProducts: lo.ToPtr(int32(1)),
		DeletedProducts: lo.ToPtr(wantDeletedProducts),
		FailedOffers:    lo.ToPtr(int32(1)),
		ProductsVersion: version,
	}

	fetcher := mocks.NewFetcher(t)
	extractor := mocks.NewExtractor(t)
	csv := mocks.NewCSVParser(t)
	storage := mocks.NewStorage(t)

	mockStorageStartRun(storage, xmlFeedURL, run, nil)
	mockFetcher(fetcher, xmlFeedURL, nil)
	mockExtractor(extractor, structure, nil)
	storage.On("UpsertCurrencies", mock.Anything, structure.Currencies, shopID).Return(nil)
	storage.On("UpsertCategories", mock.Anything, categories, shopID).Return(nil)
	// batches of 2: first batch 1 created + 1 updated, last 1 created
	mockStorageUpsertProducts(storage, products[:2], shopID, 1, 1, nil)
	mockStorageUpsertProducts(storage, products[2:], shopID, 1, 0, nil)
	storage.On("EnsureTemplate", mock.Anything, shopID, "feed").Return(templateID, nil)
	storage.On("ReplaceTemplateParameters", mock.Anything, templateID, templateParameters).Return(nil)
	mockStorageDeleteOldProducts(storage, shopID, version, batchSize, wantDeletedProducts, nil)
	mockStorageFinishRun(storage, wantRun, nil)

	par := parser.NewParser(
		fetcher,
		extractor,
		csv,
		storage,
		batchSize,
		parser.WithClock(fakeClock{timestamp: version, now: &now}),
	)

	err := par.Parse(context.TODO(), xmlFeedURL)

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitParseCSV(t *testing.T) {
	result := &models.CSVResult{
		Products: []models.Product{
			modelstesting.FakeProduct(),
		},
		Categories: []models.ProductCategory{
			{Name: "Смартфони", ProductCount: 1},
		},
	}

	products := make([]models.Product, len(result.Products))
	copy(products, result.Products)
	lo.ForEach(products, func(_ models.Product, ix int) { products[ix].Version = version })

	run := &models.Run{
		ID:              runID,
		ShopID:          shopID,
		CreatedAt:       createdAt,
		ProductsVersion: version,
	}

	wantRun := &models.Run{
		ID:              runID,
		ShopID:          shopID,
		CreatedAt:       createdAt,
		FinishedAt:      &now,
		IsSuccess:       lo.ToPtr(true),
		CreatedProducts: lo.ToPtr(int32(1)),
		UpdatedProducts: lo.ToPtr(int32(0)),
		DeletedProducts: lo.ToPtr(int32(0)),
		FailedOffers:    lo.ToPtr(int32(0)),
		ProductsVersion: version,
	}

	fetcher := mocks.NewFetcher(t)
	extractor := mocks.NewExtractor(t)
	csv := mocks.NewCSVParser(t)
	storage := mocks.NewStorage(t)

	mockStorageStartRun(storage, csvFeedURL, run, nil)
	mockFetcher(fetcher, csvFeedURL, nil)
	csv.On("Parse", mock.Anything).Return(result, nil)
	storage.On("UpsertCurrencies", mock.Anything, []models.Currency{}, shopID).Return(nil)
	storage.On("UpsertCategories", mock.Anything, result.Categories, shopID).Return(nil)
	mockStorageUpsertProducts(storage, products, shopID, 1, 0, nil)
	mockStorageDeleteOldProducts(storage, shopID, version, batchSize, 0, nil)
	mockStorageFinishRun(storage, wantRun, nil)

	par := parser.NewParser(
		fetcher,
		extractor,
		csv,
		storage,
		batchSize,
		parser.WithClock(fakeClock{timestamp: version, now: &now}),
	)

	err := par.Parse(context.TODO(), csvFeedURL)

	require.NoError(t, err, "shouldn't return any error")
	extractor.AssertNotCalled(t, "ExtractStructure", mock.Anything)
}

func TestUnitParseStartRunError(t *testing.T) {
	fetcher := mocks.NewFetcher(t)
	extractor := mocks.NewExtractor(t)
	csv := mocks.NewCSVParser(t)
	storage := mocks.NewStorage(t)

	mockStorageStartRun(storage, xmlFeedURL, nil, assert.AnError)

	par := parser.NewParser(
		fetcher,
		extractor,
		csv,
		storage,
		batchSize,
		parser.WithClock(fakeClock{timestamp: version, now: &now}),
	)

	err := par.Parse(context.TODO(), xmlFeedURL)

	require.ErrorContains(t, err, "can't start parsing", "should return error about failed parsing start")
	require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
}

func TestUnitParseFetcherError(t *testing.T) {
	run := &models.Run{
		ID:              runID,
		ShopID:          shopID,
		CreatedAt:       createdAt,
		ProductsVersion: version,
	}

	wantRun := &models.Run{
		ID:              runID,
		ShopID:          shopID,
		CreatedAt:       createdAt,
		FinishedAt:      &now,
		IsSuccess:       lo.ToPtr(false),
		StatusMessage:   lo.ToPtr("can't fetch feed file: assert.AnError general error for testing"),
		ProductsVersion: version,
	}

	fetcher := mocks.NewFetcher(t)
	extractor := mocks.NewExtractor(t)
	csv := mocks.NewCSVParser(t)
	storage := mocks.NewStorage(t)

	mockStorageStartRun(storage, xmlFeedURL, run, nil)
	mockFetcher(fetcher, xmlFeedURL, assert.AnError)
	mockStorageFinishRun(storage, wantRun, nil)

	par := parser.NewParser(
		fetcher,
		extractor,
		csv,
		storage,
		batchSize,
		parser.WithClock(fakeClock{timestamp: version, now: &now}),
	)

	err := par.Parse(context.TODO(), xmlFeedURL)

	require.ErrorContains(t, err, "can't fetch feed file", "should return error about failed fetching")
	require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
}

func TestUnitParseExtractorError(t *testing.T) {
	run := &models.Run{
		ID:              runID,
		ShopID:          shopID,
		CreatedAt:       createdAt,
		ProductsVersion: version,
	}

	wantRun := &models.Run{
		ID:              runID,
		ShopID:          shopID,
		CreatedAt:       createdAt,
		FinishedAt:      &now,
		IsSuccess:       lo.ToPtr(false),
		StatusMessage:   lo.ToPtr("can't extract feed structure: assert.AnError general error for testing"),
		ProductsVersion: version,
	}

	fetcher := mocks.NewFetcher(t)
	extractor := mocks.NewExtractor(t)
	csv := mocks.NewCSVParser(t)
	storage := mocks.NewStorage(t)

	mockStorageStartRun(storage, xmlFeedURL, run, nil)
	mockFetcher(fetcher, xmlFeedURL, nil)
	mockExtractor(extractor, nil, assert.AnError)
	mockStorageFinishRun(storage, wantRun, nil)

	par := parser.NewParser(
		fetcher,
		extractor,
		csv,
		storage,
		batchSize,
		parser.WithClock(fakeClock{timestamp: version, now: &now}),
	)

	err := par.Parse(context.TODO(), xmlFeedURL)

	require.ErrorContains(t, err, "can't extract feed structure", "should return error about failed extraction")
	require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
}

func TestUnitParseUpsertProductsError(t *testing.T) {
	structure := feedStructure()

	products := parser.ProductsFromStructure(structure)
	lo.ForEach(products, func(_ models.Product, ix int) { products[ix].Version = version })
	categories := normalizer.CategoriesFromOffers(structure.Categories, structure.Offers)

	run := &models.Run{
		ID:              runID,
		ShopID:          shopID,
		CreatedAt:       createdAt,
		ProductsVersion: version,
	}

	wantRun := &models.Run{
		ID:              runID,
		ShopID:          shopID,
		CreatedAt:       createdAt,
		FinishedAt:      &now,
		IsSuccess:       lo.ToPtr(false),
		StatusMessage:   lo.ToPtr("can't save products: assert.AnError general error for testing"),
		CreatedProducts: lo.ToPtr(int32(1)),
		UpdatedProducts: lo.ToPtr(int32(1)),
		FailedOffers:    lo.ToPtr(int32(1)),
		ProductsVersion: version,
	}

	fetcher := mocks.NewFetcher(t)
	extractor := mocks.NewExtractor(t)
	csv := mocks.NewCSVParser(t)
	storage := mocks.NewStorage(t)

	mockStorageStartRun(storage, xmlFeedURL, run, nil)
	mockFetcher(fetcher, xmlFeedURL, nil)
	mockExtractor(extractor, structure, nil)
	storage.On("UpsertCurrencies", mock.Anything, structure.Currencies, shopID).Return(nil)
	storage.On("UpsertCategories", mock.Anything, categories, shopID).Return(nil)
	mockStorageUpsertProducts(storage, products[:2], shopID, 1, 1, nil)
	mockStorageUpsertProducts(storage, products[2:], shopID, 0, 0, assert.AnError)
	mockStorageFinishRun(storage, wantRun, nil)

	par := parser.NewParser(
		fetcher,
		extractor,
		csv,
		storage,
		batchSize,
		parser.WithClock(fakeClock{timestamp: version, now: &now}),
	)

	err := par.Parse(context.TODO(), xmlFeedURL)

	require.ErrorContains(t, err, "can't save products", "should return error about failed products saving")
	require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
}

func TestUnitParseFinishRunError(t *testing.T) {
	run := &models.Run{
		ID:              runID,
		ShopID:          shopID,
		CreatedAt:       createdAt,
		ProductsVersion: version,
	}

	wantRun := &models.Run{
		ID:              runID,
		ShopID:          shopID,
		CreatedAt:       createdAt,
		FinishedAt:      &now,
		IsSuccess:       lo.ToPtr(false),
		StatusMessage:   lo.ToPtr("can't fetch feed file: assert.AnError general error for testing"),
		ProductsVersion: version,
	}

	fetcher := mocks.NewFetcher(t)
	extractor := mocks.NewExtractor(t)
	csv := mocks.NewCSVParser(t)
	storage := mocks.NewStorage(t)

	mockStorageStartRun(storage, xmlFeedURL, run, nil)
	mockFetcher(fetcher, xmlFeedURL, assert.AnError)
	mockStorageFinishRun(storage, wantRun, assert.AnError)

	par := parser.NewParser(
		fetcher,
		extractor,
		csv,
		storage,
		batchSize,
		parser.WithClock(fakeClock{timestamp: version, now: &now}),
	)

	err := par.Parse(context.TODO(), xmlFeedURL)

	require.ErrorContains(t, err, "can't finish failed parsing", "should return error about failed run finishing")
	require.ErrorContains(t, err, "can't fetch feed file", "should return error about failed fetching")
	require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
}

func mockStorageStartRun(storage *mocks.Storage, feedURL string, run *models.Run, err error) {
	storage.On("StartRun", mock.Anything, feedURL, mock.AnythingOfType("int64")).Return(run, err)
}

func mockStorageFinishRun(storage *mocks.Storage, run *models.Run, err error) {
	storage.On("FinishRun", mock.Anything, run).Return(err)
}

func mockStorageUpsertProducts(
	storage *mocks.Storage,
	products []models.Product,
	shopID int,
	newProducts int32,
	updatedProducts int32,
	err error,
) {
	storage.On("UpsertProducts", mock.Anything, products, shopID).Return(newProducts, updatedProducts, err)
}

func mockStorageDeleteOldProducts(
	storage *mocks.Storage,
	shopID int,
	version int64,
	batchSize uint,
	deletedProducts int32,
	err error,
) {
	storage.On("DeleteOldProducts", mock.Anything, shopID, version, batchSize).Return(deletedProducts, err)
}

func mockExtractor(extractor *mocks.Extractor, structure *models.ParsedStructure, err error) {
	extractor.On("ExtractStructure", mock.Anything).Return(structure, err)
}

func mockFetcher(fetcher *mocks.Fetcher, feedURL string, err error) {
	var reader io.ReadCloser
	if err == nil {
		reader = io.NopCloser(strings.NewReader(""))
	}
	fetcher.On("FetchFeed", mock.Anything, feedURL).Return(reader, err)
}

type fakeClock struct {
	timestamp int64
	now       *time.Time
}

func (c fakeClock) Timestamp() int64 {
	return c.timestamp
}

func (c fakeClock) Now() *time.Time {
	return c.now
}
