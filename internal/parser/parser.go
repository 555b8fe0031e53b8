package parser

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/feedline/yml-feed-parser/internal/fetcher"
	"github.com/feedline/yml-feed-parser/internal/normalizer"
	"github.com/feedline/yml-feed-parser/internal/platform/models"
	"github.com/samber/lo"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Extractor --filename extractor.go
//go:generate mockery --name CSVParser --filename csv_parser.go
//go:generate mockery --name Storage --filename storage.go

// defaultTemplateName is the shop template holding parameters sampled from
// the latest parsed feed.
const defaultTemplateName = "feed"

// Fetcher fetches feed files.
type Fetcher interface {
	FetchFeed(context.Context, string) (io.ReadCloser, error)
}

// Extractor extracts catalog structure from xml feed files.
type Extractor interface {
	ExtractStructure(io.Reader) (*models.ParsedStructure, error)
}

// CSVParser parses delimiter-based supplier files.
type CSVParser interface {
	Parse(io.Reader) (*models.CSVResult, error)
}

// Clock provides times.
type Clock interface {
	// Timestamp returns UTC unix timestamp.
	Timestamp() int64
	// Now returns current UTC time.
	Now() *time.Time
}

// Storage is catalog and runs storage.
type Storage interface {
	// StartRun creates new run if there is no run for provided shop running.
	StartRun(ctx context.Context, shopURL string, version int64) (run *models.Run, err error)
	// FinishRun finishes provided run and updates its statistics.
	FinishRun(ctx context.Context, run *models.Run) error
	// UpsertProducts creates new products and updates existing products with their
	// images and attributes. Returns number of created and updated products.
	UpsertProducts(ctx context.Context, products []models.Product, shopID int) (int32, int32, error)
	// DeleteOldProducts deletes all not-deleted products with version lower
	// than provided for provided shop. Returns number of deleted products.
	DeleteOldProducts(ctx context.Context, shopID int, version int64, batchSize uint) (int32, error)
	// UpsertCategories upserts feed categories keyed by name within a shop.
	UpsertCategories(ctx context.Context, categories []models.ProductCategory, shopID int) error
	// UpsertCurrencies upserts feed currencies keyed by code within a shop.
	UpsertCurrencies(ctx context.Context, currencies []models.Currency, shopID int) error
	// EnsureTemplate returns id of the shop's named template, creating it when absent.
	EnsureTemplate(ctx context.Context, shopID int, name string) (int32, error)
	// ReplaceTemplateParameters replaces all parameters of a template.
	ReplaceTemplateParameters(ctx context.Context, templateID int32, parameters []models.TemplateParameter) error
}

// Option is custom configuration of Parser.
type Option func(p *Parser)

// Parser fetches, extracts and persists catalog feeds.
type Parser struct {
	fetcher   Fetcher
	extractor Extractor
	csv       CSVParser
	storage   Storage
	batchSize uint
	clock     Clock
}

// NewParser returns new Parser.
func NewParser(
	fetcher Fetcher,
	extractor Extractor,
	csv CSVParser,
	storage Storage,
	batchSize uint,
	ops ...Option,
) *Parser {
	par := &Parser{
		fetcher:   fetcher,
		extractor: extractor,
		csv:       csv,
		storage:   storage,
		batchSize: batchSize,
		clock:     systemClock{},
	}

	for _, op := range ops {
		op(par)
	}

	return par
}

// Parse fetches the feed at feedURL, extracts its catalog and persists it.
// The file format is chosen by the url suffix, xml and csv feeds land in the
// same product tables. Products missing from the feed since the previous
// successful run are soft-deleted.
func (p Parser) Parse(ctx context.Context, feedURL string) error {
	version := p.clock.Timestamp()

	run, err := p.storage.StartRun(ctx, feedURL, version)
	if err != nil {
		return fmt.Errorf("can't start parsing: %w", err)
	}

	file, err := p.fetcher.FetchFeed(ctx, feedURL)
	if err != nil {
		return p.finishParsing(ctx, run, fmt.Errorf("can't fetch feed file: %w", err))
	}
	defer file.Close()

	var catalog ingestion
	switch fetcher.DetectFileType(feedURL) {
	case fetcher.FileTypeCSV:
		catalog, err = p.ingestCSV(file)
	default:
		catalog, err = p.ingestXML(file)
	}
	if err != nil {
		return p.finishParsing(ctx, run, err)
	}

	run.FailedOffers = lo.ToPtr(int32(len(catalog.report.Failed)))

	if err := p.storage.UpsertCurrencies(ctx, catalog.currencies, run.ShopID); err != nil {
		return p.finishParsing(ctx, run, fmt.Errorf("can't save currencies: %w", err))
	}
	if err := p.storage.UpsertCategories(ctx, catalog.categories, run.ShopID); err != nil {
		return p.finishParsing(ctx, run, fmt.Errorf("can't save categories: %w", err))
	}

	createdProducts, updatedProducts, err := p.saveProducts(ctx, run.ShopID, version, catalog.products)
	run.CreatedProducts = &createdProducts
	run.UpdatedProducts = &updatedProducts
	if err != nil {
		return p.finishParsing(ctx, run, fmt.Errorf("can't save products: %w", err))
	}

	if err := p.saveTemplateParameters(ctx, run.ShopID, catalog.parameters); err != nil {
		return p.finishParsing(ctx, run, fmt.Errorf("can't save template parameters: %w", err))
	}

	deletedProducts, err := p.storage.DeleteOldProducts(ctx, run.ShopID, version, p.batchSize)
	run.DeletedProducts = &deletedProducts
	if err != nil {
		return p.finishParsing(ctx, run, fmt.Errorf("can't delete outdated products: %w", err))
	}

	return p.finishParsing(ctx, run, nil)
}

// ingestion is format-independent catalog content ready for persistence.
type ingestion struct {
	products   []models.Product
	categories []models.ProductCategory
	currencies []models.Currency
	parameters []models.TemplateParameter
	report     models.ImportReport
}

func (p Parser) ingestXML(file io.Reader) (ingestion, error) {
	structure, err := p.extractor.ExtractStructure(file)
	if err != nil {
		return ingestion{}, fmt.Errorf("can't extract feed structure: %w", err)
	}

	return ingestion{
		products:   ProductsFromStructure(structure),
		categories: normalizer.CategoriesFromOffers(structure.Categories, structure.Offers),
		currencies: structure.Currencies,
		parameters: TemplateParametersFromStructure(structure.Parameters),
		report: models.ImportReport{
			Succeeded: len(structure.Offers),
			Failed:    structure.Issues,
		},
	}, nil
}

func (p Parser) ingestCSV(file io.Reader) (ingestion, error) {
	result, err := p.csv.Parse(file)
	if err != nil {
		return ingestion{}, fmt.Errorf("can't parse csv file: %w", err)
	}

	return ingestion{
		products:   result.Products,
		categories: result.Categories,
		currencies: []models.Currency{},
		parameters: []models.TemplateParameter{},
		report:     models.ImportReport{Succeeded: len(result.Products)},
	}, nil
}

func (p Parser) saveProducts(
	ctx context.Context,
	shopID int,
	version int64,
	products []models.Product,
) (int32, int32, error) {
	createdProducts := int32(0)
	updatedProducts := int32(0)

	for _, batch := range lo.Chunk(products, int(p.batchSize)) {
		lo.ForEach(batch, func(_ models.Product, ix int) { batch[ix].Version = version })

		created, updated, err := p.storage.UpsertProducts(ctx, batch, shopID)
		if err != nil {
			return createdProducts, updatedProducts, err
		}
		createdProducts += created
		updatedProducts += updated
	}

	return createdProducts, updatedProducts, nil
}

func (p Parser) saveTemplateParameters(
	ctx context.Context,
	shopID int,
	parameters []models.TemplateParameter,
) error {
	if len(parameters) == 0 {
		return nil
	}

	templateID, err := p.storage.EnsureTemplate(ctx, shopID, defaultTemplateName)
	if err != nil {
		return err
	}

	return p.storage.ReplaceTemplateParameters(ctx, templateID, parameters)
}

func (p Parser) finishParsing(ctx context.Context, run *models.Run, status error) error {
	if status != nil {
		run.StatusMessage = lo.ToPtr(status.Error())
	}
	run.IsSuccess = lo.ToPtr(status == nil)
	run.FinishedAt = p.clock.Now()

	err := p.storage.FinishRun(ctx, run)
	if err != nil && status == nil {
		return fmt.Errorf("can't finish parsing: %w", err)
	}

	if err != nil && status != nil {
		return fmt.Errorf("can't finish failed parsing: %w (fail reason: %w)", err, status)
	}

	return status
}

// WithClock sets Parser's custom Clock.
func WithClock(c Clock) Option {
	return func(p *Parser) {
		p.clock = c
	}
}
