package storage

import (
	"context"
	"fmt"

	"github.com/feedline/yml-feed-parser/internal/platform/models"
	"github.com/feedline/yml-feed-parser/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/feedline/yml-feed-parser/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
)

// UpsertCategories upserts feed categories keyed by name within a shop.
// Product counts and parent references are overwritten with parsed values.
func (p Postgres) UpsertCategories(ctx context.Context, categories []models.ProductCategory, shopID int) error {
	if len(categories) == 0 {
		return nil
	}

	dbCategories := make([]pgmodels.Category, 0, len(categories))
	for ix := range categories {
		dbCategories = append(dbCategories, ToDBCategory(int32(shopID), categories[ix]))
	}

	columnList := table.Category.AllColumns.Except(table.Category.ID)

	excludedExpressions := make([]pg.Expression, 0, len(columnList))
	for _, col := range table.Category.EXCLUDED.AllColumns.Except(table.Category.ID) {
		excludedExpressions = append(excludedExpressions, col)
	}

	_, err := table.Category.INSERT(columnList).
		MODELS(dbCategories).
		ON_CONFLICT(table.Category.ShopID, table.Category.Name).
		DO_UPDATE(
			pg.SET(
				columnList.SET(pg.ROW(excludedExpressions...)),
			),
		).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't upsert categories into database: %w", err)
	}

	return nil
}

// UpsertCurrencies upserts feed currencies keyed by code within a shop.
func (p Postgres) UpsertCurrencies(ctx context.Context, currencies []models.Currency, shopID int) error {
	if len(currencies) == 0 {
		return nil
	}

	dbCurrencies := make([]pgmodels.Currency, 0, len(currencies))
	for ix := range currencies {
		dbCurrencies = append(dbCurrencies, ToDBCurrency(int32(shopID), currencies[ix]))
	}

	columnList := table.Currency.AllColumns.Except(table.Currency.ID)

	excludedExpressions := make([]pg.Expression, 0, len(columnList))
	for _, col := range table.Currency.EXCLUDED.AllColumns.Except(table.Currency.ID) {
		excludedExpressions = append(excludedExpressions, col)
	}

	_, err := table.Currency.INSERT(columnList).
		MODELS(dbCurrencies).
		ON_CONFLICT(table.Currency.ShopID, table.Currency.Code).
		DO_UPDATE(
			pg.SET(
				columnList.SET(pg.ROW(excludedExpressions...)),
			),
		).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't upsert currencies into database: %w", err)
	}

	return nil
}
