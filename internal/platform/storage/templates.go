package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/feedline/yml-feed-parser/internal/platform"
	"github.com/feedline/yml-feed-parser/internal/platform/models"
	"github.com/feedline/yml-feed-parser/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/feedline/yml-feed-parser/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// EnsureTemplate returns id of the shop's template with provided name,
// creating the template when it does not exist yet.
func (p Postgres) EnsureTemplate(ctx context.Context, shopID int, name string) (int32, error) {
	var template pgmodels.Template
	err := table.Template.SELECT(table.Template.ID).
		WHERE(pg.AND(
			table.Template.ShopID.EQ(pg.Int32(int32(shopID))),
			table.Template.Name.EQ(pg.String(name)),
		)).
		QueryContext(ctx, p.db, &template)
	if err == nil {
		return template.ID, nil
	}
	if !errors.Is(err, qrm.ErrNoRows) {
		return 0, fmt.Errorf("can't get template: %w", err)
	}

	template = pgmodels.Template{
		ShopID: int32(shopID),
		Name:   name,
	}
	err = table.Template.INSERT(table.Template.ShopID, table.Template.Name).
		MODEL(&template).
		RETURNING(table.Template.ID).
		QueryContext(ctx, p.db, &template)
	if err != nil {
		return 0, fmt.Errorf("can't insert template: %w", err)
	}

	return template.ID, nil
}

// ReplaceTemplateParameters replaces all parameters of a template with the
// provided list. Display order is reassigned densely from input order.
func (p Postgres) ReplaceTemplateParameters(
	ctx context.Context,
	templateID int32,
	parameters []models.TemplateParameter,
) error {
	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		_, err := table.TemplateParameter.DELETE().
			WHERE(table.TemplateParameter.TemplateID.EQ(pg.Int32(templateID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't delete outdated template parameters: %w", err)
		}

		if len(parameters) == 0 {
			return nil
		}

		rows := make([]pgmodels.TemplateParameter, 0, len(parameters))
		for ix := range parameters {
			row := ToDBTemplateParameter(templateID, parameters[ix])
			row.DisplayOrder = int32(ix)
			rows = append(rows, row)
		}

		_, err = table.TemplateParameter.
			INSERT(table.TemplateParameter.MutableColumns).
			MODELS(rows).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't insert template parameters: %w", err)
		}

		return nil
	})
}

// ListTemplateParameters returns all parameters of a template ordered by
// display order.
func (p Postgres) ListTemplateParameters(ctx context.Context, templateID int32) ([]models.TemplateParameter, error) {
	var rows []pgmodels.TemplateParameter
	err := table.TemplateParameter.SELECT(table.TemplateParameter.AllColumns).
		WHERE(table.TemplateParameter.TemplateID.EQ(pg.Int32(templateID))).
		ORDER_BY(
			table.TemplateParameter.DisplayOrder.ASC(),
			table.TemplateParameter.ID.ASC(),
		).
		QueryContext(ctx, p.db, &rows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get template parameters: %w", err)
	}

	parameters := make([]models.TemplateParameter, 0, len(rows))
	for ix := range rows {
		parameters = append(parameters, FromDBTemplateParameter(rows[ix]))
	}

	return parameters, nil
}

// TemplateParameterPatch is a partial update of a template parameter row.
// Nil fields stay untouched.
type TemplateParameterPatch struct {
	Value        *string
	IsActive     *bool
	IsRequired   *bool
	DisplayOrder *int32
}

// UpdateTemplateParameter applies a partial update to one parameter row.
// It returns platform.ErrNotFound when the row does not exist.
func (p Postgres) UpdateTemplateParameter(ctx context.Context, id int32, patch TemplateParameterPatch) error {
	var assignments []interface{}
	if patch.Value != nil {
		assignments = append(assignments, table.TemplateParameter.Value.SET(pg.String(*patch.Value)))
	}
	if patch.IsActive != nil {
		assignments = append(assignments, table.TemplateParameter.IsActive.SET(pg.Bool(*patch.IsActive)))
	}
	if patch.IsRequired != nil {
		assignments = append(assignments, table.TemplateParameter.IsRequired.SET(pg.Bool(*patch.IsRequired)))
	}
	if patch.DisplayOrder != nil {
		assignments = append(assignments, table.TemplateParameter.DisplayOrder.SET(pg.Int32(*patch.DisplayOrder)))
	}

	if len(assignments) == 0 {
		return nil
	}

	result, err := table.TemplateParameter.UPDATE().
		SET(assignments[0], assignments[1:]...).
		WHERE(table.TemplateParameter.ID.EQ(pg.Int32(id))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update template parameter: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("can't update template parameter: %w", err)
	} else if rowsAffected == 0 {
		return platform.ErrNotFound
	}

	return nil
}

// DeleteTemplateParameters deletes parameter rows by ids, individually or in bulk.
func (p Postgres) DeleteTemplateParameters(ctx context.Context, ids []int32) error {
	if len(ids) == 0 {
		return nil
	}

	idExpressions := make([]pg.Expression, 0, len(ids))
	for _, id := range ids {
		idExpressions = append(idExpressions, pg.Int32(id))
	}

	_, err := table.TemplateParameter.DELETE().
		WHERE(table.TemplateParameter.ID.IN(idExpressions...)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't delete template parameters: %w", err)
	}

	return nil
}

// ReorderTemplateParameters assigns dense display order 0..n-1 following
// the provided id order. Ids not belonging to the template are skipped.
func (p Postgres) ReorderTemplateParameters(ctx context.Context, templateID int32, orderedIDs []int32) error {
	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		for ix, id := range orderedIDs {
			_, err := table.TemplateParameter.UPDATE().
				SET(table.TemplateParameter.DisplayOrder.SET(pg.Int32(int32(ix)))).
				WHERE(pg.AND(
					table.TemplateParameter.ID.EQ(pg.Int32(id)),
					table.TemplateParameter.TemplateID.EQ(pg.Int32(templateID)),
				)).
				ExecContext(ctx, tx)
			if err != nil {
				return fmt.Errorf("can't reorder template parameters: %w", err)
			}
		}
		return nil
	})
}
