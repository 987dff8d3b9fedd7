package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/casedesk/casedesk/internal/core/domain"
	"github.com/casedesk/casedesk/internal/core/ports"
)

// caseColumns is the canonical select list: the serialized form carries the
// child counts.
const caseColumns = `c.id, c.name, c.description, c.status, c.created_at, c.updated_at,
	(SELECT COUNT(*) FROM customers cu WHERE cu.case_id = c.id) AS customer_count,
	(SELECT COUNT(*) FROM investigations i WHERE i.case_id = c.id) AS investigation_count`

// CaseRepository persists cases.
type CaseRepository struct {
	db *sql.DB
}

func NewCaseRepository(db *sql.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

func scanCase(row interface{ Scan(...any) error }) (*domain.Case, error) {
	var c domain.Case
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		&c.CustomerCount, &c.InvestigationCount)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CaseRepository) Create(ctx context.Context, input ports.CaseCreate) (*domain.Case, error) {
	c := domain.Case{
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO cases (name, description, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		input.Name, input.Description, input.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert case: %w", err)
	}
	return &c, nil
}

func (r *CaseRepository) GetByID(ctx context.Context, id int64) (*domain.Case, error) {
	c, err := scanCase(r.db.QueryRowContext(ctx,
		"SELECT "+caseColumns+" FROM cases c WHERE c.id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCaseNotFound
		}
		return nil, fmt.Errorf("get case: %w", err)
	}
	return c, nil
}

func (r *CaseRepository) List(ctx context.Context, page domain.PageRequest) ([]domain.Case, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cases`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count cases: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+caseColumns+" FROM cases c ORDER BY c.id ASC LIMIT $1 OFFSET $2",
		page.PerPage, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()

	items, err := collectCases(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update applies only the non-nil fields and bumps updated_at, then re-reads
// the canonical form. Both statements share one transaction. A payload with
// no fields at all leaves the row untouched, updated_at included.
func (r *CaseRepository) Update(ctx context.Context, id int64, input ports.CaseUpdate) (*domain.Case, error) {
	if input.Name == nil && input.Description == nil && input.Status == nil {
		return r.GetByID(ctx, id)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin update case: %w", err)
	}
	defer tx.Rollback()

	b := condBuilder{}
	sets := []string{"updated_at = NOW()"}
	if input.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", b.next(*input.Name)))
	}
	if input.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", b.next(*input.Description)))
	}
	if input.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", b.next(*input.Status)))
	}
	query := fmt.Sprintf("UPDATE cases SET %s WHERE id = $%d RETURNING id",
		strings.Join(sets, ", "), b.next(id))

	var updatedID int64
	if err := tx.QueryRowContext(ctx, query, b.args...).Scan(&updatedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCaseNotFound
		}
		return nil, fmt.Errorf("update case: %w", err)
	}

	c, err := scanCase(tx.QueryRowContext(ctx,
		"SELECT "+caseColumns+" FROM cases c WHERE c.id = $1", id))
	if err != nil {
		return nil, fmt.Errorf("reload case: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update case: %w", err)
	}
	return c, nil
}

// Delete removes the case; customers, investigations and targets follow via
// ON DELETE CASCADE.
func (r *CaseRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete case: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete case: %w", err)
	}
	if n == 0 {
		return domain.ErrCaseNotFound
	}
	return nil
}

func (r *CaseRepository) Search(ctx context.Context, filter ports.CaseSearch, page domain.PageRequest) ([]domain.Case, int64, error) {
	b := condBuilder{}
	if filter.Name != nil {
		b.add("c.name ILIKE $%d", likePattern(*filter.Name))
	}
	if filter.Status != nil {
		b.add("c.status = $%d", *filter.Status)
	}
	if filter.Description != nil {
		b.add("c.description ILIKE $%d", likePattern(*filter.Description))
	}
	if len(filter.IDs) > 0 {
		b.add("c.id = ANY($%d)", pq.Array(filter.IDs))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM cases c"+b.where(), b.args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count case search: %w", err)
	}

	limit := b.next(page.PerPage)
	offset := b.next(page.Offset())
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT "+caseColumns+" FROM cases c%s ORDER BY c.id ASC LIMIT $%d OFFSET $%d",
		b.where(), limit, offset), b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search cases: %w", err)
	}
	defer rows.Close()

	items, err := collectCases(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func collectCases(rows *sql.Rows) ([]domain.Case, error) {
	var items []domain.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cases: %w", err)
	}
	return items, nil
}
