package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/casedesk/casedesk/internal/core/domain"
	"github.com/casedesk/casedesk/internal/core/ports"
)

const targetColumns = "id, investigation_id, name, type, details, status, created_at, updated_at"

// TargetRepository persists targets.
type TargetRepository struct {
	db *sql.DB
}

func NewTargetRepository(db *sql.DB) *TargetRepository {
	return &TargetRepository{db: db}
}

func scanTarget(row interface{ Scan(...any) error }) (*domain.Target, error) {
	var t domain.Target
	err := row.Scan(&t.ID, &t.InvestigationID, &t.Name, &t.Type, &t.Details, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TargetRepository) Create(ctx context.Context, input ports.TargetCreate) (*domain.Target, error) {
	t, err := scanTarget(r.db.QueryRowContext(ctx, `
		INSERT INTO targets (investigation_id, name, type, details, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+targetColumns,
		input.InvestigationID, input.Name, input.Type, input.Details, input.Status))
	if err != nil {
		return nil, fmt.Errorf("insert target: %w", mapConstraintError(err))
	}
	return t, nil
}

func (r *TargetRepository) GetByID(ctx context.Context, id int64) (*domain.Target, error) {
	t, err := scanTarget(r.db.QueryRowContext(ctx,
		"SELECT "+targetColumns+" FROM targets WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTargetNotFound
		}
		return nil, fmt.Errorf("get target: %w", err)
	}
	return t, nil
}

func (r *TargetRepository) List(ctx context.Context, investigationID *int64, page domain.PageRequest) ([]domain.Target, int64, error) {
	b := condBuilder{}
	if investigationID != nil {
		b.add("investigation_id = $%d", *investigationID)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM targets"+b.where(), b.args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count targets: %w", err)
	}

	limit := b.next(page.PerPage)
	offset := b.next(page.Offset())
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT "+targetColumns+" FROM targets%s ORDER BY id ASC LIMIT $%d OFFSET $%d",
		b.where(), limit, offset), b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list targets: %w", err)
	}
	defer rows.Close()

	return collectTargets(rows, total)
}

func (r *TargetRepository) Update(ctx context.Context, id int64, input ports.TargetUpdate) (*domain.Target, error) {
	if input.InvestigationID == nil && input.Name == nil && input.Type == nil &&
		input.Details == nil && input.Status == nil {
		return r.GetByID(ctx, id)
	}

	b := condBuilder{}
	sets := []string{"updated_at = NOW()"}
	if input.InvestigationID != nil {
		sets = append(sets, fmt.Sprintf("investigation_id = $%d", b.next(*input.InvestigationID)))
	}
	if input.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", b.next(*input.Name)))
	}
	if input.Type != nil {
		sets = append(sets, fmt.Sprintf("type = $%d", b.next(*input.Type)))
	}
	if input.Details != nil {
		sets = append(sets, fmt.Sprintf("details = $%d", b.next(*input.Details)))
	}
	if input.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", b.next(*input.Status)))
	}
	query := fmt.Sprintf("UPDATE targets SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), b.next(id), targetColumns)

	t, err := scanTarget(r.db.QueryRowContext(ctx, query, b.args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTargetNotFound
		}
		return nil, fmt.Errorf("update target: %w", mapConstraintError(err))
	}
	return t, nil
}

func (r *TargetRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM targets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete target: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete target: %w", err)
	}
	if n == 0 {
		return domain.ErrTargetNotFound
	}
	return nil
}

func (r *TargetRepository) Search(ctx context.Context, filter ports.TargetSearch, page domain.PageRequest) ([]domain.Target, int64, error) {
	b := condBuilder{}
	if filter.Name != nil {
		b.add("name ILIKE $%d", likePattern(*filter.Name))
	}
	if filter.Type != nil {
		b.add("type ILIKE $%d", likePattern(*filter.Type))
	}
	if filter.Details != nil {
		b.add("details ILIKE $%d", likePattern(*filter.Details))
	}
	if filter.Status != nil {
		b.add("status = $%d", *filter.Status)
	}
	if filter.InvestigationID != nil {
		b.add("investigation_id = $%d", *filter.InvestigationID)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM targets"+b.where(), b.args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count target search: %w", err)
	}

	limit := b.next(page.PerPage)
	offset := b.next(page.Offset())
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT "+targetColumns+" FROM targets%s ORDER BY id ASC LIMIT $%d OFFSET $%d",
		b.where(), limit, offset), b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search targets: %w", err)
	}
	defer rows.Close()

	return collectTargets(rows, total)
}

// DistinctInvestigationIDs resolves the first hop of the target-name →
// investigations join.
func (r *TargetRepository) DistinctInvestigationIDs(ctx context.Context, name string) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT investigation_id FROM targets WHERE name ILIKE $1`, likePattern(name))
	if err != nil {
		return nil, fmt.Errorf("distinct investigation ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan investigation id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate investigation ids: %w", err)
	}
	return ids, nil
}

func collectTargets(rows *sql.Rows, total int64) ([]domain.Target, int64, error) {
	var items []domain.Target
	for rows.Next() {
		t, err := scanTarget(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan target: %w", err)
		}
		items = append(items, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate targets: %w", err)
	}
	return items, total, nil
}
