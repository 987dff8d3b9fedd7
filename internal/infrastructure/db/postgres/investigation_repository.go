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

const investigationColumns = `v.id, v.case_id, v.title, v.description, v.status,
	v.start_date, v.end_date, v.created_at, v.updated_at,
	(SELECT COUNT(*) FROM targets t WHERE t.investigation_id = v.id) AS target_count`

// InvestigationRepository persists investigations.
type InvestigationRepository struct {
	db *sql.DB
}

func NewInvestigationRepository(db *sql.DB) *InvestigationRepository {
	return &InvestigationRepository{db: db}
}

func scanInvestigation(row interface{ Scan(...any) error }) (*domain.Investigation, error) {
	var v domain.Investigation
	var start, end sql.NullTime
	err := row.Scan(&v.ID, &v.CaseID, &v.Title, &v.Description, &v.Status,
		&start, &end, &v.CreatedAt, &v.UpdatedAt, &v.TargetCount)
	if err != nil {
		return nil, err
	}
	if start.Valid {
		v.StartDate = &domain.Date{Time: start.Time}
	}
	if end.Valid {
		v.EndDate = &domain.Date{Time: end.Time}
	}
	return &v, nil
}

func dateArg(d *domain.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}

func (r *InvestigationRepository) Create(ctx context.Context, input ports.InvestigationCreate) (*domain.Investigation, error) {
	v := domain.Investigation{
		CaseID:      input.CaseID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO investigations (case_id, title, description, status, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		input.CaseID, input.Title, input.Description, input.Status,
		dateArg(input.StartDate), dateArg(input.EndDate),
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert investigation: %w", mapConstraintError(err))
	}
	return &v, nil
}

func (r *InvestigationRepository) GetByID(ctx context.Context, id int64) (*domain.Investigation, error) {
	v, err := scanInvestigation(r.db.QueryRowContext(ctx,
		"SELECT "+investigationColumns+" FROM investigations v WHERE v.id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvestigationNotFound
		}
		return nil, fmt.Errorf("get investigation: %w", err)
	}
	return v, nil
}

func (r *InvestigationRepository) List(ctx context.Context, caseID *int64, page domain.PageRequest) ([]domain.Investigation, int64, error) {
	b := condBuilder{}
	if caseID != nil {
		b.add("v.case_id = $%d", *caseID)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM investigations v"+b.where(), b.args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count investigations: %w", err)
	}

	limit := b.next(page.PerPage)
	offset := b.next(page.Offset())
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT "+investigationColumns+" FROM investigations v%s ORDER BY v.id ASC LIMIT $%d OFFSET $%d",
		b.where(), limit, offset), b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list investigations: %w", err)
	}
	defer rows.Close()

	return collectInvestigations(rows, total)
}

// Update applies only the fields present in the payload. Unset dates are
// untouched; a date sent as null or empty clears the column. A payload with
// no fields at all leaves the row untouched, updated_at included.
func (r *InvestigationRepository) Update(ctx context.Context, id int64, input ports.InvestigationUpdate) (*domain.Investigation, error) {
	if input.CaseID == nil && input.Title == nil && input.Description == nil &&
		input.Status == nil && !input.StartDate.Set && !input.EndDate.Set {
		return r.GetByID(ctx, id)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin update investigation: %w", err)
	}
	defer tx.Rollback()

	b := condBuilder{}
	sets := []string{"updated_at = NOW()"}
	if input.CaseID != nil {
		sets = append(sets, fmt.Sprintf("case_id = $%d", b.next(*input.CaseID)))
	}
	if input.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", b.next(*input.Title)))
	}
	if input.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", b.next(*input.Description)))
	}
	if input.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", b.next(*input.Status)))
	}
	if input.StartDate.Set {
		sets = append(sets, fmt.Sprintf("start_date = $%d", b.next(dateArg(input.StartDate.Value))))
	}
	if input.EndDate.Set {
		sets = append(sets, fmt.Sprintf("end_date = $%d", b.next(dateArg(input.EndDate.Value))))
	}
	query := fmt.Sprintf("UPDATE investigations SET %s WHERE id = $%d RETURNING id",
		strings.Join(sets, ", "), b.next(id))

	var updatedID int64
	if err := tx.QueryRowContext(ctx, query, b.args...).Scan(&updatedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvestigationNotFound
		}
		return nil, fmt.Errorf("update investigation: %w", mapConstraintError(err))
	}

	v, err := scanInvestigation(tx.QueryRowContext(ctx,
		"SELECT "+investigationColumns+" FROM investigations v WHERE v.id = $1", id))
	if err != nil {
		return nil, fmt.Errorf("reload investigation: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update investigation: %w", err)
	}
	return v, nil
}

// Delete removes the investigation; its targets follow via ON DELETE CASCADE.
func (r *InvestigationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM investigations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete investigation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete investigation: %w", err)
	}
	if n == 0 {
		return domain.ErrInvestigationNotFound
	}
	return nil
}

func (r *InvestigationRepository) Search(ctx context.Context, filter ports.InvestigationSearch, page domain.PageRequest) ([]domain.Investigation, int64, error) {
	b := condBuilder{}
	if filter.Title != nil {
		b.add("v.title ILIKE $%d", likePattern(*filter.Title))
	}
	if filter.Description != nil {
		b.add("v.description ILIKE $%d", likePattern(*filter.Description))
	}
	if filter.Status != nil {
		b.add("v.status = $%d", *filter.Status)
	}
	if filter.CaseID != nil {
		b.add("v.case_id = $%d", *filter.CaseID)
	}
	if len(filter.IDs) > 0 {
		b.add("v.id = ANY($%d)", pq.Array(filter.IDs))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM investigations v"+b.where(), b.args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count investigation search: %w", err)
	}

	limit := b.next(page.PerPage)
	offset := b.next(page.Offset())
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT "+investigationColumns+" FROM investigations v%s ORDER BY v.id ASC LIMIT $%d OFFSET $%d",
		b.where(), limit, offset), b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search investigations: %w", err)
	}
	defer rows.Close()

	return collectInvestigations(rows, total)
}

func collectInvestigations(rows *sql.Rows, total int64) ([]domain.Investigation, int64, error) {
	var items []domain.Investigation
	for rows.Next() {
		v, err := scanInvestigation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan investigation: %w", err)
		}
		items = append(items, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate investigations: %w", err)
	}
	return items, total, nil
}
