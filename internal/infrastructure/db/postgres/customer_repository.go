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

const customerColumns = "id, case_id, name, email, phone, address, created_at, updated_at"

// CustomerRepository persists customers.
type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func scanCustomer(row interface{ Scan(...any) error }) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.CaseID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Create(ctx context.Context, input ports.CustomerCreate) (*domain.Customer, error) {
	c, err := scanCustomer(r.db.QueryRowContext(ctx, `
		INSERT INTO customers (case_id, name, email, phone, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+customerColumns,
		input.CaseID, input.Name, input.Email, input.Phone, input.Address))
	if err != nil {
		return nil, fmt.Errorf("insert customer: %w", mapConstraintError(err))
	}
	return c, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := scanCustomer(r.db.QueryRowContext(ctx,
		"SELECT "+customerColumns+" FROM customers WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func (r *CustomerRepository) List(ctx context.Context, caseID *int64, page domain.PageRequest) ([]domain.Customer, int64, error) {
	b := condBuilder{}
	if caseID != nil {
		b.add("case_id = $%d", *caseID)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM customers"+b.where(), b.args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	limit := b.next(page.PerPage)
	offset := b.next(page.Offset())
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT "+customerColumns+" FROM customers%s ORDER BY id ASC LIMIT $%d OFFSET $%d",
		b.where(), limit, offset), b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	return collectCustomers(rows, total)
}

func (r *CustomerRepository) Update(ctx context.Context, id int64, input ports.CustomerUpdate) (*domain.Customer, error) {
	if input.CaseID == nil && input.Name == nil && input.Email == nil &&
		input.Phone == nil && input.Address == nil {
		return r.GetByID(ctx, id)
	}

	b := condBuilder{}
	sets := []string{"updated_at = NOW()"}
	if input.CaseID != nil {
		sets = append(sets, fmt.Sprintf("case_id = $%d", b.next(*input.CaseID)))
	}
	if input.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", b.next(*input.Name)))
	}
	if input.Email != nil {
		sets = append(sets, fmt.Sprintf("email = $%d", b.next(*input.Email)))
	}
	if input.Phone != nil {
		sets = append(sets, fmt.Sprintf("phone = $%d", b.next(*input.Phone)))
	}
	if input.Address != nil {
		sets = append(sets, fmt.Sprintf("address = $%d", b.next(*input.Address)))
	}
	query := fmt.Sprintf("UPDATE customers SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), b.next(id), customerColumns)

	c, err := scanCustomer(r.db.QueryRowContext(ctx, query, b.args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("update customer: %w", mapConstraintError(err))
	}
	return c, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if n == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) Search(ctx context.Context, filter ports.CustomerSearch, page domain.PageRequest) ([]domain.Customer, int64, error) {
	b := condBuilder{}
	if filter.Name != nil {
		b.add("name ILIKE $%d", likePattern(*filter.Name))
	}
	if filter.Email != nil {
		b.add("email ILIKE $%d", likePattern(*filter.Email))
	}
	if filter.Phone != nil {
		b.add("phone ILIKE $%d", likePattern(*filter.Phone))
	}
	if filter.Address != nil {
		b.add("address ILIKE $%d", likePattern(*filter.Address))
	}
	if filter.CaseID != nil {
		b.add("case_id = $%d", *filter.CaseID)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM customers"+b.where(), b.args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customer search: %w", err)
	}

	limit := b.next(page.PerPage)
	offset := b.next(page.Offset())
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT "+customerColumns+" FROM customers%s ORDER BY id ASC LIMIT $%d OFFSET $%d",
		b.where(), limit, offset), b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()

	return collectCustomers(rows, total)
}

// DistinctCaseIDs resolves the first hop of the customer-name → cases join.
func (r *CustomerRepository) DistinctCaseIDs(ctx context.Context, name string) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT case_id FROM customers WHERE name ILIKE $1`, likePattern(name))
	if err != nil {
		return nil, fmt.Errorf("distinct case ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan case id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate case ids: %w", err)
	}
	return ids, nil
}

func collectCustomers(rows *sql.Rows, total int64) ([]domain.Customer, int64, error) {
	var items []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan customer: %w", err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate customers: %w", err)
	}
	return items, total, nil
}
