package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"aqar-service/internal/contextkeys"
	"aqar-service/internal/core/domain"
	"aqar-service/internal/core/port"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

// LeadRepository implements port.LeadStorage for PostgreSQL. Leads are
// append-only: rows are inserted by public form submissions and deleted
// from the admin side, never updated.
type LeadRepository struct {
	pool *pgxpool.Pool
}

func (r *LeadRepository) CreateContact(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	logger := r.logger(ctx, "CreateContact")

	var stored domain.Contact
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, phone, email, subject, message) VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, name, phone, email, subject, message, created_at`,
		c.Name, c.Phone, c.Email, c.Subject, c.Message,
	).Scan(&stored.ID, &stored.Name, &stored.Phone, &stored.Email, &stored.Subject, &stored.Message, &stored.CreatedAt)
	if err != nil {
		logger.Error("Failed to create contact", err, nil)
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return &stored, nil
}

func (r *LeadRepository) GetContacts(ctx context.Context) ([]domain.Contact, error) {
	logger := r.logger(ctx, "GetContacts")

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, phone, email, subject, message, created_at FROM contacts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		logger.Error("Failed to query contacts", err, nil)
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Contact, 0)
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			logger.Error("Failed to scan contact row", err, nil)
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during contact rows iteration: %w", err)
	}

	return result, nil
}

func (r *LeadRepository) DeleteContact(ctx context.Context, id int) (bool, error) {
	return r.deleteLead(ctx, "DeleteContact", "contacts", id)
}

// CreateNewsletter inserts the subscription and maps the unique constraint
// on email to domain.ErrEmailAlreadySubscribed.
func (r *LeadRepository) CreateNewsletter(ctx context.Context, email string) (*domain.Newsletter, error) {
	logger := r.logger(ctx, "CreateNewsletter")

	var stored domain.Newsletter
	err := r.pool.QueryRow(ctx,
		`INSERT INTO newsletters (email) VALUES ($1) RETURNING id, email, created_at`,
		email,
	).Scan(&stored.ID, &stored.Email, &stored.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, domain.ErrEmailAlreadySubscribed
		}
		logger.Error("Failed to create newsletter subscription", err, nil)
		return nil, fmt.Errorf("failed to create newsletter subscription: %w", err)
	}

	return &stored, nil
}

func (r *LeadRepository) GetNewsletters(ctx context.Context) ([]domain.Newsletter, error) {
	logger := r.logger(ctx, "GetNewsletters")

	rows, err := r.pool.Query(ctx,
		`SELECT id, email, created_at FROM newsletters ORDER BY created_at DESC, id DESC`)
	if err != nil {
		logger.Error("Failed to query newsletters", err, nil)
		return nil, fmt.Errorf("failed to query newsletters: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Newsletter, 0)
	for rows.Next() {
		var n domain.Newsletter
		if err := rows.Scan(&n.ID, &n.Email, &n.CreatedAt); err != nil {
			logger.Error("Failed to scan newsletter row", err, nil)
			return nil, fmt.Errorf("failed to scan newsletter row: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during newsletter rows iteration: %w", err)
	}

	return result, nil
}

func (r *LeadRepository) DeleteNewsletter(ctx context.Context, id int) (bool, error) {
	return r.deleteLead(ctx, "DeleteNewsletter", "newsletters", id)
}

func (r *LeadRepository) CreateEntrustment(ctx context.Context, e *domain.Entrustment) (*domain.Entrustment, error) {
	logger := r.logger(ctx, "CreateEntrustment")

	var stored domain.Entrustment
	err := r.pool.QueryRow(ctx,
		`INSERT INTO entrustments (owner_name, phone, email, property_type, governorate_id, details)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, owner_name, phone, email, property_type, governorate_id, details, created_at`,
		e.OwnerName, e.Phone, e.Email, e.PropertyType, e.GovernorateID, e.Details,
	).Scan(&stored.ID, &stored.OwnerName, &stored.Phone, &stored.Email, &stored.PropertyType,
		&stored.GovernorateID, &stored.Details, &stored.CreatedAt)
	if err != nil {
		logger.Error("Failed to create entrustment", err, nil)
		return nil, fmt.Errorf("failed to create entrustment: %w", err)
	}

	return &stored, nil
}

func (r *LeadRepository) GetEntrustments(ctx context.Context) ([]domain.Entrustment, error) {
	logger := r.logger(ctx, "GetEntrustments")

	rows, err := r.pool.Query(ctx,
		`SELECT id, owner_name, phone, email, property_type, governorate_id, details, created_at
		 FROM entrustments ORDER BY created_at DESC, id DESC`)
	if err != nil {
		logger.Error("Failed to query entrustments", err, nil)
		return nil, fmt.Errorf("failed to query entrustments: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Entrustment, 0)
	for rows.Next() {
		var e domain.Entrustment
		if err := rows.Scan(&e.ID, &e.OwnerName, &e.Phone, &e.Email, &e.PropertyType,
			&e.GovernorateID, &e.Details, &e.CreatedAt); err != nil {
			logger.Error("Failed to scan entrustment row", err, nil)
			return nil, fmt.Errorf("failed to scan entrustment row: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during entrustment rows iteration: %w", err)
	}

	return result, nil
}

func (r *LeadRepository) DeleteEntrustment(ctx context.Context, id int) (bool, error) {
	return r.deleteLead(ctx, "DeleteEntrustment", "entrustments", id)
}

func (r *LeadRepository) CreatePropertyRequest(ctx context.Context, pr *domain.PropertyRequest) (*domain.PropertyRequest, error) {
	logger := r.logger(ctx, "CreatePropertyRequest")

	var stored domain.PropertyRequest
	err := r.pool.QueryRow(ctx,
		`INSERT INTO property_requests (name, phone, email, property_type, governorate_id, min_price, max_price, details)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, name, phone, email, property_type, governorate_id, min_price, max_price, details, created_at`,
		pr.Name, pr.Phone, pr.Email, pr.PropertyType, pr.GovernorateID, pr.MinPrice, pr.MaxPrice, pr.Details,
	).Scan(&stored.ID, &stored.Name, &stored.Phone, &stored.Email, &stored.PropertyType,
		&stored.GovernorateID, &stored.MinPrice, &stored.MaxPrice, &stored.Details, &stored.CreatedAt)
	if err != nil {
		logger.Error("Failed to create property request", err, nil)
		return nil, fmt.Errorf("failed to create property request: %w", err)
	}

	return &stored, nil
}

func (r *LeadRepository) GetPropertyRequests(ctx context.Context) ([]domain.PropertyRequest, error) {
	logger := r.logger(ctx, "GetPropertyRequests")

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, phone, email, property_type, governorate_id, min_price, max_price, details, created_at
		 FROM property_requests ORDER BY created_at DESC, id DESC`)
	if err != nil {
		logger.Error("Failed to query property requests", err, nil)
		return nil, fmt.Errorf("failed to query property requests: %w", err)
	}
	defer rows.Close()

	result := make([]domain.PropertyRequest, 0)
	for rows.Next() {
		var pr domain.PropertyRequest
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.Phone, &pr.Email, &pr.PropertyType,
			&pr.GovernorateID, &pr.MinPrice, &pr.MaxPrice, &pr.Details, &pr.CreatedAt); err != nil {
			logger.Error("Failed to scan property request row", err, nil)
			return nil, fmt.Errorf("failed to scan property request row: %w", err)
		}
		result = append(result, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during property request rows iteration: %w", err)
	}

	return result, nil
}

func (r *LeadRepository) DeletePropertyRequest(ctx context.Context, id int) (bool, error) {
	return r.deleteLead(ctx, "DeletePropertyRequest", "property_requests", id)
}

func (r *LeadRepository) deleteLead(ctx context.Context, method, table string, id int) (bool, error) {
	logger := r.logger(ctx, method)

	cmdTag, err := r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		logger.Error("Failed to delete lead", err, port.Fields{"table": table})
		return false, fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

func (r *LeadRepository) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "LeadRepository",
		"method":    method,
	})
}
