package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"aqar-service/internal/contextkeys"
	"aqar-service/internal/core/domain"
	"aqar-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdminRepository implements port.AdminStorage for PostgreSQL.
type AdminRepository struct {
	pool *pgxpool.Pool
}

func (r *AdminRepository) GetAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	return r.getAdmin(ctx, "GetAdminByUsername",
		`SELECT id, username, email, password_hash, created_at FROM admins WHERE username = $1`, username)
}

func (r *AdminRepository) GetAdminByID(ctx context.Context, id int) (*domain.Admin, error) {
	return r.getAdmin(ctx, "GetAdminByID",
		`SELECT id, username, email, password_hash, created_at FROM admins WHERE id = $1`, id)
}

func (r *AdminRepository) CreateAdmin(ctx context.Context, a *domain.Admin) (*domain.Admin, error) {
	logger := r.logger(ctx, "CreateAdmin")

	var stored domain.Admin
	err := r.pool.QueryRow(ctx,
		`INSERT INTO admins (username, email, password_hash) VALUES ($1, $2, $3)
		 RETURNING id, username, email, password_hash, created_at`,
		a.Username, a.Email, a.PasswordHash,
	).Scan(&stored.ID, &stored.Username, &stored.Email, &stored.PasswordHash, &stored.CreatedAt)
	if err != nil {
		logger.Error("Failed to create admin", err, nil)
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return &stored, nil
}

func (r *AdminRepository) CountAdmins(ctx context.Context) (int, error) {
	logger := r.logger(ctx, "CountAdmins")

	var count int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM admins`).Scan(&count); err != nil {
		logger.Error("Failed to count admins", err, nil)
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}

	return count, nil
}

func (r *AdminRepository) getAdmin(ctx context.Context, method, query string, arg interface{}) (*domain.Admin, error) {
	logger := r.logger(ctx, method)

	var a domain.Admin
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error("Failed to find admin", err, nil)
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}

	return &a, nil
}

func (r *AdminRepository) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "AdminRepository",
		"method":    method,
	})
}
