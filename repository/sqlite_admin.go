package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/akinalp/emlakkit/database"
	"github.com/akinalp/emlakkit/models"
	"github.com/akinalp/emlakkit/pkg"
)

// sqliteAdminRepo, AdminRepository interface'inin SQLite implementasyonu.
//
// Go'da struct field'ları küçük harfle başlarsa (db) → private.
// Repository'nin DB bağlantısı dışarıya açık olmamalı — bu yüzden küçük harf.
type sqliteAdminRepo struct {
	db database.TxQuerier
}

// NewSQLiteAdminRepo, constructor fonksiyonu.
// AdminRepository interface'i döner (concrete struct değil) — Dependency Inversion.
func NewSQLiteAdminRepo(db database.TxQuerier) AdminRepository {
	return &sqliteAdminRepo{db: db}
}

func (r *sqliteAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	// ID uygulama tarafında atanır (uuid) — opak ve stable.
	admin.ID = uuid.NewString()

	query := `
		INSERT INTO admins (id, email, password_hash, display_name)
		VALUES (?, ?, ?, ?)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		admin.ID,
		admin.Email,
		admin.PasswordHash,
		admin.DisplayName,
	).Scan(&admin.CreatedAt, &admin.UpdatedAt)

	if err != nil {
		// UNIQUE constraint violation → email zaten kayıtlı.
		// Uniqueness kontrolü store'a delege edilir — insert öncesi re-check yapılmaz.
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email already in use", pkg.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}

func (r *sqliteAdminRepo) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	query := `
		SELECT id, email, password_hash, display_name, created_at, updated_at
		FROM admins WHERE id = ?`

	admin := &models.Admin{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&admin.ID, &admin.Email, &admin.PasswordHash,
		&admin.DisplayName, &admin.CreatedAt, &admin.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by id: %w", err)
	}

	return admin, nil
}

func (r *sqliteAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `
		SELECT id, email, password_hash, display_name, created_at, updated_at
		FROM admins WHERE email = ?`

	admin := &models.Admin{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&admin.ID, &admin.Email, &admin.PasswordHash,
		&admin.DisplayName, &admin.CreatedAt, &admin.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return admin, nil
}

func (r *sqliteAdminRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

// isUniqueViolation, SQLite UNIQUE constraint hatasını kontrol eder.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
