package repository

import (
	"context"
	"errors"

	"slotbook/internal/infra"
	"slotbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRecord is the credential row the login flow needs; user CRUD itself
// lives outside this service.
type UserRecord struct {
	ID           uuid.UUID
	TenantID     string
	Email        string
	PasswordHash string
	Role         string
	VendorID     *uuid.UUID
	IsActive     bool
}

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const findUserByEmailSQL = `
SELECT id, tenant_id, email, password_hash, role, vendor_id, is_active
FROM users
WHERE tenant_id = $1 AND email = $2`

func (r *UserRepository) FindByEmail(ctx context.Context, tenantID, email string) (*UserRecord, error) {
	var u UserRecord
	err := r.db.QueryRow(ctx, findUserByEmailSQL, tenantID, email).Scan(
		&u.ID, &u.TenantID, &u.Email, &u.PasswordHash, &u.Role, &u.VendorID, &u.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &u, nil
}
