package storage

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// AdminStorage — явный allow-list администраторов.
// Токен провайдера аутентификации лишь удостоверяет email,
// право на админские операции дает членство в этой таблице.
type AdminStorage interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type adminRepository struct {
	db *sql.DB
}

// NewAdminRepository создаёт репозиторий allow-list'а администраторов.
func NewAdminRepository(db *sql.DB) AdminStorage {
	return &adminRepository{db: db}
}

func (r *adminRepository) IsAdmin(ctx context.Context, email string) (bool, error) {
	var found string
	row := r.db.QueryRowContext(ctx, "SELECT email FROM admins WHERE email = $1", strings.ToLower(email))
	if err := row.Scan(&found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
