package profilerepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/jobpay/internal/domain"
	"github.com/GlebRadaev/jobpay/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Profile, error) {
	query := `
        SELECT id, first_name, last_name, profession, balance, type
        FROM profiles
        WHERE id = $1
    `
	return r.scanProfile(r.db.QueryRow(ctx, query, id))
}

// GetForUpdate locks the profile row for the rest of the transaction, so
// concurrent balance checks against the same profile serialize.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Profile, error) {
	query := `
        SELECT id, first_name, last_name, profession, balance, type
        FROM profiles
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanProfile(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) UpdateBalance(ctx context.Context, id int, balance float64) (*domain.Profile, error) {
	query := `
        UPDATE profiles
        SET balance = $1
        WHERE id = $2
        RETURNING id, first_name, last_name, profession, balance, type
    `
	profile, err := r.scanProfile(r.db.QueryRow(ctx, query, balance, id))
	if err != nil {
		zap.L().Error("can't update profile balance", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

// AddToBalance credits the profile atomically without taking the row lock
// up front.
func (r *Repository) AddToBalance(ctx context.Context, id int, amount float64) (*domain.Profile, error) {
	query := `
        UPDATE profiles
        SET balance = balance + $1
        WHERE id = $2
        RETURNING id, first_name, last_name, profession, balance, type
    `
	profile, err := r.scanProfile(r.db.QueryRow(ctx, query, amount, id))
	if err != nil {
		zap.L().Error("can't credit profile balance", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (r *Repository) scanProfile(row pgx.Row) (*domain.Profile, error) {
	var profile domain.Profile
	err := row.Scan(&profile.ID, &profile.FirstName, &profile.LastName, &profile.Profession, &profile.Balance, &profile.Type)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't scan profile row", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}
