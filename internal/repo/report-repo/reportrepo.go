package reportrepo

import (
	"context"
	"time"

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

// BestProfession returns the profession that earned the most over paid
// jobs inside (from, to), or nil when no payments fall in the window.
func (r *Repository) BestProfession(ctx context.Context, from, to time.Time) (*domain.ProfessionTotal, error) {
	query := `
        SELECT p.profession, SUM(j.price) AS total_earned
        FROM jobs j
        JOIN contracts c ON c.id = j.contract_id
        JOIN profiles p ON p.id = c.contractor_id
        WHERE j.paid AND j.payment_date > $1 AND j.payment_date < $2
        GROUP BY p.profession
        ORDER BY total_earned DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, from, to)

	var result domain.ProfessionTotal
	err := row.Scan(&result.Profession, &result.TotalEarned)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get best profession", zap.Error(err))
		return nil, err
	}
	return &result, nil
}

// BestClients ranks clients by the amount they paid inside (from, to).
func (r *Repository) BestClients(ctx context.Context, from, to time.Time, limit int) ([]domain.ClientTotal, error) {
	query := `
        SELECT p.id, p.first_name, p.last_name, p.profession, p.balance, p.type, SUM(j.price) AS total_spent
        FROM jobs j
        JOIN contracts c ON c.id = j.contract_id
        JOIN profiles p ON p.id = c.client_id
        WHERE j.paid AND j.payment_date > $1 AND j.payment_date < $2
        GROUP BY p.id
        ORDER BY total_spent DESC, p.id
        LIMIT $3
    `
	rows, err := r.db.Query(ctx, query, from, to, limit)
	if err != nil {
		zap.L().Error("can't get best clients", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var totals []domain.ClientTotal
	for rows.Next() {
		var ct domain.ClientTotal
		err := rows.Scan(&ct.Client.ID, &ct.Client.FirstName, &ct.Client.LastName, &ct.Client.Profession, &ct.Client.Balance, &ct.Client.Type, &ct.TotalSpent)
		if err != nil {
			zap.L().Error("can't scan best client row", zap.Error(err))
			return nil, err
		}
		totals = append(totals, ct)
	}
	return totals, nil
}
