package jobrepo

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

// FindUnpaidActive lists unpaid jobs on in_progress contracts where the
// profile is either party.
func (r *Repository) FindUnpaidActive(ctx context.Context, profileID int) ([]domain.Job, error) {
	query := `
        SELECT j.id, j.contract_id, j.description, j.price, j.paid, j.payment_date
        FROM jobs j
        JOIN contracts c ON c.id = j.contract_id
        WHERE c.status = 'in_progress'
          AND (c.client_id = $1 OR c.contractor_id = $1)
          AND NOT j.paid
        ORDER BY j.id
    `
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		zap.L().Error("can't get unpaid jobs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		err := rows.Scan(&job.ID, &job.ContractID, &job.Description, &job.Price, &job.Paid, &job.PaymentDate)
		if err != nil {
			zap.L().Error("can't scan job row", zap.Error(err))
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// FindPayableJob returns the job only when it is unpaid and the profile is
// the client of its contract. Wrong owner, already paid and nonexistent all
// collapse to nil so callers can't probe foreign contracts. The job row is
// locked until the surrounding transaction ends.
func (r *Repository) FindPayableJob(ctx context.Context, jobID, clientID int) (*domain.Job, error) {
	query := `
        SELECT j.id, j.contract_id, j.description, j.price, j.paid, j.payment_date
        FROM jobs j
        JOIN contracts c ON c.id = j.contract_id
        WHERE j.id = $1 AND c.client_id = $2 AND NOT j.paid
        FOR UPDATE OF j
    `
	row := r.db.QueryRow(ctx, query, jobID, clientID)

	var job domain.Job
	err := row.Scan(&job.ID, &job.ContractID, &job.Description, &job.Price, &job.Paid, &job.PaymentDate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find payable job", zap.Error(err))
		return nil, err
	}
	return &job, nil
}

// GetUnpaidTotalByClient sums the outstanding obligations of a client over
// all their contracts. Contract status is deliberately ignored: an unpaid
// job on a terminated contract still counts toward the deposit cap base.
// An empty sum is 0.
func (r *Repository) GetUnpaidTotalByClient(ctx context.Context, clientID int) (float64, error) {
	query := `
        SELECT COALESCE(SUM(j.price), 0)
        FROM jobs j
        JOIN contracts c ON c.id = j.contract_id
        WHERE c.client_id = $1 AND NOT j.paid
    `
	var total float64
	err := r.db.QueryRow(ctx, query, clientID).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum unpaid jobs", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) MarkPaid(ctx context.Context, jobID int, paymentDate time.Time) (*domain.Job, error) {
	query := `
        UPDATE jobs
        SET paid = TRUE, payment_date = $1
        WHERE id = $2
        RETURNING id, contract_id, description, price, paid, payment_date
    `
	row := r.db.QueryRow(ctx, query, paymentDate, jobID)

	var job domain.Job
	err := row.Scan(&job.ID, &job.ContractID, &job.Description, &job.Price, &job.Paid, &job.PaymentDate)
	if err != nil {
		zap.L().Error("can't mark job paid", zap.Error(err))
		return nil, err
	}
	return &job, nil
}
