package contractrepo

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

// FindVisibleByID returns the contract only when the profile is one of its
// parties. A foreign contract and a missing one are the same outcome.
func (r *Repository) FindVisibleByID(ctx context.Context, contractID, profileID int) (*domain.Contract, error) {
	query := `
        SELECT id, terms, status, client_id, contractor_id, created_at
        FROM contracts
        WHERE id = $1 AND (client_id = $2 OR contractor_id = $2)
    `
	row := r.db.QueryRow(ctx, query, contractID, profileID)

	var contract domain.Contract
	err := row.Scan(&contract.ID, &contract.Terms, &contract.Status, &contract.ClientID, &contract.ContractorID, &contract.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find contract", zap.Error(err))
		return nil, err
	}
	return &contract, nil
}

func (r *Repository) FindActiveByProfile(ctx context.Context, profileID int) ([]domain.Contract, error) {
	query := `
        SELECT id, terms, status, client_id, contractor_id, created_at
        FROM contracts
        WHERE status <> 'terminated' AND (client_id = $1 OR contractor_id = $1)
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		zap.L().Error("can't get contracts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		var contract domain.Contract
		err := rows.Scan(&contract.ID, &contract.Terms, &contract.Status, &contract.ClientID, &contract.ContractorID, &contract.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan contract row", zap.Error(err))
			return nil, err
		}
		contracts = append(contracts, contract)
	}
	return contracts, nil
}

// GetOwners resolves the payment direction for a contract.
func (r *Repository) GetOwners(ctx context.Context, contractID int) (clientID, contractorID int, err error) {
	query := `
        SELECT client_id, contractor_id
        FROM contracts
        WHERE id = $1
    `
	err = r.db.QueryRow(ctx, query, contractID).Scan(&clientID, &contractorID)
	if err != nil {
		zap.L().Error("can't get contract owners", zap.Error(err))
		return 0, 0, err
	}
	return clientID, contractorID, nil
}
