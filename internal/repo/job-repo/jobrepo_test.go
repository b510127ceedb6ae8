package jobrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/jobpay/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func jobRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "contract_id", "description", "price", "paid", "payment_date"})
}

func TestRepository_FindUnpaidActive(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT j.id, j.contract_id, j.description, j.price, j.paid, j.payment_date FROM jobs j JOIN contracts c ON c.id = j.contract_id WHERE c.status = 'in_progress' AND (c.client_id = $1 OR c.contractor_id = $1) AND NOT j.paid ORDER BY j.id`)

	tests := []struct {
		name      string
		profileID int
		mockSetup func()
		expectErr bool
		result    []domain.Job
	}{
		{
			name:      "Unpaid jobs on active contracts",
			profileID: 1,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(1).
					WillReturnRows(jobRows().
						AddRow(200, 2, "work", 201.0, false, nil).
						AddRow(201, 2, "work", 200.0, false, nil))
			},
			result: []domain.Job{
				{ID: 200, ContractID: 2, Description: "work", Price: 201, Paid: false},
				{ID: 201, ContractID: 2, Description: "work", Price: 200, Paid: false},
			},
		},
		{
			name:      "No unpaid jobs",
			profileID: 5,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(5).
					WillReturnRows(jobRows())
			},
			result: nil,
		},
		{
			name:      "Database error",
			profileID: 1,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindUnpaidActive(context.Background(), tt.profileID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindPayableJob(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT j.id, j.contract_id, j.description, j.price, j.paid, j.payment_date FROM jobs j JOIN contracts c ON c.id = j.contract_id WHERE j.id = $1 AND c.client_id = $2 AND NOT j.paid FOR UPDATE OF j`)

	tests := []struct {
		name      string
		jobID     int
		clientID  int
		mockSetup func()
		expectErr bool
		result    *domain.Job
	}{
		{
			name:     "Payable job locked for the client",
			jobID:    200,
			clientID: 1,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(200, 1).
					WillReturnRows(jobRows().AddRow(200, 2, "work", 201.0, false, nil))
			},
			result: &domain.Job{ID: 200, ContractID: 2, Description: "work", Price: 201, Paid: false},
		},
		{
			name:     "Paid or foreign job returns nothing",
			jobID:    200,
			clientID: 2,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(200, 2).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:     "Database error",
			jobID:    200,
			clientID: 1,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(200, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindPayableJob(context.Background(), tt.jobID, tt.clientID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_GetUnpaidTotalByClient(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT COALESCE(SUM(j.price), 0) FROM jobs j JOIN contracts c ON c.id = j.contract_id WHERE c.client_id = $1 AND NOT j.paid`)

	tests := []struct {
		name      string
		clientID  int
		mockSetup func()
		expectErr bool
		result    float64
	}{
		{
			name:     "Sum over all contracts",
			clientID: 1,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(401.0))
			},
			result: 401,
		},
		{
			name:     "No unpaid jobs sums to zero",
			clientID: 3,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(3).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(0.0))
			},
			result: 0,
		},
		{
			name:     "Database error",
			clientID: 1,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetUnpaidTotalByClient(context.Background(), tt.clientID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_MarkPaid(t *testing.T) {
	repo, mock := NewMock(t)
	paymentDate := time.Date(2020, 8, 15, 19, 11, 26, 0, time.UTC)

	query := regexp.QuoteMeta(`UPDATE jobs SET paid = TRUE, payment_date = $1 WHERE id = $2 RETURNING id, contract_id, description, price, paid, payment_date`)

	mock.ExpectQuery(query).
		WithArgs(paymentDate, 200).
		WillReturnRows(jobRows().AddRow(200, 2, "work", 201.0, true, &paymentDate))

	result, err := repo.MarkPaid(context.Background(), 200, paymentDate)
	assert.NoError(t, err)
	assert.Equal(t, &domain.Job{ID: 200, ContractID: 2, Description: "work", Price: 201, Paid: true, PaymentDate: &paymentDate}, result)

	mock.ExpectQuery(query).
		WithArgs(paymentDate, 200).
		WillReturnError(errors.New("database error"))

	result, err = repo.MarkPaid(context.Background(), 200, paymentDate)
	assert.Error(t, err)
	assert.Nil(t, result)
}
