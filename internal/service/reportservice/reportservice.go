package reportservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/jobpay/internal/domain"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// DefaultClientsLimit is how many clients a best-clients report returns
// when the caller doesn't ask for a specific count.
const DefaultClientsLimit = 2

type Repo interface {
	BestProfession(ctx context.Context, from, to time.Time) (*domain.ProfessionTotal, error)
	BestClients(ctx context.Context, from, to time.Time, limit int) ([]domain.ClientTotal, error)
}

type Service struct {
	reportRepo Repo
}

func New(reportRepo Repo) *Service {
	return &Service{
		reportRepo: reportRepo,
	}
}

var (
	ErrInvalidRange    = errors.New("invalid report range")
	ErrNoPaidJobsFound = errors.New("no paid jobs in range")
)

// BestProfession returns the profession that earned the most from jobs
// paid inside the given date range.
func (s *Service) BestProfession(ctx context.Context, start, end string) (string, error) {
	from, to, err := parseWindow(start, end)
	if err != nil {
		return "", err
	}

	result, err := s.reportRepo.BestProfession(ctx, from, to)
	if err != nil {
		zap.L().Error("failed to get best profession", zap.Error(err))
		return "", err
	}
	if result == nil {
		return "", ErrNoPaidJobsFound
	}
	return result.Profession, nil
}

// BestClients ranks the clients that paid the most inside the given date
// range. An empty window is a valid empty result.
func (s *Service) BestClients(ctx context.Context, start, end string, limit int) ([]domain.ClientTotal, error) {
	from, to, err := parseWindow(start, end)
	if err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, ErrInvalidRange
	}

	totals, err := s.reportRepo.BestClients(ctx, from, to, limit)
	if err != nil {
		zap.L().Error("failed to get best clients", zap.Error(err))
		return nil, err
	}
	return totals, nil
}

// parseWindow turns calendar dates into the half-open payment window
// (start of the first day, start of the day after the last day): payments
// at the start instant are excluded, payments anywhere on the end day are
// included.
func parseWindow(start, end string) (time.Time, time.Time, error) {
	from, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	to, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return from, to.AddDate(0, 0, 1), nil
}
