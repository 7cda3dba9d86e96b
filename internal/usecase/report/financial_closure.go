package report

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-frontdesk/internal/cache"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/frontdesk"
	domain "github.com/BruksfildServices01/barber-frontdesk/internal/domain/report"
	"github.com/BruksfildServices01/barber-frontdesk/internal/dto"
	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
	"github.com/BruksfildServices01/barber-frontdesk/internal/timezone"
)

const (
	minYear = 2000
	maxYear = 2100
)

type GetFinancialClosure struct {
	repo  frontdesk.Repository
	cache cache.ReportCache
	now   timezone.Clock
	log   *zap.Logger
}

func NewGetFinancialClosure(
	repo frontdesk.Repository,
	reportCache cache.ReportCache,
	now timezone.Clock,
	log *zap.Logger,
) *GetFinancialClosure {
	if reportCache == nil {
		reportCache = cache.NopReportCache{}
	}
	return &GetFinancialClosure{
		repo:  repo,
		cache: reportCache,
		now:   now,
		log:   log,
	}
}

// Execute builds the closure for year. Zero means the current year.
func (uc *GetFinancialClosure) Execute(
	ctx context.Context,
	year int,
) (*dto.FinancialClosureDTO, error) {

	now := uc.now()
	if year == 0 {
		year = now.Year()
	}
	if year < minYear || year > maxYear {
		return nil, httperr.ErrBusiness("invalid_year")
	}

	snap, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	key := cache.ReportKey(snap.Version, year, now)
	if cached, ok := uc.cache.Get(ctx, key); ok {
		uc.log.Debug("financial closure cache hit", zap.String("key", key))
		return cached, nil
	}

	rep := domain.BuildFinancialReport(snap.Appointments, year, now)

	out := &dto.FinancialClosureDTO{
		Year:           rep.Year,
		AnnualRevenue:  rep.AnnualRevenue,
		AnnualServices: rep.AnnualServices,
		AverageMonthly: domain.AverageMonthlyRevenue(rep, now),
		AverageDivisor: domain.AverageDivisor(year, now),
		History:        rep.History,
		GeneratedAt:    now,
	}

	uc.cache.Set(ctx, key, out)
	return out, nil
}
