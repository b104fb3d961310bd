package services

import (
	"context"
	"time"

	"ellp/voluntariado/internal/common"
	"ellp/voluntariado/internal/db/repositories"
	"ellp/voluntariado/internal/models/dtos"

	"golang.org/x/sync/errgroup"
)

const (
	dashboardCacheKey = "dashboard:indicators"
	dashboardCacheTTL = 30 * time.Second
)

// DashboardService aggregates the program indicators. The four counts run
// in parallel and the result is cached briefly; indicators tolerate a
// little staleness.
type DashboardService struct {
	voluntarios *repositories.VoluntarioRepository
	oficinas    *repositories.OficinaRepository
	termos      *repositories.TermoLogRepository
	cache       common.CacheInterface
}

func NewDashboardService(
	voluntarios *repositories.VoluntarioRepository,
	oficinas *repositories.OficinaRepository,
	termos *repositories.TermoLogRepository,
	cache common.CacheInterface,
) *DashboardService {
	return &DashboardService{
		voluntarios: voluntarios,
		oficinas:    oficinas,
		termos:      termos,
		cache:       cache,
	}
}

func (s *DashboardService) Indicators(ctx context.Context) (*dtos.DashboardResponse, error) {
	if s.cache == nil {
		return s.load(ctx)
	}

	val, err := s.cache.GetOrSet(dashboardCacheKey, dashboardCacheTTL, func() (any, error) {
		return s.load(ctx)
	})
	if err != nil {
		return nil, err
	}

	resp, ok := val.(*dtos.DashboardResponse)
	if !ok {
		// Foreign value under our key; recount rather than fail the request.
		return s.load(ctx)
	}
	return resp, nil
}

func (s *DashboardService) load(ctx context.Context) (*dtos.DashboardResponse, error) {
	var resp dtos.DashboardResponse

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.voluntarios.CountByAtivo(gctx, true)
		resp.TotalVoluntariosAtivos = n
		return err
	})
	g.Go(func() error {
		n, err := s.voluntarios.CountByAtivo(gctx, false)
		resp.TotalVoluntariosInativos = n
		return err
	})
	g.Go(func() error {
		n, err := s.oficinas.Count(gctx)
		resp.TotalOficinas = n
		return err
	})
	g.Go(func() error {
		n, err := s.termos.Count(gctx)
		resp.TotalTermosGerados = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &resp, nil
}
