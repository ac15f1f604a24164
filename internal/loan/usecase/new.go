package usecase

import (
	"time"

	"library-loans/internal/loan/repository"
	"library-loans/internal/metrics"
	pkgLog "library-loans/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	repo    repository.Repository
	catalog repository.CatalogRepository
	metrics metrics.Recorder
	now     func() time.Time
}

// New creates a new loan UseCase instance. rec may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	catalog repository.CatalogRepository,
	rec metrics.Recorder,
) *implUseCase {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &implUseCase{
		l:       l,
		repo:    repo,
		catalog: catalog,
		metrics: rec,
		now:     time.Now,
	}
}
