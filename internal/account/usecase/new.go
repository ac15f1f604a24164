package usecase

import (
	"library-loans/internal/account/repository"
	"library-loans/pkg/log"
)

// implUseCase is the private implementation of account.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new account UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
