package usecase

import (
	"time"

	"em-agent/internal/productivity"
	"em-agent/internal/productivity/repository"
	"em-agent/pkg/log"
)

// implUseCase is the private implementation of productivity.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time
}

// New creates a new productivity UseCase implementation.
func New(repo repository.Repository, l log.Logger) productivity.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}
