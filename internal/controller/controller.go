package controller

import (
	"context"
	"time"

	"github.com/fazamuttaqien/statusreply/internal/config"
	"github.com/fazamuttaqien/statusreply/internal/repository"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Controller struct {
	contacts  repository.ContactRepository
	admin     config.AdminConfig
	db        Pinger
	startedAt time.Time
}

func New(contacts repository.ContactRepository, admin config.AdminConfig, db Pinger) *Controller {
	return &Controller{
		contacts:  contacts,
		admin:     admin,
		db:        db,
		startedAt: time.Now(),
	}
}
