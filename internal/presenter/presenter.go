package presenter

import (
	"github.com/fazamuttaqien/statusreply/internal/config"
	"github.com/fazamuttaqien/statusreply/internal/controller"
	"github.com/fazamuttaqien/statusreply/internal/repository"
)

type Presenter struct {
	Controllers *controller.Controller
}

func New(contacts repository.ContactRepository, admin config.AdminConfig, db controller.Pinger) Presenter {
	controllers := controller.New(contacts, admin, db)
	return Presenter{
		Controllers: controllers,
	}
}
