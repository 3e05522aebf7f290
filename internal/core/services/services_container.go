package services

import (
	portsrepo "github.com/lesnaszkolka/ino-backend/internal/core/ports/repositories"
	portssvc "github.com/lesnaszkolka/ino-backend/internal/core/ports/services"
	"github.com/lesnaszkolka/ino-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Event:  NewEventService(repos.EventRepo),
		Result: NewResultService(repos.ResultRepo),
		User:   NewUserService(repos.UserRepo),
		Auth:   NewAzureAuthService(cfg, repos.UserRepo),
	}
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.EventSvcFacade  = (*eventService)(nil)
	_ portssvc.ResultSvcFacade = (*resultService)(nil)
	_ portssvc.UserSvcFacade   = (*userService)(nil)
	_ portssvc.AuthSvcFacade   = (*azureAuthService)(nil)
)
