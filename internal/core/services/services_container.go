package services

import (
	portsrepo "github.com/SscSPs/todo_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/todo_backend/internal/core/ports/services"
	"github.com/SscSPs/todo_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Todo = NewTodoService(repos.TodoRepo)
	container.Token = NewTokenService(cfg)
	container.Session = NewAuthService(container.User, container.Token)

	return container
}
