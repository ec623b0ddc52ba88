package pgsql

import (
	portsrepo "github.com/SscSPs/todo_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository onto a shared pool (normally a *pgxpool.Pool).
func NewRepositoryProvider(dbPool PgxPool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo: newPgxUserRepository(dbPool),
		TodoRepo: newPgxTodoRepository(dbPool),
	}
}
