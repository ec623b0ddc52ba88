package mapping

import (
	"github.com/SscSPs/todo_backend/internal/core/domain"
	"github.com/SscSPs/todo_backend/internal/models"
)

func ToModelTodo(d domain.Todo) models.Todo {
	return models.Todo{
		TodoID:      d.TodoID,
		UserID:      d.UserID,
		Title:       d.Title,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainTodo(m models.Todo) domain.Todo {
	return domain.Todo{
		TodoID:      m.TodoID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTodoSlice converts a slice of model Todos to a slice of domain Todos
func ToDomainTodoSlice(ms []models.Todo) []domain.Todo {
	ds := make([]domain.Todo, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTodo(m)
	}
	return ds
}
