package dto

import (
	"time"

	"github.com/SscSPs/todo_backend/internal/core/domain"
)

// CreateTodoRequest is the payload for creating a todo.
type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required,notblank,max=255"`
	Description string `json:"description" binding:"max=5000"`
}

// UpdateTodoRequest is a partial update; nil fields are left untouched.
type UpdateTodoRequest struct {
	Title       *string `json:"title" binding:"omitempty,notblank,max=255"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
}

type TodoResponse struct {
	TodoID      string    `json:"todoID"`
	Owner       string    `json:"owner"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ToTodoResponse(todo *domain.Todo) TodoResponse {
	return TodoResponse{
		TodoID:      todo.TodoID,
		Owner:       todo.UserID,
		Title:       todo.Title,
		Description: todo.Description,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.LastUpdatedAt,
	}
}

// ToTodoResponseList never returns nil so an empty list serialises as [].
func ToTodoResponseList(todos []domain.Todo) []TodoResponse {
	out := make([]TodoResponse, len(todos))
	for i := range todos {
		out[i] = ToTodoResponse(&todos[i])
	}
	return out
}
