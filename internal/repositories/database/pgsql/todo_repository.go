package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/todo_backend/internal/apperrors"
	"github.com/SscSPs/todo_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/todo_backend/internal/core/ports/repositories"
	"github.com/SscSPs/todo_backend/internal/models"
	"github.com/SscSPs/todo_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxTodoRepository struct {
	BaseRepository
}

func newPgxTodoRepository(db PgxPool) portsrepo.TodoRepositoryFacade {
	return &PgxTodoRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.TodoRepositoryFacade = (*PgxTodoRepository)(nil)

const (
	todosTable = "todos"

	selectTodoFields = `todo_id, user_id, title, description, created_at, last_updated_at`

	insertTodoQuery = `INSERT INTO ` + todosTable + ` (todo_id, user_id, title, description, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	findTodoByIDQuery = `SELECT ` + selectTodoFields + ` FROM ` + todosTable + ` WHERE todo_id = $1`

	listTodosByUserQuery = `SELECT ` + selectTodoFields + ` FROM ` + todosTable + `
		WHERE user_id = $1
		ORDER BY created_at ASC, todo_id ASC`

	updateTodoQuery = `UPDATE ` + todosTable + `
		SET title = $1, description = $2, last_updated_at = $3
		WHERE todo_id = $4 AND user_id = $5`

	deleteTodoQuery = `DELETE FROM ` + todosTable + ` WHERE todo_id = $1 AND user_id = $2`
)

func scanTodo(row pgx.Row) (models.Todo, error) {
	var m models.Todo
	err := row.Scan(
		&m.TodoID,
		&m.UserID,
		&m.Title,
		&m.Description,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxTodoRepository) SaveTodo(ctx context.Context, todo domain.Todo) error {
	m := mapping.ToModelTodo(todo)
	_, err := r.exec(ctx, insertTodoQuery,
		m.TodoID,
		m.UserID,
		m.Title,
		m.Description,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("todo %s: %w", m.TodoID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save todo: %w", err)
	}
	return nil
}

func (r *PgxTodoRepository) FindTodoByID(ctx context.Context, todoID string) (*domain.Todo, error) {
	m, err := scanTodo(r.queryRow(ctx, findTodoByIDQuery, todoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find todo by ID %s: %w", todoID, err)
	}
	todo := mapping.ToDomainTodo(m)
	return &todo, nil
}

func (r *PgxTodoRepository) ListTodosByUser(ctx context.Context, userID string) ([]domain.Todo, error) {
	rows, err := r.query(ctx, listTodosByUserQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer rows.Close()

	modelTodos := []models.Todo{}
	for rows.Next() {
		m, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo row: %w", err)
		}
		modelTodos = append(modelTodos, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todo rows: %w", err)
	}

	return mapping.ToDomainTodoSlice(modelTodos), nil
}

func (r *PgxTodoRepository) UpdateTodo(ctx context.Context, todo domain.Todo) error {
	cmdTag, err := r.exec(ctx, updateTodoQuery,
		todo.Title,
		todo.Description,
		todo.LastUpdatedAt,
		todo.TodoID,
		todo.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update todo query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("todo %s: %w", todo.TodoID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTodoRepository) DeleteTodo(ctx context.Context, todoID string, userID string) error {
	cmdTag, err := r.exec(ctx, deleteTodoQuery, todoID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("todo %s: %w", todoID, apperrors.ErrNotFound)
	}
	return nil
}
