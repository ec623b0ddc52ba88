package handlers

import (
	portssvc "github.com/SscSPs/todo_backend/internal/core/ports/services"
	"github.com/SscSPs/todo_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// todoHandler serves the caller's own todos. Ownership is enforced by the service.
type todoHandler struct {
	todoService portssvc.TodoSvcFacade
}

func newTodoHandler(ts portssvc.TodoSvcFacade) *todoHandler {
	return &todoHandler{todoService: ts}
}

func registerTodoRoutes(gated *gin.RouterGroup, h *todoHandler) {
	todos := gated.Group("/todos")
	{
		todos.POST("", h.createTodo)
		todos.GET("", h.listTodos)
		todos.GET("/:todoId", h.getTodo)
		todos.PATCH("/:todoId", h.updateTodo)
		todos.DELETE("/:todoId", h.deleteTodo)
	}
}

// createTodo godoc
// @Summary Create a todo
// @Description Creates a todo owned by the authenticated user.
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body dto.CreateTodoRequest true "Todo details"
// @Success 200 {object} dto.APIResponse{data=dto.TodoResponse}
// @Failure 400 {object} dto.APIErrorResponse "Title is required!"
// @Failure 401 {object} dto.APIErrorResponse
// @Security BearerAuth
// @Router /todos [post]
func (h *todoHandler) createTodo(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err, "Title is required!")
		return
	}

	todo, err := h.todoService.CreateTodo(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	writeSuccess(c, dto.ToTodoResponse(todo), "Todo added successfully")
}

// listTodos godoc
// @Summary List todos
// @Description Lists the authenticated user's todos in creation order.
// @Tags todos
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.TodoResponse}
// @Failure 401 {object} dto.APIErrorResponse
// @Security BearerAuth
// @Router /todos [get]
func (h *todoHandler) listTodos(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	todos, err := h.todoService.ListTodos(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	writeSuccess(c, dto.ToTodoResponseList(todos), "Todos fetched successfully")
}

// getTodo godoc
// @Summary Get a todo
// @Tags todos
// @Produce json
// @Param todoId path string true "Todo ID"
// @Success 200 {object} dto.APIResponse{data=dto.TodoResponse}
// @Failure 401 {object} dto.APIErrorResponse
// @Failure 404 {object} dto.APIErrorResponse "Todo not found"
// @Security BearerAuth
// @Router /todos/{todoId} [get]
func (h *todoHandler) getTodo(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	todo, err := h.todoService.GetTodoByID(c.Request.Context(), userID, c.Param("todoId"))
	if err != nil {
		writeError(c, err)
		return
	}

	writeSuccess(c, dto.ToTodoResponse(todo), "Todo fetched successfully")
}

// updateTodo godoc
// @Summary Update a todo
// @Description Partially updates title and/or description.
// @Tags todos
// @Accept json
// @Produce json
// @Param todoId path string true "Todo ID"
// @Param todo body dto.UpdateTodoRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.TodoResponse}
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Failure 404 {object} dto.APIErrorResponse "Todo not found"
// @Security BearerAuth
// @Router /todos/{todoId} [patch]
func (h *todoHandler) updateTodo(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err, "Invalid todo details")
		return
	}

	todo, err := h.todoService.UpdateTodo(c.Request.Context(), userID, c.Param("todoId"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	writeSuccess(c, dto.ToTodoResponse(todo), "Todo updated successfully")
}

// deleteTodo godoc
// @Summary Delete a todo
// @Tags todos
// @Produce json
// @Param todoId path string true "Todo ID"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Failure 404 {object} dto.APIErrorResponse "Todo not found"
// @Security BearerAuth
// @Router /todos/{todoId} [delete]
func (h *todoHandler) deleteTodo(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.todoService.DeleteTodo(c.Request.Context(), userID, c.Param("todoId")); err != nil {
		writeError(c, err)
		return
	}

	writeSuccess(c, dto.EmptyData{}, "Todo deleted successfully")
}
