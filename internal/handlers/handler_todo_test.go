package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/todo_backend/internal/apperrors"
	"github.com/SscSPs/todo_backend/internal/core/domain"
	portssvc "github.com/SscSPs/todo_backend/internal/core/ports/services"
	"github.com/SscSPs/todo_backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TodoHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockTodoSvc *MockTodoService
	user        *domain.User
	todo        *domain.Todo
}

func (suite *TodoHandlerTestSuite) SetupTest() {
	suite.mockTodoSvc = new(MockTodoService)
	session := new(MockSessionService)
	suite.router = newTestRouter(testConfig(), &portssvc.ServiceContainer{
		User:    new(MockUserService),
		Todo:    suite.mockTodoSvc,
		Session: session,
	})

	suite.user = &domain.User{UserID: uuid.NewString(), Name: "Ada", Email: "ada@example.com"}
	now := time.Now().UTC()
	suite.todo = &domain.Todo{
		TodoID:      uuid.NewString(),
		UserID:      suite.user.UserID,
		Title:       "Buy milk",
		Description: "2 litres",
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	session.On("Authenticate", mock.Anything, "valid-token").Return(suite.user, nil).Maybe()
}

func (suite *TodoHandlerTestSuite) TestCreateTodo_Success() {
	req := dto.CreateTodoRequest{Title: "Buy milk", Description: "2 litres"}
	suite.mockTodoSvc.On("CreateTodo", mock.Anything, suite.user.UserID, req).Return(suite.todo, nil).Once()

	rec := perform(suite.router, http.MethodPost, "/api/v1/todos", req, withBearer("valid-token"))

	suite.Equal(http.StatusOK, rec.Code)
	env := decodeEnvelope(rec)
	suite.Equal("Todo added successfully", env.Message)

	var data dto.TodoResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &data))
	suite.Equal(suite.todo.TodoID, data.TodoID)
	suite.Equal(suite.user.UserID, data.Owner)
}

func (suite *TodoHandlerTestSuite) TestCreateTodo_MissingTitle() {
	rec := perform(suite.router, http.MethodPost, "/api/v1/todos", map[string]string{"description": "no title"}, withBearer("valid-token"))

	suite.Equal(http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(rec)
	suite.Equal("Title is required!", env.Message)
	suite.Equal([]string{"title is required"}, env.Errors)
	suite.mockTodoSvc.AssertNotCalled(suite.T(), "CreateTodo", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TodoHandlerTestSuite) TestCreateTodo_Unauthenticated() {
	rec := perform(suite.router, http.MethodPost, "/api/v1/todos", dto.CreateTodoRequest{Title: "x"})

	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.mockTodoSvc.AssertNotCalled(suite.T(), "CreateTodo", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TodoHandlerTestSuite) TestListTodos_Empty() {
	suite.mockTodoSvc.On("ListTodos", mock.Anything, suite.user.UserID).Return([]domain.Todo{}, nil).Once()

	rec := perform(suite.router, http.MethodGet, "/api/v1/todos", nil, withBearer("valid-token"))

	suite.Equal(http.StatusOK, rec.Code)
	env := decodeEnvelope(rec)
	suite.Equal("Todos fetched successfully", env.Message)
	suite.JSONEq(`[]`, string(env.Data))
}

func (suite *TodoHandlerTestSuite) TestListTodos() {
	suite.mockTodoSvc.On("ListTodos", mock.Anything, suite.user.UserID).Return([]domain.Todo{*suite.todo}, nil).Once()

	rec := perform(suite.router, http.MethodGet, "/api/v1/todos", nil, withBearer("valid-token"))

	var data []dto.TodoResponse
	suite.Require().NoError(json.Unmarshal(decodeEnvelope(rec).Data, &data))
	suite.Len(data, 1)
	suite.Equal("Buy milk", data[0].Title)
}

func (suite *TodoHandlerTestSuite) TestGetTodo() {
	suite.mockTodoSvc.On("GetTodoByID", mock.Anything, suite.user.UserID, suite.todo.TodoID).Return(suite.todo, nil).Once()

	rec := perform(suite.router, http.MethodGet, "/api/v1/todos/"+suite.todo.TodoID, nil, withBearer("valid-token"))

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("Todo fetched successfully", decodeEnvelope(rec).Message)
}

func (suite *TodoHandlerTestSuite) TestGetTodo_NotFound() {
	suite.mockTodoSvc.On("GetTodoByID", mock.Anything, suite.user.UserID, "missing").Return(nil, apperrors.NewNotFoundError("Todo not found")).Once()

	rec := perform(suite.router, http.MethodGet, "/api/v1/todos/missing", nil, withBearer("valid-token"))

	suite.Equal(http.StatusNotFound, rec.Code)
	env := decodeEnvelope(rec)
	suite.False(env.Success)
	suite.Equal("Todo not found", env.Message)
}

func (suite *TodoHandlerTestSuite) TestUpdateTodo() {
	title := "Buy oat milk"
	updated := *suite.todo
	updated.Title = title
	suite.mockTodoSvc.On("UpdateTodo", mock.Anything, suite.user.UserID, suite.todo.TodoID, dto.UpdateTodoRequest{Title: &title}).Return(&updated, nil).Once()

	rec := perform(suite.router, http.MethodPatch, "/api/v1/todos/"+suite.todo.TodoID, map[string]string{"title": title}, withBearer("valid-token"))

	suite.Equal(http.StatusOK, rec.Code)
	env := decodeEnvelope(rec)
	suite.Equal("Todo updated successfully", env.Message)
	suite.Contains(string(env.Data), title)
}

func (suite *TodoHandlerTestSuite) TestUpdateTodo_BlankTitle() {
	rec := perform(suite.router, http.MethodPatch, "/api/v1/todos/"+suite.todo.TodoID, map[string]string{"title": "  "}, withBearer("valid-token"))

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.mockTodoSvc.AssertNotCalled(suite.T(), "UpdateTodo", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TodoHandlerTestSuite) TestDeleteTodo() {
	suite.mockTodoSvc.On("DeleteTodo", mock.Anything, suite.user.UserID, suite.todo.TodoID).Return(nil).Once()

	rec := perform(suite.router, http.MethodDelete, "/api/v1/todos/"+suite.todo.TodoID, nil, withBearer("valid-token"))

	suite.Equal(http.StatusOK, rec.Code)
	env := decodeEnvelope(rec)
	suite.Equal("Todo deleted successfully", env.Message)
	suite.JSONEq(`{}`, string(env.Data))
}

func (suite *TodoHandlerTestSuite) TestInternalErrorIsNotLeaked() {
	suite.mockTodoSvc.On("ListTodos", mock.Anything, suite.user.UserID).Return(nil, assert.AnError).Once()

	rec := perform(suite.router, http.MethodGet, "/api/v1/todos", nil, withBearer("valid-token"))

	suite.Equal(http.StatusInternalServerError, rec.Code)
	suite.Equal("Internal server error", decodeEnvelope(rec).Message)
	suite.NotContains(rec.Body.String(), assert.AnError.Error())
}

func TestTodoHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TodoHandlerTestSuite))
}
