package services_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/todo_backend/internal/apperrors"
	"github.com/SscSPs/todo_backend/internal/core/domain"
	portssvc "github.com/SscSPs/todo_backend/internal/core/ports/services"
	"github.com/SscSPs/todo_backend/internal/core/services"
	"github.com/SscSPs/todo_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TodoServiceTestSuite struct {
	suite.Suite
	mockTodoRepo *MockTodoRepository
	service      portssvc.TodoSvcFacade

	ctx     context.Context
	ownerID string
	todo    *domain.Todo
}

func (suite *TodoServiceTestSuite) SetupTest() {
	suite.mockTodoRepo = new(MockTodoRepository)
	suite.service = services.NewTodoService(suite.mockTodoRepo)

	suite.ctx = context.Background()
	suite.ownerID = uuid.NewString()
	suite.todo = &domain.Todo{
		TodoID:      uuid.NewString(),
		UserID:      suite.ownerID,
		Title:       "Buy milk",
		Description: "2 litres",
		AuditFields: domain.AuditFields{
			CreatedAt:     time.Now().Add(-time.Hour),
			LastUpdatedAt: time.Now().Add(-time.Hour),
		},
	}
}

// --- CreateTodo Tests ---
func (suite *TodoServiceTestSuite) TestCreateTodo_Success() {
	req := dto.CreateTodoRequest{Title: "  Write report ", Description: "Q3"}

	suite.mockTodoRepo.On("SaveTodo", suite.ctx, mock.MatchedBy(func(todo domain.Todo) bool {
		return todo.UserID == suite.ownerID && todo.Title == "Write report" && todo.Description == "Q3" && todo.TodoID != ""
	})).Return(nil).Once()

	todo, err := suite.service.CreateTodo(suite.ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Equal(suite.ownerID, todo.UserID)
	suite.Equal("Write report", todo.Title)
	suite.Equal(todo.CreatedAt, todo.LastUpdatedAt)
	_, parseErr := uuid.Parse(todo.TodoID)
	suite.NoError(parseErr)
	suite.mockTodoRepo.AssertExpectations(suite.T())
}

func (suite *TodoServiceTestSuite) TestCreateTodo_BlankTitle() {
	todo, err := suite.service.CreateTodo(suite.ctx, suite.ownerID, dto.CreateTodoRequest{Title: "   "})

	suite.Nil(todo)
	appErr := apperrors.FromError(err)
	suite.Equal(http.StatusBadRequest, appErr.Code)
	suite.Equal("Title is required!", appErr.Message)
	suite.mockTodoRepo.AssertNotCalled(suite.T(), "SaveTodo", mock.Anything, mock.Anything)
}

func (suite *TodoServiceTestSuite) TestCreateTodo_RepoError() {
	suite.mockTodoRepo.On("SaveTodo", suite.ctx, mock.AnythingOfType("domain.Todo")).Return(assert.AnError).Once()

	todo, err := suite.service.CreateTodo(suite.ctx, suite.ownerID, dto.CreateTodoRequest{Title: "x"})

	suite.Nil(todo)
	suite.ErrorIs(err, assert.AnError)
}

// --- ListTodos Tests ---
func (suite *TodoServiceTestSuite) TestListTodos_Success() {
	suite.mockTodoRepo.On("ListTodosByUser", suite.ctx, suite.ownerID).Return([]domain.Todo{*suite.todo}, nil).Once()

	todos, err := suite.service.ListTodos(suite.ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.Len(todos, 1)
	suite.Equal(suite.todo.TodoID, todos[0].TodoID)
}

func (suite *TodoServiceTestSuite) TestListTodos_EmptyIsNotNil() {
	suite.mockTodoRepo.On("ListTodosByUser", suite.ctx, suite.ownerID).Return(nil, nil).Once()

	todos, err := suite.service.ListTodos(suite.ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.NotNil(todos)
	suite.Empty(todos)
}

// --- GetTodoByID Tests ---
func (suite *TodoServiceTestSuite) TestGetTodoByID_Owner() {
	suite.mockTodoRepo.On("FindTodoByID", suite.ctx, suite.todo.TodoID).Return(suite.todo, nil).Once()

	todo, err := suite.service.GetTodoByID(suite.ctx, suite.ownerID, suite.todo.TodoID)

	suite.Require().NoError(err)
	suite.Equal(suite.todo, todo)
}

func (suite *TodoServiceTestSuite) TestGetTodoByID_OtherUserSeesNotFound() {
	suite.mockTodoRepo.On("FindTodoByID", suite.ctx, suite.todo.TodoID).Return(suite.todo, nil).Once()

	todo, err := suite.service.GetTodoByID(suite.ctx, uuid.NewString(), suite.todo.TodoID)

	suite.Nil(todo)
	appErr := apperrors.FromError(err)
	suite.Equal(http.StatusNotFound, appErr.Code)
	suite.Equal("Todo not found", appErr.Message)
}

func (suite *TodoServiceTestSuite) TestGetTodoByID_Missing() {
	todoID := uuid.NewString()
	suite.mockTodoRepo.On("FindTodoByID", suite.ctx, todoID).Return(nil, apperrors.ErrNotFound).Once()

	todo, err := suite.service.GetTodoByID(suite.ctx, suite.ownerID, todoID)

	suite.Nil(todo)
	suite.Equal("Todo not found", apperrors.FromError(err).Message)
}

func (suite *TodoServiceTestSuite) TestGetTodoByID_MalformedID() {
	todo, err := suite.service.GetTodoByID(suite.ctx, suite.ownerID, "not-a-uuid")

	suite.Nil(todo)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTodoRepo.AssertNotCalled(suite.T(), "FindTodoByID", mock.Anything, mock.Anything)
}

// --- UpdateTodo Tests ---
func (suite *TodoServiceTestSuite) TestUpdateTodo_PartialUpdate() {
	newDescription := "3 litres"
	originalTitle := suite.todo.Title
	originalTimestamp := suite.todo.LastUpdatedAt

	suite.mockTodoRepo.On("FindTodoByID", suite.ctx, suite.todo.TodoID).Return(suite.todo, nil).Once()
	suite.mockTodoRepo.On("UpdateTodo", suite.ctx, mock.MatchedBy(func(todo domain.Todo) bool {
		return todo.Title == originalTitle && todo.Description == newDescription && todo.LastUpdatedAt.After(originalTimestamp)
	})).Return(nil).Once()

	todo, err := suite.service.UpdateTodo(suite.ctx, suite.ownerID, suite.todo.TodoID, dto.UpdateTodoRequest{Description: &newDescription})

	suite.Require().NoError(err)
	suite.Equal(originalTitle, todo.Title)
	suite.Equal(newDescription, todo.Description)
	suite.mockTodoRepo.AssertExpectations(suite.T())
}

func (suite *TodoServiceTestSuite) TestUpdateTodo_BlankTitle() {
	blank := " "
	suite.mockTodoRepo.On("FindTodoByID", suite.ctx, suite.todo.TodoID).Return(suite.todo, nil).Once()

	todo, err := suite.service.UpdateTodo(suite.ctx, suite.ownerID, suite.todo.TodoID, dto.UpdateTodoRequest{Title: &blank})

	suite.Nil(todo)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTodoRepo.AssertNotCalled(suite.T(), "UpdateTodo", mock.Anything, mock.Anything)
}

func (suite *TodoServiceTestSuite) TestUpdateTodo_NotOwner() {
	title := "hijacked"
	suite.mockTodoRepo.On("FindTodoByID", suite.ctx, suite.todo.TodoID).Return(suite.todo, nil).Once()

	todo, err := suite.service.UpdateTodo(suite.ctx, uuid.NewString(), suite.todo.TodoID, dto.UpdateTodoRequest{Title: &title})

	suite.Nil(todo)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("Buy milk", suite.todo.Title)
	suite.mockTodoRepo.AssertNotCalled(suite.T(), "UpdateTodo", mock.Anything, mock.Anything)
}

// --- DeleteTodo Tests ---
func (suite *TodoServiceTestSuite) TestDeleteTodo_Success() {
	suite.mockTodoRepo.On("FindTodoByID", suite.ctx, suite.todo.TodoID).Return(suite.todo, nil).Once()
	suite.mockTodoRepo.On("DeleteTodo", suite.ctx, suite.todo.TodoID, suite.ownerID).Return(nil).Once()

	suite.NoError(suite.service.DeleteTodo(suite.ctx, suite.ownerID, suite.todo.TodoID))
	suite.mockTodoRepo.AssertExpectations(suite.T())
}

func (suite *TodoServiceTestSuite) TestDeleteTodo_NotOwner() {
	suite.mockTodoRepo.On("FindTodoByID", suite.ctx, suite.todo.TodoID).Return(suite.todo, nil).Once()

	err := suite.service.DeleteTodo(suite.ctx, uuid.NewString(), suite.todo.TodoID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTodoRepo.AssertNotCalled(suite.T(), "DeleteTodo", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TodoServiceTestSuite) TestDeleteTodo_RaceWithConcurrentDelete() {
	suite.mockTodoRepo.On("FindTodoByID", suite.ctx, suite.todo.TodoID).Return(suite.todo, nil).Once()
	suite.mockTodoRepo.On("DeleteTodo", suite.ctx, suite.todo.TodoID, suite.ownerID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTodo(suite.ctx, suite.ownerID, suite.todo.TodoID)

	suite.Equal("Todo not found", apperrors.FromError(err).Message)
}

func TestTodoServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TodoServiceTestSuite))
}
