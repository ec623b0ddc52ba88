package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/todo_backend/internal/apperrors"
	portssvc "github.com/SscSPs/todo_backend/internal/core/ports/services"
	"github.com/SscSPs/todo_backend/internal/dto"
	"github.com/SscSPs/todo_backend/internal/middleware"
	"github.com/SscSPs/todo_backend/internal/platform/cookie"
	"github.com/gin-gonic/gin"
)

// userHandler handles registration, the session lifecycle and the current user's profile.
type userHandler struct {
	userService    portssvc.UserSvcFacade
	sessionService portssvc.SessionSvcFacade
	cookies        *cookie.Manager
}

func newUserHandler(us portssvc.UserSvcFacade, ss portssvc.SessionSvcFacade, cookies *cookie.Manager) *userHandler {
	return &userHandler{
		userService:    us,
		sessionService: ss,
		cookies:        cookies,
	}
}

// registerUserRoutes registers the public and the gated user routes.
func registerUserRoutes(public *gin.RouterGroup, gated *gin.RouterGroup, h *userHandler) {
	users := public.Group("/users")
	{
		users.POST("/register", h.register)
		users.POST("/login", h.login)
		users.POST("/refresh-access-token", h.refreshAccessToken)
	}

	me := gated.Group("/users")
	{
		me.POST("/logout", h.logout)
		me.GET("/user", h.getCurrentUser)
		me.PATCH("/user", h.updateCurrentUser)
		me.DELETE("/user", h.deleteCurrentUser)
	}
}

// register godoc
// @Summary Register a new user
// @Description Creates a user account. The email must not be in use.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "Registration details"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIErrorResponse "Missing fields"
// @Failure 409 {object} dto.APIErrorResponse "Email already registered"
// @Failure 500 {object} dto.APIErrorResponse
// @Router /users/register [post]
func (h *userHandler) register(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err, "All fields are required")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	writeSuccess(c, dto.ToUserResponse(user), "User registered successfully")
}

// login godoc
// @Summary Log in
// @Description Verifies credentials, starts a session and sets the accessToken and refreshToken cookies.
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 401 {object} dto.APIErrorResponse "Invalid credentials"
// @Failure 404 {object} dto.APIErrorResponse "User not found"
// @Router /users/login [post]
func (h *userHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err, "Email and password are required")
		return
	}

	session, err := h.sessionService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	h.cookies.SetSessionCookies(c, session)
	writeSuccess(c, dto.ToLoginResponse(session), "User logged in successfully")
}

// logout godoc
// @Summary Log out
// @Description Ends the caller's session and clears the token cookies.
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Security BearerAuth
// @Router /users/logout [post]
func (h *userHandler) logout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.sessionService.Logout(c.Request.Context(), userID); err != nil {
		writeError(c, err)
		return
	}

	h.cookies.ClearSessionCookies(c)
	writeSuccess(c, dto.EmptyData{}, "User logged out")
}

// refreshAccessToken godoc
// @Summary Refresh the access token
// @Description Exchanges the current refresh token (cookie, or refreshToken in the body) for a new token pair.
// @Tags users
// @Accept json
// @Produce json
// @Param token body dto.RefreshTokenRequest false "Refresh token when cookies are not used"
// @Success 200 {object} dto.APIResponse{data=dto.RefreshTokenResponse}
// @Failure 401 {object} dto.APIErrorResponse
// @Router /users/refresh-access-token [post]
func (h *userHandler) refreshAccessToken(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	refreshToken, err := h.cookies.Get(c, cookie.RefreshTokenCookie)
	if err != nil {
		logger.Warn("Unreadable refresh token cookie", slog.String("error", err.Error()))
	}
	if refreshToken == "" && c.Request.ContentLength != 0 {
		var req dto.RefreshTokenRequest
		err := c.ShouldBindJSON(&req)
		var maxBytesErr *http.MaxBytesError
		switch {
		case err == nil:
			refreshToken = req.RefreshToken
		case errors.As(err, &maxBytesErr):
			writeBindError(c, err, "Invalid request body")
			return
		default:
			// An unreadable body carries no token and is answered like a missing one.
			logger.Debug("Ignoring unreadable refresh request body", slog.String("error", err.Error()))
		}
	}
	if refreshToken == "" {
		writeError(c, apperrors.NewUnauthorizedError("Unauthorized request"))
		return
	}

	session, err := h.sessionService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		writeError(c, err)
		return
	}

	h.cookies.SetSessionCookies(c, session)
	writeSuccess(c, dto.ToRefreshTokenResponse(session), "Access token refreshed")
}

// getCurrentUser godoc
// @Summary Get the current user
// @Description Returns the profile of the authenticated user.
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.APIErrorResponse
// @Security BearerAuth
// @Router /users/user [get]
func (h *userHandler) getCurrentUser(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		writeError(c, apperrors.NewUnauthorizedError("Unauthorized request"))
		return
	}
	writeSuccess(c, dto.ToUserResponse(user), "User fetched successfully")
}

// updateCurrentUser godoc
// @Summary Update the current user
// @Description Updates the authenticated user's name.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Security BearerAuth
// @Router /users/user [patch]
func (h *userHandler) updateCurrentUser(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err, "Invalid user details")
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	writeSuccess(c, dto.ToUserResponse(user), "User updated successfully")
}

// deleteCurrentUser godoc
// @Summary Delete the current user
// @Description Deletes the authenticated user together with all of their todos and clears the token cookies.
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Failure 404 {object} dto.APIErrorResponse
// @Security BearerAuth
// @Router /users/user [delete]
func (h *userHandler) deleteCurrentUser(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		writeError(c, err)
		return
	}

	h.cookies.ClearSessionCookies(c)
	writeSuccess(c, dto.EmptyData{}, "User deleted successfully")
}
