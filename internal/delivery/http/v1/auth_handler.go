package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitment-portal/internal/delivery/http/response"
	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
)

type AuthHandler struct {
	authUC        domain.AuthUsecase
	sessions      domain.SessionUsecase
	secureCookies bool
}

// NewAuthHandler registers the public auth routes. limiter guards the
// credential endpoints.
func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase, sessions domain.SessionUsecase, secureCookies bool, limiter gin.HandlerFunc) {
	handler := &AuthHandler{
		authUC:        authUC,
		sessions:      sessions,
		secureCookies: secureCookies,
	}

	auth := public.Group("/auth")
	{
		auth.POST("/signup", limiter, handler.Signup)
		auth.POST("/login", limiter, handler.Login)
		auth.GET("/logout", handler.Logout)
		auth.POST("/whoami", handler.WhoAmI)
	}
}

// Signup godoc
// @Summary      Register an applicant
// @Description  Creates an applicant account and logs it in by setting the session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.NewUser  true  "Signup details"
// @Success      201   {object}  response.Response{data=domain.RegisterResult}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req domain.NewUser
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authUC.RegisterUser(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	setSessionCookie(c, result.SessionData, h.secureCookies)
	response.Success(c, http.StatusCreated, "User registered", result)
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and sets the session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Credentials  true  "Credentials"
// @Success      200   {object}  response.Response{data=domain.UserData}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      429   {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.Credentials
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authUC.AuthenticateUser(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	setSessionCookie(c, result.SessionData, h.secureCookies)
	response.Success(c, http.StatusOK, "Login successful", result.UserData)
}

// Logout godoc
// @Summary      Log out
// @Description  Deletes the current session, if any, and clears the cookie.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	raw, _ := c.Cookie(domain.SessionCookieName)

	if err := h.authUC.Logout(c.Request.Context(), raw); err != nil {
		c.Error(err)
		return
	}

	clearSessionCookie(c, h.secureCookies)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// WhoAmI godoc
// @Summary      Current identity
// @Description  Returns the user behind the session cookie, or 204 when there is no valid session.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.UserData}
// @Success      204
// @Router       /auth/whoami [post]
func (h *AuthHandler) WhoAmI(c *gin.Context) {
	raw, _ := c.Cookie(domain.SessionCookieName)

	user, err := h.sessions.Resolve(c.Request.Context(), raw)
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidSession) {
			c.Status(http.StatusNoContent)
			return
		}
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Session valid", user)
}
