package api

import (
	"net/http"

	reqdto "gin-booking/internal/handler/dto/request"
	resdto "gin-booking/internal/handler/dto/response"
	"gin-booking/internal/handler/httperr"
	"gin-booking/internal/handler/middleware"
	"gin-booking/internal/pkg/config"
	"gin-booking/internal/pkg/cookie"
	"gin-booking/internal/pkg/i18n"
	"gin-booking/internal/usecase/commands"
	"gin-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	sessions  queries.SessionQueries
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, sessions queries.SessionQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		sessions:  sessions,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Register
// @Description Create a customer account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration form"
// @Success 201 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	result, err := h.cmds.Register(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err, i18n.MsgInternal)
		return
	}
	cookie.SetSessionCookie(c, h.cookieCfg, result.Session.IDToken, result.Session.ExpiresIn)
	c.JSON(http.StatusCreated, resdto.FromSignIn(result.Session, result.Gate))
}

// @Summary Login
// @Description Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	result, err := h.cmds.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithUsecaseError(c, err, i18n.MsgInternal)
		return
	}
	cookie.SetSessionCookie(c, h.cookieCfg, result.Session.IDToken, result.Session.ExpiresIn)
	c.JSON(http.StatusOK, resdto.FromSignIn(result.Session, result.Gate))
}

// @Summary Request password reset
// @Description Send a password reset email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.PasswordResetRequest true "Email"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /api/auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req reqdto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := h.cmds.SendPasswordReset(c.Request.Context(), req.Email); err != nil {
		abortWithUsecaseError(c, err, i18n.MsgInternal)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: httperr.Localize(c, i18n.MsgResetEmailSent)})
}

// @Summary Confirm password reset
// @Description Set a new password with the code from the reset email
// @Tags auth
// @Accept json
// @Param request body reqdto.ConfirmPasswordResetRequest true "Reset code and new password"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /api/auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req reqdto.ConfirmPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := h.cmds.ConfirmPasswordReset(c.Request.Context(), req.Code, req.NewPassword); err != nil {
		abortWithUsecaseError(c, err, i18n.MsgInternal)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Logout
// @Description Revoke the caller's sessions and return the signed-out screens
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	snap, err := h.cmds.SignOut(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		abortWithUsecaseError(c, err, i18n.MsgInternal)
		return
	}
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.JSON(http.StatusOK, resdto.FromSnapshot(*snap))
}

// @Summary Current session
// @Description Gate state, mounted screens and navigation stack for the caller
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Router /api/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	snap, err := h.sessions.Current(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		abortWithUsecaseError(c, err, i18n.MsgSessionLoadFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshot(*snap))
}
