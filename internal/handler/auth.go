package handler

import (
	"net/http"

	"github.com/dandyZicky/wfh-attendance/internal/apierror"
	"github.com/dandyZicky/wfh-attendance/internal/dto"
	"github.com/dandyZicky/wfh-attendance/internal/middleware"
	"github.com/dandyZicky/wfh-attendance/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login verifies credentials and hands the session token back both ways:
// as an HTTP-only cookie for the browser client and in the body for API use.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookieName, resp.Token, int(service.TokenLifetime.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, resp)
}

// Logout clears the session cookie. Stateless: the token itself stays valid
// until expiry, there is no server-side revocation.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"msg": "logged out"})
}

// Verify echoes the profile encoded in the (already validated) token.
func (h *AuthHandler) Verify(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("user not authenticated"))
		return
	}
	c.JSON(http.StatusOK, dto.VerifyResponse{
		User: dto.ProfileResponse{
			UserKey:  claims.Subject,
			Email:    claims.Email,
			Username: claims.Username,
		},
	})
}

// Register is internal: user-management provisions credentials here as part
// of employee creation.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.Register(c.Request.Context(), req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "registered"})
}

// DeleteUser is internal: the compensating action for a failed employee insert.
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	userKey := c.Param("user_key")
	if userKey == "" {
		c.JSON(http.StatusBadRequest, apierror.New("user_key is required"))
		return
	}

	if err := h.svc.DeleteUser(c.Request.Context(), userKey); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "user deleted"})
}
