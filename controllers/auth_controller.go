package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hotel-booking/services"
)

type AuthController struct {
	Auth services.Authenticator
	log  *zerolog.Logger
}

func NewAuthController(auth services.Authenticator, log *zerolog.Logger) *AuthController {
	return &AuthController{Auth: auth, log: log}
}

// Login (POST /api/login)
func (ctrl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}

	session, err := ctrl.Auth.Authenticate(c.Request.Context(), services.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctrl.log.Warn().Str("username", req.Username).Str("client_ip", c.ClientIP()).Msg("login rejected")
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid username or password."})
			return
		}
		ctrl.log.Error().Err(err).Msg("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Login successful!",
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
	})
}
