package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rishabgems/invoicegen/auth"
	"rishabgems/invoicegen/utils"
)

type AuthHandler struct {
	Pins   *auth.PinChecker
	Tokens *auth.TokenManager
}

type loginRequest struct {
	Pin string `json:"pin" binding:"required"`
}

// Login exchanges the shared PIN for a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, utils.NewBadRequestError("Invalid request payload", err))
		return
	}

	if err := h.Pins.Check(req.Pin); err != nil {
		if errors.Is(err, auth.ErrPinNotSet) {
			HandleError(c, utils.NewInternalError("login is not configured", err))
			return
		}
		slog.Warn("login rejected", "client_ip", c.ClientIP())
		HandleError(c, utils.NewUnauthorizedError("Incorrect PIN. Please try again."))
		return
	}

	token, expires, err := h.Tokens.Generate()
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expires_at": expires})
}

// RequireSession rejects requests without a valid bearer token.
func (h *AuthHandler) RequireSession(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		HandleError(c, utils.NewUnauthorizedError("authorization token required"))
		return
	}
	claims, err := h.Tokens.Validate(token)
	if err != nil {
		HandleError(c, utils.NewUnauthorizedError(auth.ErrInvalidToken.Error()))
		return
	}
	c.Set("session_id", claims.ID)
	c.Next()
}
