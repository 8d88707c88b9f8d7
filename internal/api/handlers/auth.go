package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"lattice-cms.io/lattice/ent/user"
	"lattice-cms.io/lattice/internal/api/middleware"
	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
	"lattice-cms.io/lattice/internal/pkg/logger"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login handles POST /api/v1/auth/login for local manager accounts.
func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    apperrors.CodeValidationFailed,
			"message": "username and password are required",
		})
		return
	}

	ctx := c.Request.Context()
	account, err := s.client.User.Query().
		Where(user.UsernameEQ(req.Username), user.EnabledEQ(true)).
		Only(ctx)
	if err != nil {
		// Equalize timing between unknown users and bad passwords.
		_ = bcrypt.CompareHashAndPassword(
			[]byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"),
			[]byte(req.Password),
		)
		unauthorized(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		unauthorized(c)
		return
	}

	token, expiresAt, err := middleware.GenerateToken(s.jwtConfig, account.ID, account.Username, account.Permissions)
	if err != nil {
		logger.Error("Failed to sign session token", zap.String("username", account.Username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": apperrors.CodeInternalError})
		return
	}

	c.JSON(http.StatusOK, loginResponse{Token: token, ExpiresAt: expiresAt})
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"code":    apperrors.CodeAuthFailed,
		"message": "invalid username or password",
	})
}
