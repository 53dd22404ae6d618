// auth.go — account registration, login and token refresh.
//
// Credentials are bcrypt hashes in Postgres. A successful login or
// registration hands the client a signed JWT; that token IS the session —
// there is nothing to look up or revoke server-side, which is why refresh
// simply mints a new one.
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/viewlens/viewlens-api/internal/database"
	"github.com/viewlens/viewlens-api/internal/middleware"
	"github.com/viewlens/viewlens-api/internal/models"
)

// normalizeEmail lowercases and trims so "Ada@Example.com " and
// "ada@example.com" are the same account.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and signs the new user in.
// POST /api/v1/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_failed",
			Message: "email, password (8+ characters) and name are required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ bcrypt failed during registration: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "registration_failed",
			Message: "Could not create the account",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	user := &models.User{
		Email:        normalizeEmail(req.Email),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
	}

	// The unique index on users.email decides duplicates — no pre-check,
	// so two concurrent signups for the same address cannot both win.
	if err := h.DB.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, database.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "email_in_use",
				Message: "That email is already registered",
				Code:    http.StatusConflict,
			})
			return
		}
		log.Printf("❌ Could not insert user %s: %v", user.Email, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "registration_failed",
			Message: "Could not create the account",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	token, err := middleware.GenerateJWT(user, h.JWTSecret)
	if err != nil {
		log.Printf("❌ Could not sign token for new user %s: %v", user.Email, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "token_error",
			Message: "Account created, but signing in failed — use the login endpoint",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	log.Printf("👤 New account: %s", user.Email)
	c.JSON(http.StatusCreated, models.AuthResponse{
		Token: token,
		User:  *user,
	})
}

// Login verifies credentials and returns a fresh token.
// POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_failed",
			Message: "email and password are required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	// Unknown email and wrong password collapse into the same answer; the
	// response must not reveal which half was wrong.
	user, err := h.DB.GetUserByEmail(c.Request.Context(), normalizeEmail(req.Email))
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "bad_credentials",
			Message: "Email or password is incorrect",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	token, err := middleware.GenerateJWT(user, h.JWTSecret)
	if err != nil {
		log.Printf("❌ Could not sign token for %s: %v", user.Email, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "token_error",
			Message: "Could not issue a token",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	log.Printf("🔓 Login: %s", user.Email)
	c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  *user,
	})
}

// GetMe echoes the authenticated user back to the client.
// GET /api/v1/auth/me
func (h *Handler) GetMe(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Sign in to access this endpoint",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

// RefreshToken mints a replacement token for a still-valid session, resetting
// the expiry clock. The old token remains usable until its own expiry —
// stateless tokens cannot be recalled.
// POST /api/v1/auth/refresh
func (h *Handler) RefreshToken(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Sign in to access this endpoint",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	token, err := middleware.GenerateJWT(user, h.JWTSecret)
	if err != nil {
		log.Printf("❌ Could not refresh token for %s: %v", user.Email, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "token_error",
			Message: "Could not issue a token",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  *user,
	})
}
