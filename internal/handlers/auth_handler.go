package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/devsquadbr/crm-template/internal/config"
	"github.com/devsquadbr/crm-template/internal/mailer"
	"github.com/devsquadbr/crm-template/internal/models"
)

const resetTokenPurpose = "password_reset"

// AccountAuth is the slice of the account service the auth endpoints need.
type AccountAuth interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Roles(ctx context.Context, userID string) ([]string, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// MailPublisher enqueues outbound email without blocking on delivery.
type MailPublisher interface {
	Publish(ctx context.Context, msg mailer.Message) error
}

type AuthHandler struct {
	account AccountAuth
	mail    MailPublisher
	config  *config.Config
}

func NewAuthHandler(account AccountAuth, mail MailPublisher, cfg *config.Config) *AuthHandler {
	return &AuthHandler{account: account, mail: mail, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	user, err := h.account.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err, "failed_to_register")
		return
	}

	token, err := h.generateToken(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	user, err := h.account.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
		"token": token,
	})
}

// ForgotPassword always answers ok so callers cannot probe which emails have
// accounts. If the account exists and email is configured, a reset link goes
// out through the mail queue.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	user, err := h.account.FindByEmail(c.Request.Context(), req.Email)
	if err == nil {
		if token, terr := h.generateResetToken(user.ID); terr == nil {
			link := fmt.Sprintf("%s/password/reset/%s",
				strings.TrimRight(h.config.AppBaseURL, "/"), token)

			_ = h.mail.Publish(c.Request.Context(), mailer.Message{
				To:      user.Email,
				Subject: "Reset your password",
				HTML:    fmt.Sprintf(`Please reset your password by <a href="%s">clicking here</a>.`, link),
				Text:    "Please reset your password using the following link: " + link,
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the account exists, a reset email has been sent."})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	token, err := jwt.Parse(req.Token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(h.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_reset_token"})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["purpose"] != resetTokenPurpose {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_reset_token"})
		return
	}

	userID, _ := claims["sub"].(string)
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_reset_token"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	if err := h.account.UpdatePassword(c.Request.Context(), userID, string(hashed)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_reset_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated."})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(ctx context.Context, user *models.User) (string, error) {
	roles, err := h.account.Roles(ctx, user.ID)
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"roles": roles,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func (h *AuthHandler) generateResetToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":     userID,
		"purpose": resetTokenPurpose,
		"exp":     time.Now().Add(1 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
