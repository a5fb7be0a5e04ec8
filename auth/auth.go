package auth

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chillapavankarthik-codes/fullstack-sportstore/models"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/store"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func Register(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Provide name, email, and password (6+ chars)"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		doc := st.Snapshot()
		if doc.UserByEmail(email) != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}

		hash, err := HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
			return
		}

		doc.Users = append(doc.Users, models.User{
			ID:           "u_" + uuid.NewString(),
			Name:         strings.TrimSpace(req.Name),
			Email:        email,
			PasswordHash: hash,
			IsAdmin:      false,
			CreatedAt:    time.Now().UTC(),
		})

		if err := st.Submit(doc); err != nil {
			if errors.Is(err, store.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Registration raced another update, please retry"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Registered successfully"})
	}
}

// POST /api/auth/login
func Login(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Provide email and password"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		doc := st.Snapshot()
		user := doc.UserByEmail(email)
		if user == nil || !VerifyPassword(req.Password, user.PasswordHash) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := SignToken(*user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign token"})
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(AuthCookie, token, int(TokenTTL.Seconds()), "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"user":  user.Public(),
		})
	}
}

// POST /api/auth/logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(AuthCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// GET /api/auth/me
//
// Never errors: an anonymous or expired caller simply gets a nil user.
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		identity, err := VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": identity})
	}
}

// SeedAdminUser creates the bootstrap admin account on first startup so a
// fresh deployment is administrable.
func SeedAdminUser(st *store.Store) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@sportstore.local"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	doc := st.Snapshot()
	if doc.UserByEmail(adminEmail) != nil {
		return nil
	}

	hash, err := HashPassword(adminPassword)
	if err != nil {
		return err
	}

	doc.Users = append(doc.Users, models.User{
		ID:           "u_" + uuid.NewString(),
		Name:         "Admin",
		Email:        adminEmail,
		PasswordHash: hash,
		IsAdmin:      true,
		CreatedAt:    time.Now().UTC(),
	})

	if err := st.Submit(doc); err != nil {
		return err
	}
	log.Printf("Seeded admin user: %s", adminEmail)
	return nil
}
