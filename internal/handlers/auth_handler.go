package handlers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gatherly/api/internal/helpers"
	"github.com/gatherly/api/internal/models"
	"github.com/gatherly/api/internal/services"
	"github.com/gin-gonic/gin"
)

// currentClaims pulls the session identity set by the auth middleware.
func currentClaims(c *gin.Context) (*helpers.SessionClaims, bool) {
	v, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	claims, ok := v.(*helpers.SessionClaims)
	return claims, ok
}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	isProduction := os.Getenv("GIN_MODE") == "production"
	c.SetCookie(
		helpers.SessionCookie,
		token,
		maxAge,
		"/",
		"", // let Gin pick current domain
		isProduction,
		true,
	)
}

// Register creates an account and logs the caller in.
func Register(u *services.UserService, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid registration data",
				"errors":  helpers.ValidationDetails(err),
			})
			return
		}

		user, err := u.Register(c.Request.Context(), input)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
			case errors.Is(err, services.ErrEmailTaken):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
			default:
				c.Error(err)
			}
			return
		}

		token, err := helpers.IssueToken(user.ID, secret, helpers.SessionTTL)
		if err != nil {
			c.Error(err)
			return
		}
		setSessionCookie(c, token, int(helpers.SessionTTL.Seconds()))

		c.JSON(http.StatusCreated, user)
	}
}

// Login verifies credentials and starts a session.
func Login(u *services.UserService, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `json:"username" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid login data",
				"errors":  helpers.ValidationDetails(err),
			})
			return
		}

		user, err := u.Authenticate(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
				return
			}
			c.Error(err)
			return
		}

		token, err := helpers.IssueToken(user.ID, secret, helpers.SessionTTL)
		if err != nil {
			c.Error(err)
			return
		}
		setSessionCookie(c, token, int(helpers.SessionTTL.Seconds()))

		c.JSON(http.StatusOK, user)
	}
}

// Logout clears the session cookie. Tokens are stateless, so expiring
// the cookie is the whole operation.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		setSessionCookie(c, "", -1)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// CurrentUser returns the caller's full profile.
func CurrentUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		user, err := u.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateProfile applies a partial profile edit for the caller. The
// payload cannot reach the admin flag.
func UpdateProfile(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		var req struct {
			Email    *string `json:"email" binding:"omitempty,email"`
			Name     *string `json:"name" binding:"omitempty,min=1"`
			Password *string `json:"password" binding:"omitempty,min=8"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid profile data",
				"errors":  helpers.ValidationDetails(err),
			})
			return
		}

		user, err := u.UpdateProfile(c.Request.Context(), claims.UserID, models.UserPatch{
			Email:    req.Email,
			Name:     req.Name,
			Password: req.Password,
		})
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
