package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/dormhub/dormhub-go/internal/domain/user"
	"github.com/dormhub/dormhub-go/internal/repository"
	"github.com/dormhub/dormhub-go/pkg/response"
	"github.com/dormhub/dormhub-go/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Auth handles authorization middleware
type Auth struct {
	repos *repository.Repos
}

// NewAuth creates a new Auth middleware instance
func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// Admin allows only platform administrators through.
func (a *Auth) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := utils.GetUserIDFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
			c.Abort()
			return
		}
		u, err := a.repos.User.GetUserByID(uid)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "user not found"})
			c.Abort()
			return
		}
		if u.Role != string(user.UserRoleSysAdmin) && u.Role != string(user.UserRoleAdmin) {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "administrator access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoggingMiddleware writes one line per request with status and latency.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("[HTTP] %s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// CORSMiddleware allows local frontends through and skips websocket
// upgrades, which cors.New would reject.
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost:") {
				return true
			}
			if strings.HasPrefix(origin, "http://127.0.0.1:") {
				return true
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	corsHandler := cors.New(config)
	return func(c *gin.Context) {
		upgrade := c.GetHeader("Upgrade")
		if strings.EqualFold(upgrade, "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
