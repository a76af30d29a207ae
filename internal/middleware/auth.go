package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const SessionUserKey = "user_id"

// RequireAuth пускает дальше только запросы с живой сессией.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		userID, ok := sess.Get(SessionUserKey).(string)
		if !ok || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "не авторизован"})
			return
		}
		c.Set("CurrentUserID", userID)
		c.Next()
	}
}

// CurrentUserID достаёт id пользователя, положенный RequireAuth.
func CurrentUserID(c *gin.Context) string {
	if v, ok := c.Get("CurrentUserID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
