package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	sessionCookie = "bakery_session"
	sessionHeader = "X-Session-ID"
	sessionKey    = "session_id"
	sessionMaxAge = 30 * 24 * 60 * 60
)

// requestLogger пишет одну строку на запрос через zap
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if sid := c.GetString(sessionKey); sid != "" {
			fields = append(fields, zap.String("session", sid))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		log.Info("http request", fields...)
	}
}

// sessionMiddleware гарантирует uuid сессии корзины: из заголовка, cookie или новый
func sessionMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := validSession(c.GetHeader(sessionHeader))
		if sid == "" {
			if v, err := c.Cookie(sessionCookie); err == nil {
				sid = validSession(v)
			}
		}
		if sid == "" {
			sid = uuid.NewString()
		}
		c.SetCookie(sessionCookie, sid, sessionMaxAge, "/", "", secure, true)
		c.Header(sessionHeader, sid)
		c.Set(sessionKey, sid)
		c.Next()
	}
}

func validSession(v string) string {
	id, err := uuid.Parse(v)
	if err != nil {
		return ""
	}
	return id.String()
}
