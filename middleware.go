package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Paths that are never logged.
var untrackedPrefixes = []string{"/static/", "/images/", "/favicon", "/healthz"}

// ipHasher turns client IPs into salted, truncated hashes so logs never hold
// raw addresses. The salt lives only in memory, so hashes are stable for the
// life of the process and unlinkable across restarts.
type ipHasher struct {
	salt string
}

func newIPHasher() ipHasher {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic("generate ip salt: " + err.Error())
	}
	return ipHasher{salt: hex.EncodeToString(bytes)}
}

func (h ipHasher) hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func tracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// requestLogger logs each page and fragment request. Static assets are
// skipped, and requests carrying DNT: 1 are logged without the client hash.
func requestLogger(log *zap.Logger, hasher ipHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !tracked(path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.Bool("htmx", c.GetHeader("HX-Request") == "true"),
		}
		if c.GetHeader("DNT") != "1" {
			fields = append(fields, zap.String("client", hasher.hash(c.ClientIP())))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		log.Info("request", fields...)
	}
}
