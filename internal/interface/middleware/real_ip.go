package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const realIPKey = "real_ip"

// RealIP stores the client address in the context under "real_ip".
// CF-Connecting-IP wins over the left-most X-Forwarded-For entry; without
// either the gin client IP is used.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := forwardedIP(c.Request.Header)
		if ip == "" {
			ip = c.ClientIP()
		}
		c.Set(realIPKey, ip)
		c.Next()
	}
}

func forwardedIP(h http.Header) string {
	if ip := net.ParseIP(strings.TrimSpace(h.Get("CF-Connecting-IP"))); ip != nil {
		return ip.String()
	}
	if xff := h.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}
	return ""
}

// ipFromCtx returns the RealIP result, falling back to gin's view.
func ipFromCtx(c *gin.Context) string {
	if ip := c.GetString(realIPKey); ip != "" {
		return ip
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
