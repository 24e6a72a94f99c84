package middleware

import (
	"context"
	"crypto/sha256"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"

	"github.com/sportsconnect/sportsconnect-api/pkg/response"
)

const (
	CSRFCookieName = "csrf_token"
	CSRFHeaderName = "X-CSRF-Token"
)

// CSRFOptions configures the double-submit cookie guard.
type CSRFOptions struct {
	Secret   string
	MaxAge   time.Duration
	Domain   string
	SameSite http.SameSite
	Secure   bool
	HTTPOnly bool
	// TrustedOrigins are browser origins (scheme://host[:port]) allowed to
	// send unsafe requests from another site, usually the CORS allow list.
	TrustedOrigins []string
	// Plaintext marks requests as served over plain HTTP, which skips the
	// strict Referer check applied to HTTPS requests.
	Plaintext bool
}

type ginContextKey struct{}

// CSRF issues the csrf_token cookie on safe requests and rejects unsafe ones
// whose X-CSRF-Token header does not match it. The token for the current
// request is available through csrf.Token(c.Request).
func CSRF(opts CSRFOptions) gin.HandlerFunc {
	key := sha256.Sum256([]byte(opts.Secret))
	protect := csrf.Protect(key[:],
		csrf.CookieName(CSRFCookieName),
		csrf.RequestHeader(CSRFHeaderName),
		csrf.Path("/"),
		csrf.Domain(opts.Domain),
		csrf.MaxAge(int(opts.MaxAge.Seconds())),
		csrf.Secure(opts.Secure),
		csrf.HttpOnly(opts.HTTPOnly),
		csrf.SameSite(sameSiteMode(opts.SameSite)),
		csrf.TrustedOrigins(originHosts(opts.TrustedOrigins)),
		csrf.ErrorHandler(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			c := r.Context().Value(ginContextKey{}).(*gin.Context)
			response.Abort(c, http.StatusForbidden, csrf.FailureReason(r).Error(), "CsrfValidationError")
		})),
	)
	next := protect(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		c := r.Context().Value(ginContextKey{}).(*gin.Context)
		c.Request = r
		c.Next()
	}))

	return func(c *gin.Context) {
		r := c.Request.WithContext(context.WithValue(c.Request.Context(), ginContextKey{}, c))
		if opts.Plaintext {
			r = csrf.PlaintextHTTPRequest(r)
		}
		next.ServeHTTP(c.Writer, r)
	}
}

func sameSiteMode(s http.SameSite) csrf.SameSiteMode {
	switch s {
	case http.SameSiteStrictMode:
		return csrf.SameSiteStrictMode
	case http.SameSiteNoneMode:
		return csrf.SameSiteNoneMode
	case http.SameSiteDefaultMode:
		return csrf.SameSiteDefaultMode
	default:
		return csrf.SameSiteLaxMode
	}
}

// originHosts reduces origins to the host[:port] form the Origin and Referer
// checks compare against. Wildcards are dropped.
func originHosts(origins []string) []string {
	hosts := make([]string, 0, len(origins))
	for _, o := range origins {
		u, err := url.Parse(o)
		if err != nil || u.Host == "" || u.Host == "*" {
			continue
		}
		hosts = append(hosts, u.Host)
	}
	return hosts
}
