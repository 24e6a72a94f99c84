package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/sirupsen/logrus"

	"github.com/sportsconnect/sportsconnect-api/internal/application"
	"github.com/sportsconnect/sportsconnect-api/internal/interface/middleware"
	"github.com/sportsconnect/sportsconnect-api/pkg/helpers"
	"github.com/sportsconnect/sportsconnect-api/pkg/response"
)

const oauthRoundTripTTL = 10 * time.Minute

type AuthHandler struct {
	Svc     AuthService
	Google  GoogleProvider
	Cookies *helpers.CookieManager
	AppURL  string
	Logger  *logrus.Logger
}

// CSRFToken answers with the token the CSRF guard bound to this request;
// the guard has already set the matching cookie.
func (h *AuthHandler) CSRFToken(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"csrf_token": csrf.Token(c.Request)})
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	u, pair, err := h.Svc.SignUp(c.Request.Context(), application.SignUpInput{Email: req.Email, Password: req.Password, Name: req.Name})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	c.JSON(http.StatusCreated, toSessionUser(u))
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	u, pair, err := h.Svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	c.JSON(http.StatusOK, toSessionUser(u))
}

// Refresh rotates the session. A failed refresh clears the cookies.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie(helpers.RefreshCookie)
	if err != nil || refresh == "" {
		response.Abort(c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	pair, uid, err := h.Svc.Refresh(c.Request.Context(), refresh)
	if err != nil {
		h.Cookies.Clear(c)
		fail(c, h.Logger, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	c.JSON(http.StatusOK, gin.H{
		"user_id":            uid,
		"access_expires_at":  pair.AccessTokenExpiry,
		"refresh_expires_at": pair.RefreshTokenExpiry,
	})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.Svc.SignOut(c.Request.Context(), middleware.UserID(c)); err != nil {
		fail(c, h.Logger, err)
		return
	}
	h.Cookies.Clear(c)
	response.NoContent(c)
}

func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	if h.Google == nil {
		response.Abort(c, http.StatusNotFound, "google sign-in is not enabled", nil)
		return
	}
	state, nonce := uuid.NewString(), uuid.NewString()
	h.Cookies.SetShortLived(c, helpers.StateCookie, state, oauthRoundTripTTL)
	h.Cookies.SetShortLived(c, helpers.NonceCookie, nonce, oauthRoundTripTTL)
	c.Redirect(http.StatusFound, h.Google.LoginURL(state, nonce))
}

// GoogleCallback completes the code flow and redirects to the web app.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if h.Google == nil {
		response.Abort(c, http.StatusNotFound, "google sign-in is not enabled", nil)
		return
	}
	state, _ := c.Cookie(helpers.StateCookie)
	nonce, _ := c.Cookie(helpers.NonceCookie)
	h.Cookies.Drop(c, helpers.StateCookie)
	h.Cookies.Drop(c, helpers.NonceCookie)

	got := c.Query("state")
	if state == "" || subtle.ConstantTimeCompare([]byte(state), []byte(got)) != 1 {
		response.Abort(c, http.StatusUnauthorized, "invalid oauth state", nil)
		return
	}
	code := c.Query("code")
	if code == "" {
		response.Abort(c, http.StatusBadRequest, "missing authorization code", c.Query("error"))
		return
	}
	id, err := h.Google.Exchange(c.Request.Context(), code, nonce)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("google exchange failed")
		}
		response.Abort(c, http.StatusUnauthorized, "google sign-in failed", nil)
		return
	}
	if !id.EmailVerified {
		response.Abort(c, http.StatusUnauthorized, "google account email is not verified", nil)
		return
	}
	_, pair, err := h.Svc.SignInExternal(c.Request.Context(), id.Email, id.Name)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	c.Redirect(http.StatusFound, h.AppURL)
}
