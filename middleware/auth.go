package middleware

import (
	"net/http"
	"net/url"

	"goblog/models"
	"goblog/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	// SessionUserKey is the session field holding the authenticated user id.
	SessionUserKey = "user_id"

	contextUserKey = "current_user"
)

// UserLoader resolves a session user id to a full user record.
type UserLoader interface {
	GetByID(id uint) (*models.User, error)
}

// CurrentUser resolves the session identity once per request and stores the
// user in the gin context. Stale session ids are cleared.
func CurrentUser(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if v := session.Get(SessionUserKey); v != nil {
			if id, ok := v.(uint); ok {
				if user, err := users.GetByID(id); err == nil {
					c.Set(contextUserKey, user)
				} else {
					session.Delete(SessionUserKey)
					session.Save()
				}
			}
		}
		c.Next()
	}
}

// AuthRequired refuses anonymous access and forwards the actor back to the
// requested page after login via the next query parameter.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := RequireUser(c); !ok {
			return
		}
		c.Next()
	}
}

// RequireUser returns the authenticated user, or redirects to the login form
// (preserving the requested destination) and aborts the request.
func RequireUser(c *gin.Context) (*models.User, bool) {
	if user, ok := UserFromContext(c); ok {
		return user, true
	}
	utils.Flash(c, "info", "Please log in to access that page")
	next := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, "/login?next="+next)
	c.Abort()
	return nil, false
}

// GuestOnly keeps authenticated users out of the login and registration flows.
func GuestOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserFromContext(c); ok {
			c.Redirect(http.StatusFound, "/home")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserFromContext returns the authenticated user set by CurrentUser.
func UserFromContext(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// Login records the user in the session. remember controls whether the cookie
// outlives the browser session.
func Login(c *gin.Context, userID uint, remember bool) error {
	session := sessions.Default(c)
	session.Set(SessionUserKey, userID)

	maxAge := 0 // session cookie
	if remember {
		maxAge = 30 * 24 * 60 * 60
	}
	session.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})

	return session.Save()
}

// Logout discards the session identity.
func Logout(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(SessionUserKey)
	return session.Save()
}
