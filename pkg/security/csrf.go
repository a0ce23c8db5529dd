package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CSRFCookieName = "csrftoken"
	CSRFHeaderName = "X-CSRF-Token"
)

// IssueCSRFToken generates a random token and sets it as a cookie readable
// by the frontend, which must echo it back in the X-CSRF-Token header.
func IssueCSRFToken(c *gin.Context) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	// Not HttpOnly: the double-submit scheme needs the script to read it.
	c.SetCookie(CSRFCookieName, token, 7*24*3600, "/", "", false, false)
	return token, nil
}

// CSRF enforces the double-submit cookie check on mutating requests.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		cookie, err := c.Cookie(CSRFCookieName)
		header := c.GetHeader(CSRFHeaderName)
		if err != nil || cookie == "" || header == "" ||
			subtle.ConstantTimeCompare([]byte(cookie), []byte(header)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "CSRF token missing or invalid"})
			return
		}

		c.Next()
	}
}
