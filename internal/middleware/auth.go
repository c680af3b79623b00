package middleware

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

// BasicAuth rejects requests without the configured credentials.
func BasicAuth(username, password, realm string) ginext.HandlerFunc {
	challenge := fmt.Sprintf("Basic realm=%q", realm)

	return func(c *ginext.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok || !secureEqual(user, username) || !secureEqual(pass, password) {
			c.Set("error", "unauthorized")
			c.Header("WWW-Authenticate", challenge)
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "authentication required"},
			)
			return
		}

		c.Next()
	}
}

func secureEqual(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
