package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nakhazaman/restaurant-foh/session"
	"github.com/nakhazaman/restaurant-foh/utils"
)

// ContextSession adalah key sesi di gin context.
const ContextSession = "session"

// AuthMiddleware mewajibkan sesi aktif dengan credential upstream yang masih
// berlaku. Tanpa credential, user diarahkan ke halaman login -- tidak ada
// call ke API pusat yang boleh jalan tanpa bearer token.
func AuthMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(session.CookieName)
		if err != nil || sessionID == "" {
			redirectToLogin(c)
			return
		}

		sess, ok := sessions.Get(sessionID)
		if !ok {
			redirectToLogin(c)
			return
		}

		// Token kadaluarsa -> buang sesi, minta login ulang.
		if claims, err := utils.ExtractClaims(sess.Token); err != nil || claims.Expired() {
			sessions.Destroy(sess.ID)
			redirectToLogin(c)
			return
		}

		c.Set(ContextSession, sess)
		c.Set("role", sess.User.Role)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}

// SessionFrom mengambil sesi yang dipasang AuthMiddleware.
func SessionFrom(c *gin.Context) (*session.Session, bool) {
	value, exists := c.Get(ContextSession)
	if !exists {
		return nil, false
	}
	sess, ok := value.(*session.Session)
	return sess, ok
}
