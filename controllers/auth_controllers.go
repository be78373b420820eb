package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nakhazaman/restaurant-foh/gateway"
	"github.com/nakhazaman/restaurant-foh/session"
	"github.com/nakhazaman/restaurant-foh/utils"
)

type AuthController struct {
	Gateway  *gateway.Client
	Sessions *session.Manager
}

func NewAuthController(gw *gateway.Client, sessions *session.Manager) *AuthController {
	return &AuthController{Gateway: gw, Sessions: sessions}
}

// Login meneruskan credential ke API pusat dan membuka sesi front-of-house
// untuk token yang dikembalikannya.
func (ac *AuthController) Login(c *gin.Context) {
	var creds gateway.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	data, message, err := ac.Gateway.Login(c.Request.Context(), creds)
	if err != nil {
		if message == "" {
			message = "حدث خطأ في تسجيل الدخول"
		}
		respondGateway(c, message, err)
		return
	}

	sess := ac.Sessions.Create(data.Token, data.User)
	ac.setSessionCookie(c, sess.ID)

	utils.InfoLogger.Printf("session opened for %s (role=%s)", data.User.Email, data.User.Role)
	utils.RespondJSON(c, http.StatusOK, message, gin.H{"user": data.User})
}

func (ac *AuthController) Register(c *gin.Context) {
	var req gateway.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	data, message, err := ac.Gateway.Register(c.Request.Context(), req)
	if err != nil {
		if message == "" {
			message = "حدث خطأ في التسجيل"
		}
		respondGateway(c, message, err)
		return
	}

	sess := ac.Sessions.Create(data.Token, data.User)
	ac.setSessionCookie(c, sess.ID)

	if message == "" {
		message = "تم إنشاء الحساب بنجاح"
	}
	utils.RespondJSON(c, http.StatusCreated, message, gin.H{"user": data.User})
}

// Logout membuang sesi plus cookie-nya. Token upstream kita lepas begitu
// saja; server yang mengatur masa berlakunya.
func (ac *AuthController) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(session.CookieName); err == nil && sessionID != "" {
		ac.Sessions.Destroy(sessionID)
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	utils.RespondJSON(c, http.StatusOK, "logged out", nil)
}

// LoginPage adalah target redirect untuk request tanpa sesi. Bundle browser
// yang merender formnya; endpoint ini hanya memberi tahu wajib login.
func (ac *AuthController) LoginPage(c *gin.Context) {
	utils.RespondMessage(c, http.StatusUnauthorized, "يرجى تسجيل الدخول")
}

// Me mengembalikan user sesi aktif (dipakai bundle untuk menentukan tampilan
// customer vs waiter).
func (ac *AuthController) Me(c *gin.Context) {
	sess, ok := SessionOf(c)
	if !ok {
		utils.RespondMessage(c, http.StatusUnauthorized, "يرجى تسجيل الدخول")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "current user", gin.H{
		"user":     sess.User,
		"isWaiter": sess.User.IsWaiter(),
		"isAdmin":  sess.User.IsAdmin(),
	})
}

func (ac *AuthController) setSessionCookie(c *gin.Context, sessionID string) {
	maxAge := int(ac.Sessions.TTL().Seconds())
	c.SetCookie(session.CookieName, sessionID, maxAge, "/", "", false, true)
}
