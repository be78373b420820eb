package router

import (
	"github.com/gin-gonic/gin"

	"github.com/nakhazaman/restaurant-foh/config"
	"github.com/nakhazaman/restaurant-foh/controllers"
	"github.com/nakhazaman/restaurant-foh/gateway"
	"github.com/nakhazaman/restaurant-foh/middlewares"
	"github.com/nakhazaman/restaurant-foh/models"
	"github.com/nakhazaman/restaurant-foh/session"
)

func SetupRouter(cfg config.Config, gw *gateway.Client, sessions *session.Manager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.AllowedOrigin))

	authCtrl := controllers.NewAuthController(gw, sessions)
	menuCtrl := controllers.NewMenuController(gw)
	cartCtrl := controllers.NewCartController()
	orderCtrl := controllers.NewOrderController()
	tableCtrl := controllers.NewTableController()

	// Target redirect untuk request tanpa sesi.
	r.GET("/login", authCtrl.LoginPage)

	// Login/register dibatasi ketat.
	auth := r.Group("/auth")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/login", authCtrl.Login)
		auth.POST("/register", authCtrl.Register)
	}
	r.POST("/auth/logout", authCtrl.Logout)

	// Browse menu itu publik, sama seperti halaman home.
	r.GET("/menu/items", menuCtrl.GetMenuItems)
	r.GET("/menu/categories", menuCtrl.GetCategories)

	// Kelola menu khusus admin.
	admin := r.Group("/menu")
	admin.Use(middlewares.AuthMiddleware(sessions), middlewares.RequireRole(models.RoleAdmin))
	{
		admin.POST("/categories", menuCtrl.CreateCategory)
		admin.PUT("/categories/:category_id", menuCtrl.UpdateCategory)
		admin.DELETE("/categories/:category_id", menuCtrl.DeleteCategory)
		admin.POST("/items", menuCtrl.CreateMenuItem)
		admin.PUT("/items/:item_id", menuCtrl.UpdateMenuItem)
		admin.DELETE("/items/:item_id", menuCtrl.DeleteMenuItem)
	}

	// Semua workflow order butuh sesi login.
	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware(sessions))
	{
		authed.GET("/me", authCtrl.Me)

		authed.GET("/cart", cartCtrl.GetCart)
		authed.POST("/cart/items", cartCtrl.AddItem)
		authed.POST("/cart/items/:item_id/increment", cartCtrl.IncrementItem)
		authed.POST("/cart/items/:item_id/decrement", cartCtrl.DecrementItem)

		authed.PUT("/order-draft", orderCtrl.UpdateDraft)
		authed.GET("/orders", orderCtrl.GetOrders)
		authed.POST("/orders", orderCtrl.SubmitOrder)
		authed.PUT("/orders/:order_id/deliver",
			middlewares.RequireRole(models.RoleWaiter), orderCtrl.DeliverOrder)

		authed.GET("/tables/available", tableCtrl.GetAvailableTables)
	}

	return r
}
