package routes

import (
	"github.com/Priyans1727C/backend/configs"
	"github.com/Priyans1727C/backend/controllers"
	"github.com/Priyans1727C/backend/middlewares"
	"github.com/Priyans1727C/backend/repository"
	"github.com/Priyans1727C/backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, mailer services.Mailer) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewResetTokenRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	pwSvc := services.NewPasswordService(db, userRepo, tokenRepo, mailer, cfg.ResetTokenTTL, cfg.FrontendURL)
	storeSvc := services.NewStoreService(storeRepo, userRepo)
	restSvc := services.NewRestaurantService(restRepo, storeRepo)
	menuSvc := services.NewMenuService(menuRepo, restRepo)
	orderSvc := services.NewOrderService(orderRepo, restRepo, menuRepo, userRepo)
	cartSvc := services.NewCartService(cartRepo, menuRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, pwSvc, cfg.CookieSecure, int(cfg.RefreshTTL.Seconds()))
	profileCtrl := controllers.NewProfileController(authSvc)
	storeCtrl := controllers.NewStoreController(storeSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	itemCtrl := controllers.NewMenuItemController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	orderItemCtrl := controllers.NewOrderItemController(orderSvc)
	cartCtrl := controllers.NewCartController(cartSvc)

	// Accounts
	acc := r.Group("/accounts")
	{
		acc.POST("/register/", authCtrl.Register)
		acc.POST("/login/", authCtrl.Login)
		acc.POST("/refresh-token/", authCtrl.RefreshToken)
		acc.POST("/forgot-password/", authCtrl.ForgotPassword)
		acc.POST("/reset-password/", authCtrl.ResetPassword)
	}
	accAuth := acc.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		accAuth.POST("/logout/", authCtrl.Logout)
		accAuth.GET("/profile/", profileCtrl.Get)
		accAuth.PUT("/profile/", profileCtrl.Update)
		accAuth.DELETE("/profile/", profileCtrl.Delete)
	}

	// Stores
	st := r.Group("/store")
	{
		st.GET("/", storeCtrl.Get)
		st.POST("/", storeCtrl.Create)
		st.PUT("/", storeCtrl.Update)
		st.DELETE("/", storeCtrl.Delete)
	}

	// Restaurant catalog, orders and cart; all scoped by their natural keys
	rest := r.Group("/restaurant")
	{
		rest.GET("/info/", restCtrl.Get)
		rest.POST("/info/", restCtrl.Create)
		rest.PUT("/info/", restCtrl.Update)
		rest.DELETE("/info/", restCtrl.Delete)

		rest.GET("/menu/", menuCtrl.List)
		rest.POST("/menu/", menuCtrl.Create)
		rest.PUT("/menu/", menuCtrl.Update)
		rest.DELETE("/menu/", menuCtrl.Delete)

		rest.GET("/menu/item/", itemCtrl.List)
		rest.POST("/menu/item/", itemCtrl.Create)
		rest.PUT("/menu/item/", itemCtrl.Update)
		rest.DELETE("/menu/item/", itemCtrl.Delete)

		rest.GET("/order/", orderCtrl.Get)
		rest.POST("/order/", orderCtrl.Create)
		rest.PUT("/order/", orderCtrl.Update)
		rest.DELETE("/order/", orderCtrl.Delete)

		rest.GET("/order/item/", orderItemCtrl.List)
		rest.POST("/order/item/", orderItemCtrl.Create)
		rest.PUT("/order/item/", orderItemCtrl.Update)
		rest.DELETE("/order/item/", orderItemCtrl.Delete)

		rest.GET("/cart/", cartCtrl.List)
		rest.POST("/cart/", cartCtrl.Add)
		rest.PUT("/cart/", cartCtrl.Update)
		rest.DELETE("/cart/", cartCtrl.Remove)
	}
}
