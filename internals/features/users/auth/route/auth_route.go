package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "listrikku_backend/internals/features/users/auth/controller"
	"listrikku_backend/internals/middlewares"
	mwAuth "listrikku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	grp.Get("/me", mwAuth.AuthMiddleware(), ctl.Me)
}
