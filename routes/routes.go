package routes

import (
	"net/http"

	"knightspantry/controllers"
	"knightspantry/middleware"
	"knightspantry/repositories"
	"knightspantry/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Deps struct {
	Auth     controllers.IAuthController
	Donation controllers.IDonationController
	Admin    controllers.IAdminDonationController
	Catalog  controllers.ICatalogController

	AuthService services.IAuthService
	Users       repositories.IUserRepository
}

func Register(r *gin.Engine, d Deps) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Knights Pantry Auth API running")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authRequired := middleware.AuthMiddleware(d.AuthService)
	adminOnly := middleware.AdminMiddleware(d.Users)

	api := r.Group("/api")
	{
		api.POST("/signup", d.Auth.Signup)
		api.POST("/login", d.Auth.Login)
		api.POST("/logout", d.Auth.Logout)

		api.POST("/donated-items", d.Donation.Create)
		api.GET("/my-donated-items", authRequired, d.Donation.MyDonatedItems)

		api.GET("/catalog", d.Catalog.List)

		admin := api.Group("/admin", authRequired, adminOnly)
		{
			admin.GET("/donated-items", d.Admin.ListAll)
			admin.PUT("/donated-items/:itemId/approve", d.Admin.Approve)
			admin.PUT("/donated-items/:itemId/deny", d.Admin.Deny)
		}
	}
}
