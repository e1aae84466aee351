package main

import (
	"knightspantry/catalog"
	"knightspantry/config"
	"knightspantry/controllers"
	"knightspantry/database"
	"knightspantry/repositories"
	"knightspantry/routes"
	"knightspantry/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	config.LoadEnv()

	db := database.ConnectMongo(
		config.GetEnv("MONGO_URI", "mongodb://localhost:27017"),
		config.GetEnv("DB_NAME", "knightspantry"),
	)
	database.EnsureIndexes(db)

	users := repositories.NewUserRepository(db)
	tokens := repositories.NewTokenRepository(db)
	store := catalog.NewStore(config.GetEnv("CATALOG_PATH", "data/catalog.json"))

	authService := services.NewAuthService(users, tokens, []byte(config.GetEnv("JWT_SECRET", "supersecretkey")))
	donationService := services.NewDonationService(users, store)

	r := gin.Default()
	r.SetTrustedProxies(nil)
	r.Use(cors.Default())

	routes.Register(r, routes.Deps{
		Auth:        controllers.NewAuthController(authService),
		Donation:    controllers.NewDonationController(donationService),
		Admin:       controllers.NewAdminDonationController(donationService),
		Catalog:     controllers.NewCatalogController(store),
		AuthService: authService,
		Users:       users,
	})

	port := config.GetEnv("PORT", "4000")
	log.Info().Str("port", port).Msg("starting server")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
