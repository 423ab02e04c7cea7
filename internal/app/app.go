package app

import (
	"blogadmin/internal/config"
	"blogadmin/internal/db"
	"blogadmin/internal/handlers"
	"blogadmin/internal/repository"
	"blogadmin/internal/routes"
	"blogadmin/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	// Репозитории
	adminRepo := repository.NewAdminRepository(conn)
	articleRepo := repository.NewArticleRepository(conn)

	// Сервисы
	authService := services.NewAuthService(adminRepo, cfg)
	articleService := services.NewArticleService(articleRepo)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService, cfg)
	mainAdminHandler := handlers.NewMainAdminHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	publicArticleHandler := handlers.NewPublicArticleHandler(articleService)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, authHandler, mainAdminHandler, articleHandler, publicArticleHandler, cfg.JWTSecret)

	return router, nil
}
