package routes

import (
	"net/http"

	"blogadmin/internal/handlers"
	"blogadmin/internal/middleware"
	helpers "blogadmin/internal/utils/helpers"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	authHandler *handlers.AuthHandler,
	mainAdminHandler *handlers.MainAdminHandler,
	articleHandler *handlers.ArticleHandler,
	publicArticleHandler *handlers.PublicArticleHandler,
	jwtSecret string,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logging)

	api := router.PathPrefix("/api").Subrouter()
	auth := middleware.JWTAuth(jwtSecret)

	// --- /api/admin ---
	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/login", authHandler.Login).Methods("POST")
	// Принимает refresh-токен, поэтому стоит вне JWTAuth (тот требует access).
	admin.HandleFunc("/token/access-token", authHandler.AccessToken).Methods("GET")

	adminProtected := admin.PathPrefix("").Subrouter()
	adminProtected.Use(auth)
	adminProtected.HandleFunc("/create-admin", authHandler.CreateAdmin).Methods("POST")
	adminProtected.HandleFunc("/update/password", authHandler.UpdatePassword).Methods("PATCH")
	adminProtected.HandleFunc("/update/email", authHandler.UpdateEmail).Methods("PATCH")
	adminProtected.HandleFunc("/update/name", authHandler.UpdateName).Methods("PATCH")

	// --- /api/main-admin ---
	mainAdmin := api.PathPrefix("/main-admin").Subrouter()
	mainAdmin.HandleFunc("/create-main-admin", mainAdminHandler.CreateMainAdmin).Methods("GET")

	mainAdminProtected := mainAdmin.PathPrefix("").Subrouter()
	mainAdminProtected.Use(auth)
	mainAdminProtected.HandleFunc("/token/admin-token", mainAdminHandler.AdminToken).Methods("GET")
	mainAdminProtected.HandleFunc("/delete/delete-admin", mainAdminHandler.DeleteAdmin).Methods("DELETE")

	// --- /api/article (всё под JWT) ---
	article := api.PathPrefix("/article").Subrouter()
	article.Use(auth)
	article.HandleFunc("/create-article", articleHandler.Create).Methods("POST")
	article.HandleFunc("/get-article/{id:[0-9]+}", articleHandler.GetByID).Methods("GET")
	article.HandleFunc("/get-all-articles", articleHandler.GetAll).Methods("GET")
	article.HandleFunc("/pagination/article-pagination", articleHandler.Pagination).Methods("GET")
	article.HandleFunc("/pagination/article-search", articleHandler.SearchPagination).Methods("GET")
	article.HandleFunc("/search", articleHandler.Search).Methods("GET")
	article.HandleFunc("/search/title", articleHandler.TitleSearch).Methods("GET")
	article.HandleFunc("/search/body", articleHandler.BodySearch).Methods("GET")
	article.HandleFunc("/update/update-body/{id:[0-9]+}", articleHandler.UpdateBody).Methods("PATCH")
	article.HandleFunc("/update/update-title/{id:[0-9]+}", articleHandler.UpdateTitle).Methods("PATCH")
	article.HandleFunc("/update/update-image-url/{id:[0-9]+}", articleHandler.UpdateImageURL).Methods("PATCH")
	article.HandleFunc("/update/update-article/{id:[0-9]+}", articleHandler.UpdateAll).Methods("PUT")
	article.HandleFunc("/delete/delete-image-url/{id:[0-9]+}", articleHandler.DeleteImageURL).Methods("DELETE")
	article.HandleFunc("/delete/{id:[0-9]+}", articleHandler.Delete).Methods("DELETE")

	// --- /api/public-article (без аутентификации) ---
	public := api.PathPrefix("/public-article").Subrouter()
	public.HandleFunc("/get-article/{id:[0-9]+}", publicArticleHandler.GetByID).Methods("GET")
	public.HandleFunc("/get-all-articles", publicArticleHandler.GetAll).Methods("GET")
	public.HandleFunc("/pagination/article-pagination", publicArticleHandler.Pagination).Methods("GET")
	public.HandleFunc("/pagination/article-search", publicArticleHandler.SearchPagination).Methods("GET")
	public.HandleFunc("/search", publicArticleHandler.Search).Methods("GET")
	public.HandleFunc("/search/title", publicArticleHandler.TitleSearch).Methods("GET")
	public.HandleFunc("/search/body", publicArticleHandler.BodySearch).Methods("GET")

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helpers.Error(w, http.StatusNotFound, "Not Found")
	})
}
