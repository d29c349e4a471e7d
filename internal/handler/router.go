package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/doggyworld/backend/internal/client"
	"github.com/doggyworld/backend/internal/config"
	"github.com/doggyworld/backend/internal/service"
)

type Services struct {
	Auth     *service.AuthService
	Adoption *service.AdoptionService
	Post     *service.PostService
	Product  *service.ProductService
	Mailer   client.Mailer
}

func NewRouter(cfg config.ServerConfig, svcs Services) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware(strings.Split(cfg.AllowedOrigins, ",")))

	router.GET("/", Root)
	router.GET("/ping", Ping)
	router.GET("/api/openapi.json", OpenAPIDoc)

	requireAdmin := AuthMiddleware(svcs.Auth)

	authH := NewAdminAuthHandler(svcs.Auth)
	admin := router.Group("/api/admin")
	{
		admin.POST("/login", authH.Login)
		admin.POST("/register", authH.Register)
		admin.POST("/forgot-password", authH.ForgotPassword)
		admin.PUT("/reset-password/:token", authH.ResetPassword)
	}

	adoptionH := NewAdoptionHandler(svcs.Adoption)
	adoptions := router.Group("/api/adoptions")
	{
		adoptions.POST("", adoptionH.Create)
		adoptions.GET("", requireAdmin, adoptionH.List)
		adoptions.PUT("/:id", requireAdmin, adoptionH.UpdateStatus)
		adoptions.DELETE("/:id", requireAdmin, adoptionH.Delete)
	}

	postH := NewPostHandler(svcs.Post)
	posts := router.Group("/api/posts")
	{
		posts.GET("", postH.List)
		posts.GET("/:id", postH.Get)
		posts.POST("", requireAdmin, postH.Create)
		posts.PUT("/:id", requireAdmin, postH.Update)
		posts.DELETE("/:id", requireAdmin, postH.Delete)
	}

	productH := NewProductHandler(svcs.Product)
	products := router.Group("/api/products")
	{
		products.GET("", productH.List)
		products.GET("/:id", productH.Get)
		products.POST("", requireAdmin, productH.Create)
		products.DELETE("/:id", requireAdmin, productH.Delete)
	}

	// Preview routes exist only with the dev transport.
	if devMailer, ok := svcs.Mailer.(*client.DevMailer); ok {
		devMailH := NewDevMailHandler(devMailer)
		router.GET("/api/dev/mail", devMailH.List)
		router.GET("/api/dev/mail/:id", devMailH.Preview)
	}

	return router
}
