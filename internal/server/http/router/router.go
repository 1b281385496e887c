package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/bookline/bookline/internal/server/http/handlers"
	"github.com/bookline/bookline/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.LibraryFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	bookHandler := handlers.NewBookHandler(facade)
	bookingHandler := handlers.NewBookingHandler(facade)

	api := engine.Group("/api")
	api.POST("/user/register", authHandler.Register)
	api.POST("/user/login", authHandler.Login)

	authorized := api.Group("")
	authorized.Use(middleware.AuthRequired(facade))

	authorized.GET("/users", userHandler.List)
	authorized.GET("/user", userHandler.Current)
	authorized.PUT("/user/email", userHandler.ChangeEmail)
	authorized.PUT("/user/password", userHandler.ChangePassword)
	authorized.DELETE("/user", userHandler.Delete)

	authorized.GET("/books", bookHandler.List)
	authorized.GET("/books/:isbn", bookHandler.Get)
	authorized.GET("/authors/:author/books", bookHandler.ListByAuthor)
	authorized.POST("/books", bookHandler.Add)
	authorized.POST("/books/batch", bookHandler.AddBatch)
	authorized.PUT("/books/:isbn/title", bookHandler.UpdateTitle)
	authorized.DELETE("/books/:isbn", bookHandler.Delete)

	authorized.GET("/bookings", bookingHandler.List)
	authorized.GET("/bookings/my", bookingHandler.ListMine)
	authorized.GET("/bookings/book/:isbn", bookingHandler.ListForBook)
	authorized.POST("/bookings", bookingHandler.Create)

	return engine
}
