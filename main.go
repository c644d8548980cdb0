package main

import (
	"log"
	"net/http"
	"os"

	"github.com/syauqinrm/blog-backend/config"
	"github.com/syauqinrm/blog-backend/graph"
	"github.com/syauqinrm/blog-backend/handlers"
	"github.com/syauqinrm/blog-backend/middleware"
	"github.com/syauqinrm/blog-backend/repositories"
	"github.com/syauqinrm/blog-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// Initialize services
	tokenService := services.NewTokenService(config.JWTSecret, config.JWTExpiration)
	authService := services.NewAuthService(userRepo, tokenService)
	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	postHandler := handlers.NewPostHandler(postService)
	commentHandler := handlers.NewCommentHandler(commentService)

	// GraphQL shares the same services as the REST handlers
	resolver := graph.NewResolver(authService, userService, postService, commentService)
	graphqlHandler := graph.NewHandler(graph.MustSchema(resolver))

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// GraphQL endpoint (anonymous reads allowed, mutations gated by policy)
		v1.POST("/graphql", middleware.OptionalAuthMiddleware(tokenService), graphqlHandler)
		v1.GET("/graphql", middleware.OptionalAuthMiddleware(tokenService), graphqlHandler)

		// Public reads
		public := v1.Group("/")
		public.Use(middleware.OptionalAuthMiddleware(tokenService))
		{
			public.GET("/posts", postHandler.GetPosts)
			public.GET("/posts/:id", postHandler.GetPost)
			public.GET("/posts/:id/comments", commentHandler.GetComments)
			public.GET("/comments/:id", commentHandler.GetComment)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware(tokenService))
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Posts
			protected.POST("/posts", postHandler.CreatePost)
			protected.GET("/posts/my", postHandler.GetMyPosts)
			protected.PUT("/posts/:id", postHandler.UpdatePost)
			protected.DELETE("/posts/:id", postHandler.DeletePost)

			// Comments
			protected.POST("/posts/:id/comments", commentHandler.CreateComment)
			protected.PUT("/comments/:id", commentHandler.UpdateComment)
			protected.DELETE("/comments/:id", commentHandler.DeleteComment)

			// Users
			protected.GET("/users", userHandler.GetUsers)
			protected.GET("/users/:id", userHandler.GetUser)
			protected.PUT("/users/:id", userHandler.UpdateUser)
			protected.DELETE("/users/:id", userHandler.DeleteUser)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
