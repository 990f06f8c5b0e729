package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/timecapsule-dev/timecapsule/internal/handlers"
	"github.com/timecapsule-dev/timecapsule/internal/middleware"
	"github.com/timecapsule-dev/timecapsule/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// CORS middleware also answers preflight OPTIONS requests for every
	// route, the relay functions included.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.CreateUser)
			auth.POST("/login", handlers.LoginUser)
			auth.POST("/logout", handlers.LogoutUser)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
			auth.PATCH("/me", middleware.AuthMiddleware(), handlers.UpdateUser)
			auth.DELETE("/me", middleware.AuthMiddleware(), handlers.DeleteUser)
		}

		journal := api.Group("/journal", middleware.AuthMiddleware())
		{
			journal.GET("", handlers.ListJournalEntries)
			journal.POST("", handlers.CreateJournalEntry)
			journal.GET("/:id", handlers.GetJournalEntry)
			journal.DELETE("/:id", handlers.DeleteJournalEntry)
		}

		bucketList := api.Group("/bucket-list", middleware.AuthMiddleware())
		{
			bucketList.GET("", handlers.ListBucketListItems)
			bucketList.POST("", handlers.CreateBucketListItem)
			bucketList.PATCH("/:id", handlers.ToggleBucketListItem)
			bucketList.DELETE("/:id", handlers.DeleteBucketListItem)
		}

		letters := api.Group("/letters", middleware.AuthMiddleware())
		{
			letters.GET("", handlers.ListFutureLetters)
			letters.POST("", handlers.CreateFutureLetter)
			letters.GET("/:id", handlers.GetFutureLetter)
			letters.DELETE("/:id", handlers.DeleteFutureLetter)
		}

		favorites := api.Group("/favorites", middleware.AuthMiddleware())
		{
			favorites.GET("", handlers.ListFavorites)
			favorites.POST("", handlers.CreateFavorite)
			favorites.DELETE("/:id", handlers.DeleteFavorite)
		}

		api.POST("/search", middleware.AuthMiddleware(), handlers.Search)

		capsules := api.Group("/capsules", middleware.AuthMiddleware())
		{
			capsules.GET("", handlers.ListCapsules)
			capsules.POST("", handlers.CreateCapsule)
			capsules.DELETE("/:capsule_id", handlers.DeleteCapsule)
			capsules.POST("/:capsule_id/invite", handlers.InviteMember)

			capsules.GET("/:capsule_id/journal", handlers.ListCapsuleJournal)
			capsules.POST("/:capsule_id/journal", handlers.CreateCapsuleJournal)
			capsules.DELETE("/:capsule_id/journal/:item_id", handlers.DeleteCapsuleJournal)

			capsules.GET("/:capsule_id/bucket-list", handlers.ListCapsuleBucketList)
			capsules.POST("/:capsule_id/bucket-list", handlers.CreateCapsuleBucketItem)
			capsules.DELETE("/:capsule_id/bucket-list/:item_id", handlers.DeleteCapsuleBucketItem)

			capsules.GET("/:capsule_id/letters", handlers.ListCapsuleLetters)
			capsules.POST("/:capsule_id/letters", handlers.CreateCapsuleLetter)
			capsules.DELETE("/:capsule_id/letters/:item_id", handlers.DeleteCapsuleLetter)

			capsules.GET("/:capsule_id/favorites", handlers.ListCapsuleFavorites)
			capsules.POST("/:capsule_id/favorites", handlers.CreateCapsuleFavorite)
			capsules.DELETE("/:capsule_id/favorites/:item_id", handlers.DeleteCapsuleFavorite)
		}

		inbox := api.Group("/inbox", middleware.AuthMiddleware())
		{
			inbox.GET("", handlers.ListInbox)
			inbox.DELETE("/:id", handlers.DeleteInboxCopy)
		}

		api.POST("/uploads/journal-image", middleware.AuthMiddleware(), handlers.PresignJournalImage)
	}

	// Relay functions live outside /api.
	functions := r.Group("/functions")
	{
		functions.POST("/share-item", middleware.AuthMiddleware(), handlers.ShareItem)
		functions.POST("/search-song", handlers.SearchSong)
	}

	return r
}
