package routes

import (
	"food-delivery-api/auth"
	"food-delivery-api/handlers"
	"food-delivery-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, store *auth.Store) {
	handlers.Init(store)

	// ── Public routes ──────────────────────────────────────────────
	// Only login and forgot_password bypass the token gate: a user
	// without a session must still be able to authenticate or start a
	// password reset.
	r.POST("/login", handlers.Login)
	r.PUT("/forgot_password", handlers.ForgotPassword)

	// ── Token-gated routes ─────────────────────────────────────────
	authed := r.Group("/")
	authed.Use(middleware.AuthRequired(store))
	{
		authed.DELETE("/logout", handlers.Logout)

		authed.GET("/users", handlers.RoleIndex)
		authed.POST("/users", handlers.CreateUser)
		authed.GET("/users/:id", handlers.ShowUser)
		authed.PUT("/users/:id", handlers.UpdateUser)
		// :id here is the reset token, not a numeric user id; gin
		// requires one param name per segment position.
		authed.PUT("/users/:id/reset_password", handlers.ResetPassword)

		authed.GET("/restaurants", handlers.ListRestaurants)
		authed.GET("/restaurants/:id", handlers.GetRestaurant)
		authed.POST("/restaurants", handlers.CreateRestaurant)
		authed.PUT("/restaurants/:id", handlers.UpdateRestaurant)
	}
}
