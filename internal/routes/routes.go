package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/samratmajumder/oksaar-social-assistant/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Auth
	r.Post("/api/auth/register", handlers.Register)
	r.Post("/api/auth/login", handlers.Login)
	r.Post("/api/auth/logout", handlers.Logout)

	// Profile
	r.Get("/api/profile", handlers.GetProfile)
	r.Put("/api/profile", handlers.UpdateProfile)

	// Posts
	r.Get("/api/posts", handlers.ListPosts)
	r.Post("/api/posts/generate", handlers.GeneratePost)
	r.Get("/api/posts/{id}", handlers.GetPost)
	r.Put("/api/posts/{id}/approve", handlers.ApprovePost)
	r.Put("/api/posts/{id}/reject", handlers.RejectPost)

	// Interactions
	r.Get("/api/interactions", handlers.ListInteractions)
	r.Post("/api/interactions", handlers.CreateInteraction)
	r.Get("/api/interactions/stats", handlers.InteractionStats)
	r.Post("/api/interactions/{id}/respond", handlers.RespondInteraction)

	// Dashboard stats
	r.Get("/api/stats", handlers.GetStats)

	// Media uploads
	r.Post("/api/media/upload", handlers.UploadMedia)

	// Live interaction feed
	r.Get("/ws/interactions", handlers.InteractionFeed)
}
