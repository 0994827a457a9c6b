package handlers

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/samratmajumder/oksaar-social-assistant/internal/database"
	"github.com/samratmajumder/oksaar-social-assistant/internal/models"
)

// DashboardStats is the aggregate view backing the dashboard header.
type DashboardStats struct {
	PendingPosts int64 `json:"pendingPosts"`
	ActivePosts  int64 `json:"activePosts"`
	Interactions int64 `json:"interactions"`
}

// GetStats returns post and interaction aggregates for the caller.
// Active posts are the ones that actually went out (status Posted).
func GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pending, err := database.Posts.CountDocuments(ctx, bson.M{"userId": userID, "status": models.StatusPending})
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}

	active, err := database.Posts.CountDocuments(ctx, bson.M{"userId": userID, "status": models.StatusPosted})
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}

	interactionStats, err := computeInteractionStats(ctx, userID)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}

	respondJSON(w, http.StatusOK, DashboardStats{
		PendingPosts: pending,
		ActivePosts:  active,
		Interactions: interactionStats.Total,
	})
}
