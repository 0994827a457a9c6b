package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/samratmajumder/oksaar-social-assistant/internal/database"
	"github.com/samratmajumder/oksaar-social-assistant/internal/models"
)

// profileFields enumerates the updatable generation parameters. Anything
// else in an update payload is silently ignored.
var profileFields = []string{"topics", "articleUrls", "purpose", "tone", "searchCriteria", "schedule"}

// GetProfile returns the authenticated user's generation profile,
// without the credential hash.
func GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	err := database.Users.FindOne(ctx, bson.M{"userId": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		respondMessage(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}

	respondJSON(w, http.StatusOK, user.ProfileView())
}

// UpdateProfile applies a partial update over the recognized profile
// fields only.
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := bson.M{}
	for _, field := range profileFields {
		if value, present := payload[field]; present {
			updates[field] = value
		}
	}
	if len(updates) == 0 {
		respondMessage(w, http.StatusBadRequest, "No recognized fields to update")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := database.Users.UpdateOne(ctx, bson.M{"userId": userID}, bson.M{"$set": updates})
	if err != nil || result.MatchedCount == 0 {
		respondMessage(w, http.StatusBadRequest, "Failed to update profile")
		return
	}

	respondMessage(w, http.StatusOK, "Profile updated successfully")
}
