package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/samratmajumder/oksaar-social-assistant/internal/database"
	"github.com/samratmajumder/oksaar-social-assistant/internal/models"
	"github.com/samratmajumder/oksaar-social-assistant/internal/services"
)

var responder services.Responder = services.NewTemplateResponder()

// SetResponder replaces the assistant reply implementation.
func SetResponder(rp services.Responder) { responder = rp }

type CreateInteractionRequest struct {
	PostID       string  `json:"postId"`
	ReplyContent string  `json:"replyContent"`
	Platform     *string `json:"platform,omitempty"`
}

type CreateInteractionResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	InteractionID string `json:"interactionId,omitempty"`
}

type RespondInteractionRequest struct {
	Response string `json:"response,omitempty"`
}

type RespondInteractionResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Response string `json:"response,omitempty"`
}

// InteractionListResponse is the paginated listing envelope.
type InteractionListResponse struct {
	Items []models.Interaction `json:"items"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

// CreateInteraction records an external reply against an existing post.
// The owning user is copied from the post at creation time and never
// re-derived afterwards.
func CreateInteraction(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}

	var req CreateInteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PostID == "" || req.ReplyContent == "" {
		respondMessage(w, http.StatusBadRequest, "postId and replyContent are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var post models.Post
	err := database.Posts.FindOne(ctx, bson.M{"postId": req.PostID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		respondMessage(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}

	interaction := models.Interaction{
		InteractionID: uuid.NewString(),
		PostID:        post.PostID,
		UserID:        post.UserID,
		ReplyContent:  req.ReplyContent,
		Platform:      req.Platform,
		CreatedAt:     time.Now().UTC(),
	}

	if _, err := database.Interactions.InsertOne(ctx, interaction); err != nil {
		respondMessage(w, http.StatusInternalServerError, "Failed to record interaction")
		return
	}

	services.PublishInteractionEvent(ctx, services.InteractionEvent{
		Type:          services.EventInteractionCreated,
		UserID:        interaction.UserID,
		InteractionID: interaction.InteractionID,
		PostID:        interaction.PostID,
		Preview:       services.Preview(interaction.ReplyContent, 50),
	})

	respondJSON(w, http.StatusCreated, CreateInteractionResponse{
		Success:       true,
		Message:       "Interaction recorded",
		InteractionID: interaction.InteractionID,
	})
}

// RespondInteraction attaches a response to an interaction, at most
// once. An empty response field asks the assistant responder to draft
// one. The conditional update guards the at-most-once invariant: a
// second call matches nothing and gets a 409.
func RespondInteraction(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	var req RespondInteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	interactionID := chi.URLParam(r, "id")

	var interaction models.Interaction
	err := database.Interactions.FindOne(ctx, bson.M{"interactionId": interactionID}).Decode(&interaction)
	if err == mongo.ErrNoDocuments {
		respondMessage(w, http.StatusNotFound, "Interaction not found")
		return
	}
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}
	if interaction.UserID != userID {
		respondMessage(w, http.StatusForbidden, "Unauthorized")
		return
	}

	response := req.Response
	if response == "" {
		var user models.User
		username := "there"
		if err := database.Users.FindOne(ctx, bson.M{"userId": userID}).Decode(&user); err == nil {
			username = user.Username
		}
		response = responder.Reply(interaction.ReplyContent, username)
	}

	now := time.Now().UTC()
	result, err := database.Interactions.UpdateOne(ctx,
		bson.M{"interactionId": interactionID, "response": nil},
		bson.M{"$set": bson.M{"response": response, "respondedAt": now}},
	)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}
	if result.MatchedCount == 0 {
		respondMessage(w, http.StatusConflict, "Interaction already has a response")
		return
	}

	services.PublishInteractionEvent(ctx, services.InteractionEvent{
		Type:          services.EventInteractionResponded,
		UserID:        userID,
		InteractionID: interactionID,
		PostID:        interaction.PostID,
		Preview:       services.Preview(response, 50),
	})

	respondJSON(w, http.StatusOK, RespondInteractionResponse{
		Success:  true,
		Message:  "Response attached",
		Response: response,
	})
}

// ListInteractions returns the caller's interactions, newest first,
// with page/limit pagination.
func ListInteractions(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	page, limit := parsePageLimit(r.URL.Query().Get("page"), r.URL.Query().Get("limit"), 10)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"userId": userID}

	total, err := database.Interactions.CountDocuments(ctx, filter)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.M{"createdAt": -1})
	findOptions.SetSkip(int64((page - 1) * limit))
	findOptions.SetLimit(int64(limit))

	cursor, err := database.Interactions.Find(ctx, filter, findOptions)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cursor.Close(ctx)

	items := []models.Interaction{}
	if err := cursor.All(ctx, &items); err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}

	respondJSON(w, http.StatusOK, InteractionListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// InteractionStats returns the responded/pending split for the caller.
func InteractionStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	stats, err := computeInteractionStats(ctx, userID)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// computeInteractionStats counts a user's interactions and how many
// carry a response. Pending is derived so total == responded + pending
// always holds.
func computeInteractionStats(ctx context.Context, userID string) (models.InteractionStats, error) {
	filter := bson.M{"userId": userID}

	total, err := database.Interactions.CountDocuments(ctx, filter)
	if err != nil {
		return models.InteractionStats{}, err
	}

	responded, err := database.Interactions.CountDocuments(ctx, bson.M{
		"userId":   userID,
		"response": bson.M{"$ne": nil},
	})
	if err != nil {
		return models.InteractionStats{}, err
	}

	return models.InteractionStats{
		Total:     total,
		Responded: responded,
		Pending:   total - responded,
	}, nil
}
