package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
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

// Pluggable content pipeline. Real integrations replace these in main;
// tests may swap them as well.
var (
	contentGenerator services.ContentGenerator = services.NewTemplateGenerator()
	publisher        services.Publisher       = services.NewSimulatedPublisher()
)

// SetContentGenerator replaces the generator implementation.
func SetContentGenerator(g services.ContentGenerator) { contentGenerator = g }

// SetPublisher replaces the publisher implementation.
func SetPublisher(p services.Publisher) { publisher = p }

type GeneratePostResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PostID  string `json:"postId,omitempty"`
}

type ApprovePostResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ListPosts returns the caller's posts, newest first. ?status= filters
// by lifecycle state ("All" and empty mean no filter), ?limit= caps the
// result (default 100).
func ListPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	filter := bson.M{"userId": userID}
	if status := r.URL.Query().Get("status"); status != "" && status != "All" {
		filter["status"] = status
	}

	limit := 100
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	findOptions := options.Find()
	findOptions.SetSort(bson.M{"createdAt": -1})
	findOptions.SetLimit(int64(limit))

	cursor, err := database.Posts.Find(ctx, filter, findOptions)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}

	respondJSON(w, http.StatusOK, posts)
}

// GetPost returns a single post, owner-only.
func GetPost(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	post, status := loadOwnedPost(ctx, chi.URLParam(r, "id"), userID)
	if status != http.StatusOK {
		respondMessage(w, status, postErrorMessage(status))
		return
	}

	respondJSON(w, http.StatusOK, post)
}

// GeneratePost reads the caller's profile, runs the content generator
// and persists the result as a new Pending post.
func GeneratePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
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

	content, imageURL, err := contentGenerator.Generate(&user)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Error generating post: "+err.Error())
		return
	}

	post := models.Post{
		PostID:    uuid.NewString(),
		UserID:    userID,
		Content:   content,
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if imageURL != "" {
		post.ImageURL = &imageURL
	}

	if _, err := database.Posts.InsertOne(ctx, post); err != nil {
		respondMessage(w, http.StatusInternalServerError, "Error generating post: failed to save")
		return
	}

	respondJSON(w, http.StatusCreated, GeneratePostResponse{
		Success: true,
		Message: "Post generated successfully",
		PostID:  post.PostID,
	})
}

// ApprovePost runs the approval pipeline: Pending → Approved, publish,
// then Approved → Posted on delivery success or Approved →
// PublishFailed when any channel fails. The transition guards are
// conditional updates, so a concurrent approval loses cleanly.
func ApprovePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	post, status := loadOwnedPost(ctx, chi.URLParam(r, "id"), userID)
	if status != http.StatusOK {
		respondMessage(w, status, postErrorMessage(status))
		return
	}

	moved, err := transitionPost(ctx, post.PostID, models.StatusPending, models.StatusApproved)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !moved {
		respondMessage(w, http.StatusBadRequest, "Failed to approve post")
		return
	}

	// Synchronous delivery. The artificial latency blocks this request,
	// same as the real platform calls would without a task queue.
	results := publisher.Publish(post)
	delivered := true
	for _, res := range results {
		if !res.OK {
			delivered = false
			log.Printf("delivery to %s failed for post %s: %v", res.Channel, post.PostID, res.Err)
		}
	}

	finalStatus := models.StatusPosted
	message := "Post approved and published"
	if !delivered {
		finalStatus = models.StatusPublishFailed
		message = "Post approved but delivery failed"
	}

	if _, err := transitionPost(ctx, post.PostID, models.StatusApproved, finalStatus); err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}

	respondJSON(w, http.StatusOK, ApprovePostResponse{
		Success: true,
		Message: message,
		Status:  finalStatus,
	})
}

// RejectPost moves a Pending post to the terminal Rejected state.
func RejectPost(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	post, status := loadOwnedPost(ctx, chi.URLParam(r, "id"), userID)
	if status != http.StatusOK {
		respondMessage(w, status, postErrorMessage(status))
		return
	}

	moved, err := transitionPost(ctx, post.PostID, models.StatusPending, models.StatusRejected)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !moved {
		respondMessage(w, http.StatusBadRequest, "Failed to reject post")
		return
	}

	respondMessage(w, http.StatusOK, "Post rejected")
}

// loadOwnedPost fetches a post and enforces ownership. The int result
// is an HTTP status: 200, 404 or 403.
func loadOwnedPost(ctx context.Context, postID, userID string) (*models.Post, int) {
	var post models.Post
	err := database.Posts.FindOne(ctx, bson.M{"postId": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, http.StatusNotFound
	}
	if err != nil {
		return nil, http.StatusInternalServerError
	}
	if post.UserID != userID {
		return nil, http.StatusForbidden
	}
	return &post, http.StatusOK
}

// transitionPost conditionally advances a post's status: the update
// filter matches the expected prior state, so stale or concurrent
// callers see moved == false instead of clobbering a terminal state.
// Moving to Posted stamps postedAt; every other target leaves it null.
func transitionPost(ctx context.Context, postID, from, to string) (bool, error) {
	if !models.CanTransition(from, to) {
		return false, nil
	}

	updates := bson.M{"status": to}
	if to == models.StatusPosted {
		updates["postedAt"] = time.Now().UTC()
	}

	result, err := database.Posts.UpdateOne(ctx,
		bson.M{"postId": postID, "status": from},
		bson.M{"$set": updates},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func postErrorMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "Post not found"
	case http.StatusForbidden:
		return "Unauthorized"
	default:
		return "Database error"
	}
}
