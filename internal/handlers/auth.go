package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/samratmajumder/oksaar-social-assistant/internal/database"
	"github.com/samratmajumder/oksaar-social-assistant/internal/models"
	"github.com/samratmajumder/oksaar-social-assistant/internal/services"
	"github.com/samratmajumder/oksaar-social-assistant/pkg/utils"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued bearer token alongside the user ID.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId,omitempty"`
	Token   string `json:"token,omitempty"`
}

// Register handles user registration. A fresh user starts with an empty
// generation profile; the fields exist on the document from day one so
// profile updates are plain $set operations.
func Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if len(req.Password) < 6 {
		respondMessage(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var existing models.User
	err := database.Users.FindOne(ctx, bson.M{"email": req.Email}).Decode(&existing)
	if err == nil {
		respondMessage(w, http.StatusConflict, "Email already registered")
		return
	}
	if err != mongo.ErrNoDocuments {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		UserID:      uuid.NewString(),
		Username:    req.Username,
		Email:       req.Email,
		Password:    hashed,
		CreatedAt:   time.Now().UTC(),
		Topics:      []string{},
		ArticleURLs: []string{},
	}

	if _, err := database.Users.InsertOne(ctx, user); err != nil {
		respondMessage(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := services.CreateSession(user.UserID)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	respondJSON(w, http.StatusCreated, AuthResponse{
		Success: true,
		Message: "User registered successfully",
		UserID:  user.UserID,
		Token:   token,
	})
}

// Login verifies credentials and issues a fresh 7-day bearer token.
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var user models.User
	err := database.Users.FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		respondMessage(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}

	valid, err := utils.VerifyPassword(req.Password, user.Password)
	if err != nil || !valid {
		respondMessage(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := services.CreateSession(user.UserID)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	respondJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		UserID:  user.UserID,
		Token:   token,
	})
}

// Logout invalidates the presented bearer token.
func Logout(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		respondMessage(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	if _, ok := services.ValidateSession(token); !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	if err := services.InvalidateSession(token); err != nil {
		respondMessage(w, http.StatusInternalServerError, "Failed to invalidate session")
		return
	}

	respondMessage(w, http.StatusOK, "Logged out")
}
