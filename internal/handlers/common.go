package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/samratmajumder/oksaar-social-assistant/internal/services"
)

// MessageResponse is the generic ack/error envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, MessageResponse{Success: status < 400, Message: message})
}

// extractBearerToken pulls the token out of an Authorization header.
// Returns "" when the header is missing or not a Bearer scheme.
func extractBearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// requireAuth validates the bearer session and returns the
// authenticated user's ID. Writes a 401 and returns false when the
// request carries no valid token.
func requireAuth(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		respondMessage(w, http.StatusUnauthorized, "Authentication required")
		return "", false
	}
	userID, ok := services.ValidateSession(token)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid or expired token")
		return "", false
	}
	return userID, true
}

// parsePageLimit reads ?page= and ?limit= with defaults and floors.
func parsePageLimit(pageStr, limitStr string, defaultLimit int) (page, limit int) {
	page = 1
	if pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			page = parsed
		}
	}
	limit = defaultLimit
	if limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	return page, limit
}
