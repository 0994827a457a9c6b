package models

import (
	"time"
)

// User holds both the account credentials and the content-generation
// profile. The schema keeps everything on one document, so the profile
// fields live here rather than in a separate collection.
type User struct {
	UserID    string    `bson:"userId" json:"userId"`
	Username  string    `bson:"username" json:"username"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"` // argon2id hash, never serialized
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`

	// Generation profile
	Topics         []string `bson:"topics" json:"topics"`
	ArticleURLs    []string `bson:"articleUrls" json:"articleUrls"`
	Purpose        string   `bson:"purpose" json:"purpose"`
	Tone           string   `bson:"tone" json:"tone"`
	SearchCriteria string   `bson:"searchCriteria" json:"searchCriteria"`
	Schedule       string   `bson:"schedule" json:"schedule"`
}

// Profile is the credential-free view returned by GET /api/profile.
type Profile struct {
	UserID         string   `json:"userId"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	Topics         []string `json:"topics"`
	ArticleURLs    []string `json:"articleUrls"`
	Purpose        string   `json:"purpose"`
	Tone           string   `json:"tone"`
	SearchCriteria string   `json:"searchCriteria"`
	Schedule       string   `json:"schedule"`
}

// ProfileView strips the credential hash from a user document.
func (u *User) ProfileView() Profile {
	topics := u.Topics
	if topics == nil {
		topics = []string{}
	}
	urls := u.ArticleURLs
	if urls == nil {
		urls = []string{}
	}
	return Profile{
		UserID:         u.UserID,
		Username:       u.Username,
		Email:          u.Email,
		Topics:         topics,
		ArticleURLs:    urls,
		Purpose:        u.Purpose,
		Tone:           u.Tone,
		SearchCriteria: u.SearchCriteria,
		Schedule:       u.Schedule,
	}
}
