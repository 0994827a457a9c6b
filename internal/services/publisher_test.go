package services

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/samratmajumder/oksaar-social-assistant/internal/models"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name    string
		content string
		max     int
		want    string
	}{
		{"shorter than max", "hello", 50, "hello"},
		{"exactly max", strings.Repeat("x", 50), 50, strings.Repeat("x", 50)},
		{"longer than max", strings.Repeat("x", 51), 50, strings.Repeat("x", 50) + "..."},
		{"empty", "", 50, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.content, tt.max); got != tt.want {
				t.Errorf("Preview() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSimulatedPublisherDeliversBothChannels(t *testing.T) {
	p := &SimulatedPublisher{rng: rand.New(rand.NewSource(1))} // zero delay for tests

	imageURL := "https://placehold.co/600x400/?text=AI"
	post := &models.Post{
		PostID:   "post-1",
		Content:  models.PostContent{Micro: "micro content", Short: "short content"},
		ImageURL: &imageURL,
	}

	results := p.Publish(post)
	if len(results) != 2 {
		t.Fatalf("expected 2 delivery results, got %d", len(results))
	}
	if results[0].Channel != ChannelX || results[1].Channel != ChannelLinkedIn {
		t.Errorf("unexpected channel order: %v", results)
	}
	for _, res := range results {
		if !res.OK || res.Err != nil {
			t.Errorf("simulated delivery must always succeed, got %+v", res)
		}
	}
}

func TestSimulatedPublisherNilImage(t *testing.T) {
	p := &SimulatedPublisher{rng: rand.New(rand.NewSource(1))}

	post := &models.Post{
		PostID:  "post-2",
		Content: models.PostContent{Micro: "m", Short: "s"},
	}

	results := p.Publish(post)
	for _, res := range results {
		if !res.OK {
			t.Errorf("delivery without image must still succeed, got %+v", res)
		}
	}
}

func TestChannelLabel(t *testing.T) {
	if got := channelLabel(ChannelX); got != "X" {
		t.Errorf("channelLabel(x) = %q", got)
	}
	if got := channelLabel(ChannelLinkedIn); got != "LinkedIn" {
		t.Errorf("channelLabel(linkedin) = %q", got)
	}
	if got := channelLabel("mastodon"); got != "mastodon" {
		t.Errorf("unknown channels pass through, got %q", got)
	}
}
