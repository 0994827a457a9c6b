package services

import (
	"log"
	"math/rand"
	"time"

	"github.com/samratmajumder/oksaar-social-assistant/internal/database"
	"github.com/samratmajumder/oksaar-social-assistant/internal/models"
)

// Delivery channels.
const (
	ChannelX        = "x"
	ChannelLinkedIn = "linkedin"
)

// DeliveryResult is the per-channel outcome of a publish attempt.
type DeliveryResult struct {
	Channel string
	OK      bool
	Err     error
}

// Publisher delivers an approved post's content to the external
// channels. The simulated implementation below stands in for the real
// X and LinkedIn APIs; lifecycle logic only depends on this interface.
type Publisher interface {
	Publish(post *models.Post) []DeliveryResult
}

// SimulatedPublisher emulates the two platform APIs: an artificial
// delay per channel, a logged preview, and an append to the delivery
// log when PostgreSQL is configured. It never fails.
type SimulatedPublisher struct {
	MinDelay time.Duration
	MaxDelay time.Duration

	rng *rand.Rand
}

func NewSimulatedPublisher() *SimulatedPublisher {
	return &SimulatedPublisher{
		MinDelay: 500 * time.Millisecond,
		MaxDelay: 1500 * time.Millisecond,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Publish sends the micro variant to X and the short variant to
// LinkedIn, sequentially. The delay is synchronous and blocks the
// calling request, mirroring real API latency.
func (p *SimulatedPublisher) Publish(post *models.Post) []DeliveryResult {
	imageURL := ""
	if post.ImageURL != nil {
		imageURL = *post.ImageURL
	}

	results := []DeliveryResult{
		p.deliver(post.PostID, ChannelX, post.Content.Micro, imageURL),
		p.deliver(post.PostID, ChannelLinkedIn, post.Content.Short, imageURL),
	}
	return results
}

func (p *SimulatedPublisher) deliver(postID, channel, content, imageURL string) DeliveryResult {
	p.sleep()

	preview := Preview(content, 50)
	log.Printf("Posted to %s: %s", channelLabel(channel), preview)
	if imageURL != "" {
		log.Printf("With image: %s", imageURL)
	}

	recordDelivery(postID, channel, preview, imageURL, nil)

	return DeliveryResult{Channel: channel, OK: true}
}

func (p *SimulatedPublisher) sleep() {
	if p.MaxDelay <= p.MinDelay {
		time.Sleep(p.MinDelay)
		return
	}
	jitter := time.Duration(p.rng.Int63n(int64(p.MaxDelay - p.MinDelay)))
	time.Sleep(p.MinDelay + jitter)
}

// recordDelivery appends to the PostgreSQL delivery log. Best effort:
// a missing pool or a failed insert only logs.
func recordDelivery(postID, channel, preview, imageURL string, deliveryErr error) {
	if database.PostgresDB == nil {
		return
	}

	status := "delivered"
	errText := ""
	if deliveryErr != nil {
		status = "failed"
		errText = deliveryErr.Error()
	}

	_, err := database.PostgresDB.Exec(`
		INSERT INTO deliveries (post_id, channel, preview, image_url, status, error)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''))
	`, postID, channel, preview, imageURL, status, errText)
	if err != nil {
		log.Printf("failed to record delivery for post %s: %v", postID, err)
	}
}

// Preview truncates content to max characters, appending an ellipsis
// when anything was cut.
func Preview(content string, max int) string {
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max]) + "..."
}

func channelLabel(channel string) string {
	switch channel {
	case ChannelX:
		return "X"
	case ChannelLinkedIn:
		return "LinkedIn"
	default:
		return channel
	}
}
