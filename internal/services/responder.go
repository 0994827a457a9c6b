package services

import (
	"fmt"
	"math/rand"
	"time"
)

// Responder drafts an assistant reply to an interaction. Template-based
// stand-in for a secondary language model.
type Responder interface {
	Reply(replyContent, username string) string
}

// TemplateResponder picks a canned acknowledgement addressed to the
// account owner's audience.
type TemplateResponder struct {
	rng *rand.Rand
}

func NewTemplateResponder() *TemplateResponder {
	return &TemplateResponder{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (t *TemplateResponder) Reply(replyContent, username string) string {
	templates := []string{
		fmt.Sprintf("Thanks for your comment, %s! I appreciate your perspective.", username),
		fmt.Sprintf("Great point, %s! I hadn't considered that angle before.", username),
		fmt.Sprintf("Thank you for engaging, %s. I'd love to hear more of your thoughts on this topic.", username),
		fmt.Sprintf("You raise an interesting question, %s. In my experience, it depends on the specific context.", username),
		fmt.Sprintf("I appreciate your feedback, %s! It's always valuable to get different perspectives.", username),
	}
	return templates[t.rng.Intn(len(templates))]
}
