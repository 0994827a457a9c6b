package services

import (
	"strings"
	"testing"

	"github.com/samratmajumder/oksaar-social-assistant/internal/models"
)

func TestGenerateSingleTopic(t *testing.T) {
	g := NewTemplateGeneratorWithSeed(1)
	user := &models.User{Topics: []string{"AI"}}

	for i := 0; i < 20; i++ {
		content, imageURL, err := g.Generate(user)
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}

		if content.Micro == "" || content.Short == "" || content.Long == "" {
			t.Fatalf("expected all three variants populated, got %+v", content)
		}
		if !strings.Contains(content.Micro, "#AI") {
			t.Errorf("micro post missing topic hashtag: %q", content.Micro)
		}
		if len([]rune(content.Micro)) > 280 {
			t.Errorf("micro post exceeds 280 characters: %d", len([]rune(content.Micro)))
		}
		if !strings.Contains(content.Long, "Understanding the Impact of Ai") {
			t.Errorf("long post title not title-cased from topic: %q", firstLine(content.Long))
		}
		if !strings.Contains(imageURL, "placehold.co") || !strings.HasSuffix(imageURL, "text=AI") {
			t.Errorf("unexpected image URL: %q", imageURL)
		}
	}
}

func TestGenerateFallbackTopics(t *testing.T) {
	g := NewTemplateGeneratorWithSeed(7)
	user := &models.User{}

	content, _, err := g.Generate(user)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	found := false
	for _, topic := range fallbackTopics {
		if strings.Contains(content.Short, topic) {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("short post does not mention any fallback topic: %q", content.Short)
	}
}

func TestGenerateMultiWordTopicImageURL(t *testing.T) {
	g := NewTemplateGeneratorWithSeed(3)
	user := &models.User{Topics: []string{"machine learning"}}

	_, imageURL, err := g.Generate(user)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !strings.HasSuffix(imageURL, "text=machine+learning") {
		t.Errorf("spaces not replaced with + in image URL: %q", imageURL)
	}
}

func TestShortPostStructure(t *testing.T) {
	g := NewTemplateGeneratorWithSeed(11)
	short := g.shortPost("business")

	blocks := strings.Split(short, "\n\n")
	if len(blocks) != 3 {
		t.Fatalf("expected intro/insights/outro blocks, got %d: %q", len(blocks), short)
	}

	insights := strings.Split(blocks[1], "\n")
	if len(insights) != 2 {
		t.Fatalf("expected exactly two insight lines, got %d", len(insights))
	}
	if insights[0] == insights[1] {
		t.Errorf("insight lines must be sampled without replacement: %q", insights[0])
	}
	if !strings.HasPrefix(blocks[0], "I've been exploring business") {
		t.Errorf("unexpected intro: %q", blocks[0])
	}
	if !strings.HasPrefix(blocks[2], "What's your experience with business?") {
		t.Errorf("unexpected outro: %q", blocks[2])
	}
}

func TestSampleTwoAlwaysDistinct(t *testing.T) {
	g := NewTemplateGeneratorWithSeed(42)
	items := []string{"a", "b", "c"}

	for i := 0; i < 100; i++ {
		picked := g.sampleTwo(items)
		if len(picked) != 2 {
			t.Fatalf("expected 2 items, got %d", len(picked))
		}
		if picked[0] == picked[1] {
			t.Fatalf("duplicate pick: %v", picked)
		}
	}
}

func TestHashtag(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"AI", "AI"},
		{"artificial intelligence", "artificialintelligence"},
		{"  spaced  out  ", "spacedout"},
	}
	for _, tt := range tests {
		if got := hashtag(tt.topic); got != tt.want {
			t.Errorf("hashtag(%q) = %q, want %q", tt.topic, got, tt.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AI", "Ai"},
		{"machine learning", "Machine Learning"},
		{"web3", "Web3"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx != -1 {
		return s[:idx]
	}
	return s
}
