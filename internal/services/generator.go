package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/samratmajumder/oksaar-social-assistant/internal/models"
)

// ContentGenerator produces a post bundle from a user's generation
// profile. The template implementation below stands in for a real
// language-model integration; swapping one in only means providing
// another implementation of this interface.
type ContentGenerator interface {
	Generate(user *models.User) (models.PostContent, string, error)
}

// fallbackTopics is used when a profile has no topics configured.
var fallbackTopics = []string{"technology", "artificial intelligence", "business", "productivity"}

// TemplateGenerator generates content by template substitution. Pure
// aside from randomness; no external calls, no persisted state.
type TemplateGenerator struct {
	rng *rand.Rand
}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewTemplateGeneratorWithSeed is used by tests that need deterministic picks.
func NewTemplateGeneratorWithSeed(seed int64) *TemplateGenerator {
	return &TemplateGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Generate builds the three content variants and an illustrative image
// URL for one uniformly selected topic.
func (g *TemplateGenerator) Generate(user *models.User) (models.PostContent, string, error) {
	topic := g.pickTopic(user.Topics)

	content := models.PostContent{
		Micro: g.microPost(topic),
		Short: g.shortPost(topic),
		Long:  g.longPost(topic),
	}

	return content, g.imageURL(topic), nil
}

func (g *TemplateGenerator) pickTopic(topics []string) string {
	if len(topics) > 0 {
		return topics[g.rng.Intn(len(topics))]
	}
	return fallbackTopics[g.rng.Intn(len(fallbackTopics))]
}

// microPost returns an X-style post, ≤280 characters by construction.
// Hashtags are the topic with whitespace stripped.
func (g *TemplateGenerator) microPost(topic string) string {
	tag := hashtag(topic)
	templates := []string{
		fmt.Sprintf("Just published a new article on %s! Check it out and let me know what you think. #%s #ContentCreation", topic, tag),
		fmt.Sprintf("Interesting insight about %s: Did you know that innovation in this area has increased by 40%% in the last year? #%s", topic, tag),
		fmt.Sprintf("Looking for resources on %s? I've compiled a list of my favorites. Reply if you'd like me to share them! #%s #Resources", topic, tag),
		fmt.Sprintf("Question for my network: How has %s impacted your work recently? Share your experiences below! #%s #Discussion", topic, tag),
	}
	return templates[g.rng.Intn(len(templates))]
}

// shortPost returns a LinkedIn-style post: intro, two insight lines
// sampled without replacement, outro. Target is ~700 characters but the
// bound is template-size-dependent, not enforced.
func (g *TemplateGenerator) shortPost(topic string) string {
	intro := fmt.Sprintf("I've been exploring %s recently and wanted to share some thoughts.", topic)

	points := []string{
		fmt.Sprintf("🔑 Key insight: %s is transforming how we approach challenges in our field.", topic),
		fmt.Sprintf("📊 Recent data shows a 35%% increase in adoption of %s-related solutions.", topic),
		fmt.Sprintf("🔍 My research indicates that professionals who stay updated on %s tend to outperform their peers.", topic),
	}
	picked := g.sampleTwo(points)

	outro := fmt.Sprintf("What's your experience with %s? I'd love to hear your thoughts in the comments below!", topic)

	return intro + "\n\n" + strings.Join(picked, "\n") + "\n\n" + outro
}

// longPost returns a markdown blog post with a fixed section structure.
func (g *TemplateGenerator) longPost(topic string) string {
	titled := titleCase(topic)

	title := fmt.Sprintf("Understanding the Impact of %s in Today's Landscape", titled)

	intro := fmt.Sprintf("# %s\n\nIn recent years, %s has emerged as a critical factor in shaping how businesses and individuals operate. This post explores the key aspects of %s and why it matters for professionals today.\n", title, topic, topic)

	sections := []string{
		fmt.Sprintf("## The Evolution of %s\n\n%s has undergone significant transformation over the past decade. What started as a niche concept has now become mainstream, with applications spanning across industries. The rapid advancement in technology has played a crucial role in this evolution, making %s more accessible and effective.\n", titled, titled, topic),
		fmt.Sprintf("## Key Benefits of Adopting %s Strategies\n\n1. **Increased Efficiency**: Implementing %s-driven approaches can streamline operations and reduce redundancy.\n2. **Enhanced Decision Making**: Data from %s initiatives provides valuable insights for strategic planning.\n3. **Competitive Advantage**: Early adopters of %s methodologies often gain significant market advantage.\n4. **Scalability**: %s solutions typically offer greater scalability than traditional approaches.\n", titled, topic, topic, topic, topic),
		fmt.Sprintf("## Challenges and Considerations\n\nDespite its benefits, adopting %s is not without challenges. Organizations must consider factors such as implementation costs, training requirements, and integration with existing systems. Moreover, staying updated with rapidly evolving %s trends requires continuous learning and adaptation.\n", topic, topic),
		fmt.Sprintf("## Best Practices for %s Implementation\n\n- Start with clear objectives and metrics for success\n- Invest in proper training and resources\n- Begin with pilot projects before full-scale implementation\n- Establish feedback mechanisms to continuously improve\n- Partner with experienced professionals in the %s space\n", titled, topic),
	}

	conclusion := fmt.Sprintf("## Conclusion\n\n%s continues to reshape our professional landscape, offering both opportunities and challenges. By taking a strategic approach to %s adoption and staying informed about emerging trends, professionals can leverage its potential to drive meaningful results. I'm eager to hear about your experiences with %s - share your thoughts in the comments!", titled, topic, topic)

	references := fmt.Sprintf("## Further Reading\n\n- Smith, J. (2023). The Future of %s\n- %s Institute Annual Report 2023\n- Johnson, A. & Williams, B. (2022). Implementing %s at Scale", titled, titled, titled)

	return intro + "\n" + strings.Join(sections, "\n") + "\n\n" + conclusion + "\n\n" + references
}

// imageURL picks one of four placeholder image URLs for the topic.
func (g *TemplateGenerator) imageURL(topic string) string {
	escaped := strings.ReplaceAll(topic, " ", "+")
	urls := []string{
		"https://placehold.co/600x400/4285F4/FFFFFF/?text=" + escaped,
		"https://placehold.co/800x600/34A853/FFFFFF/?text=" + escaped,
		"https://placehold.co/900x500/FBBC05/FFFFFF/?text=" + escaped,
		"https://placehold.co/1200x630/EA4335/FFFFFF/?text=" + escaped,
	}
	return urls[g.rng.Intn(len(urls))]
}

// sampleTwo picks two distinct entries preserving their original order.
func (g *TemplateGenerator) sampleTwo(items []string) []string {
	i := g.rng.Intn(len(items))
	j := g.rng.Intn(len(items) - 1)
	if j >= i {
		j++
	}
	if i > j {
		i, j = j, i
	}
	return []string{items[i], items[j]}
}

// hashtag strips all whitespace from a topic.
func hashtag(topic string) string {
	return strings.Join(strings.Fields(topic), "")
}

// titleCase upper-cases the first letter of each word and lower-cases
// the rest, so "AI" becomes "Ai" and "machine learning" becomes
// "Machine Learning".
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
