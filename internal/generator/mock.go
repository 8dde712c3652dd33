package generator

import (
	"fmt"
	"log/slog"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/kingkongandy/limelight-post/internal/model"
)

// mockPool holds the fixed phrase pools one vertical draws from. Excerpt
// templates take (subject, topic) in that order.
type mockPool struct {
	subjects []string
	actions  []string
	topics   []string
	tags     []string
	excerpts []string
}

var mockPools = map[model.Vertical]mockPool{
	model.VerticalArtsMusic: {
		subjects: []string{
			"Rising Pop Star Zara Moon", "Chart-Topping Producer DJ Nexus", "Grammy Winner Aria Stone",
			"Viral Rapper Koi Wave", "Indie Artist Phoenix Ray", "K-Pop Sensation Luna Park",
		},
		actions: []string{
			"Drops Surprise Album", "Announces World Tour", "Breaks Streaming Records",
			"Collaborates with", "Wins Major Award", "Goes Viral on TikTok", "Headlines Festival",
		},
		topics: []string{
			"new album release", "sold-out concert", "music video premiere", "chart-topping single",
			"award show performance", "studio collaboration", "live performance",
		},
		tags: []string{"Music", "Entertainment", "Trending", "Arts"},
		excerpts: []string{
			"The music world is buzzing as %s makes waves with %s that's already trending across social media.",
			"Fans can't stop talking about %s's latest move in the %s space, calling it a game-changer.",
		},
	},
	model.VerticalFashionCulture: {
		subjects: []string{
			"Fashion Icon Stella Laurent", "Supermodel Jade Chen", "Designer Maven Rocco Voss",
			"Style Influencer Mia Rose", "Runway Star Nico Banks", "Trendsetter Quinn Lee",
		},
		actions: []string{
			"Debuts New Collection", "Stuns at Fashion Week", "Launches Sustainable Line",
			"Breaks Fashion Rules", "Sets New Trend", "Partners with Luxury Brand", "Redesigns Red Carpet",
		},
		topics: []string{
			"fashion week debut", "designer collaboration", "sustainable fashion", "style revolution",
			"runway moment", "brand partnership", "cultural impact",
		},
		tags: []string{"Fashion", "Style", "Culture", "Trending"},
		excerpts: []string{
			"Fashion insiders are calling %s's %s the most talked-about moment of the season.",
			"%s continues to redefine style with a bold %s that has everyone watching.",
		},
	},
	model.VerticalSportsLeisure: {
		subjects: []string{
			"Olympic Champion Marcus Ford", "Pro Athlete Jenna Storm", "E-Sports Legend Cyber Nova",
			"Fitness Icon Tyler Cross", "Tennis Star Aria Williams", "Basketball Phenom Jay Rivers",
		},
		actions: []string{
			"Breaks World Record", "Wins Championship", "Signs Historic Deal",
			"Dominates Tournament", "Achieves Career Milestone", "Launches Fitness Brand", "Makes Comeback",
		},
		topics: []string{
			"championship victory", "record-breaking performance", "major tournament", "training innovation",
			"sports technology", "athlete wellness", "competitive gaming",
		},
		tags: []string{"Sports", "Athletics", "Competition", "Fitness"},
		excerpts: []string{
			"%s proves once again why they're at the top with an incredible %s performance.",
			"The athletic world is celebrating as %s achieves a stunning %s milestone.",
		},
	},
	model.VerticalBusinessNews: {
		subjects: []string{
			"Tech Mogul Jordan Park", "Entrepreneur Sophia Blake", "Startup Founder Alex Rivera",
			"Investor Maven Dana Sterling", "Creator Economy Pioneer Casey Lin", "Business Titan Morgan Hayes",
		},
		actions: []string{
			"Raises $100M Funding", "Disrupts Industry", "Launches Revolutionary App",
			"Acquires Competitor", "Goes Public", "Unveils Innovation", "Announces Partnership",
		},
		topics: []string{
			"startup funding", "tech innovation", "market disruption", "creator platform",
			"business strategy", "venture capital", "digital economy",
		},
		tags: []string{"Business", "Tech", "Innovation", "Startups"},
		excerpts: []string{
			"Tech and business circles are abuzz as %s makes bold moves in the %s sector.",
			"%s's latest %s announcement signals major shifts in the industry landscape.",
		},
	},
}

var capitalizedPhrase = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)

// synthesizeMock builds count template stories for the vertical at zero API
// cost. Content is randomized but every story satisfies the full Story
// contract.
func (g *Generator) synthesizeMock(vertical model.Vertical, count int, customPrompt string) []model.Story {
	pool, ok := mockPools[vertical]
	if !ok {
		pool = mockPools[model.VerticalBusinessNews]
	}

	stories := make([]model.Story, 0, count)
	for i := 0; i < count; i++ {
		subject := pool.subjects[rand.Intn(len(pool.subjects))]
		if customPrompt != "" {
			// A capitalized phrase in the prompt is treated as the subject's
			// name; otherwise the whole prompt stands in for the subject.
			if name := capitalizedPhrase.FindString(customPrompt); name != "" {
				subject = name
			} else {
				subject = customPrompt
			}
		}

		action := pool.actions[rand.Intn(len(pool.actions))]
		topic := pool.topics[rand.Intn(len(pool.topics))]

		title := subject + " " + action + mockAngle(customPrompt)
		excerpt := fmt.Sprintf(pool.excerpts[rand.Intn(len(pool.excerpts))], subject, topic)

		stories = append(stories, model.Story{
			ID:          model.NewStoryID("mock"),
			Title:       title,
			Excerpt:     excerpt,
			Content:     mockContent(subject, action, topic, customPrompt),
			Vertical:    vertical,
			Author:      model.AuthorMock,
			Date:        time.Now().Format("2006-01-02"),
			ImageURL:    g.images.Resolve(subject),
			Tags:        mockTags(pool.tags, customPrompt),
			AIGenerated: true,
			Source:      model.SourceAI,
		})
	}

	slog.Info("synthesized mock stories", "vertical", vertical, "count", len(stories))
	return stories
}

// mockAngle picks a headline suffix by keyword-matching the custom prompt
// against a small set of tones.
func mockAngle(customPrompt string) string {
	keywords := strings.ToLower(customPrompt)
	switch {
	case strings.Contains(keywords, "controversy") || strings.Contains(keywords, "scandal"):
		return " Amid Controversy"
	case strings.Contains(keywords, "positive") || strings.Contains(keywords, "inspiring"):
		return " in Inspiring Move"
	case strings.Contains(keywords, "gen z") || strings.Contains(keywords, "young"):
		return " as Gen Z Icon"
	case strings.Contains(keywords, "breaking") || strings.Contains(keywords, "urgent"):
		return " - Breaking News"
	}
	return ""
}

func mockContent(subject, action, topic, customPrompt string) string {
	intro := fmt.Sprintf("%s has captured attention with developments in %s. ", subject, topic)
	if customPrompt != "" {
		intro = fmt.Sprintf("%s has made headlines with a move that directly addresses %s. ", subject, strings.ToLower(customPrompt))
	}

	return intro + fmt.Sprintf(`Industry insiders are calling this a watershed moment that could reshape the landscape.

The announcement comes at a crucial time when the industry is experiencing rapid evolution. "%s is exactly what we need right now," says entertainment analyst Jordan Mitchell. "This shows real vision and understanding of where things are heading."

Sources close to %s reveal this has been carefully planned for months, with a dedicated team working behind the scenes. Early reactions across social media have been overwhelmingly positive, with fans and industry professionals alike praising the bold approach.

What makes this particularly significant is the timing and execution. As one industry expert notes, "This isn't just another %s - this is %s setting a new standard for excellence."

As the story continues to develop, all eyes will be on %s to see what comes next. With this momentum, the possibilities seem endless.`,
		action, subject, topic, subject, subject)
}

func mockTags(base []string, customPrompt string) []string {
	tags := make([]string, 0, len(base)+2)
	tags = append(tags, base...)
	if customPrompt != "" {
		tags = append(tags, firstWords(customPrompt, 2))
	}
	tags = append(tags, "Breaking News")
	return normalizeTags(tags)
}
