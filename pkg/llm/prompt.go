package llm

import (
	"fmt"
	"strings"
	"time"
)

const styleRules = `You are a professional journalist for "The Limelight Post" covering celebrity and influencer news.

WRITING STYLE - HYBRID TABLOID/JOURNALIST (CRITICAL):
- Headlines: Punchy, dramatic, attention-grabbing (tabloid energy)
- Content: Factual, sourced, credible (journalistic integrity)
- Lead with the most shocking/interesting fact first
- Use power words: "Stuns", "Reveals", "Breaks Silence", "Shocks Fans"
- Include proper citations for credibility ("according to...", "sources confirm...")
- Mix tabloid excitement with hard facts and real quotes
- Write like TMZ/Daily Mail BUT with real sources and dates
- Third-person perspective throughout`

// verticalFocus steers the story toward each vertical's beat.
var verticalFocus = map[string]string{
	"arts-music":      "Focus on music artists, concerts, album releases, entertainment industry news, and cultural events.",
	"fashion-culture": "Focus on fashion trends, designer news, celebrity style, runway events, and cultural movements.",
	"sports-leisure":  "Focus on athletes, sports events, fitness trends, esports, and leisure activities.",
	"business-news":   "Focus on startups, tech entrepreneurs, creator economy, business ventures, and industry innovations.",
}

// BuildStoryPrompts constructs the system/user prompt pair for one story.
// It is the single prompt construction site shared by the single-batch and
// daily-batch paths. The current date is taken from the clock, never from a
// baked-in literal.
func BuildStoryPrompts(input ComposeInput, now time.Time) (systemPrompt, userPrompt string) {
	today := now.Format("January 2, 2006")
	windowStart := now.AddDate(0, 0, -3).Format("January 2")

	var sys strings.Builder
	sys.WriteString(styleRules)
	sys.WriteString("\n\n")

	if input.Grounding.Context != "" {
		sys.WriteString("SOURCING REQUIREMENTS (MANDATORY):\n")
		sys.WriteString("- Every major claim MUST cite a source\n")
		sys.WriteString("- Use inline citations like: \"according to ESPN\" or \"Billboard confirms\"\n")
		sys.WriteString("- Extract and use REAL QUOTES from the provided sources\n")
		sys.WriteString("- Include specific details: dates, locations, numbers, names\n")
		sys.WriteString("- DO NOT fabricate information - only use facts from the provided sources\n")
		sys.WriteString(fmt.Sprintf("- TODAY'S DATE: %s - mention if this is breaking/recent\n", today))
		sys.WriteString(fmt.Sprintf("- Stories MUST be from the last 3 days (%s - %s)\n\n", windowStart, today))
		sys.WriteString("SOURCES PROVIDED (LAST 3 DAYS ONLY):\n")
		sys.WriteString(input.Grounding.Context)
		sys.WriteString("\n")
	} else {
		sys.WriteString("- Generate realistic celebrity/influencer news stories\n")
		sys.WriteString("- Create plausible quotes and scenarios\n")
	}
	sys.WriteString("\nWrite stories that are BOTH exciting AND credible.")

	var usr strings.Builder
	usr.WriteString(fmt.Sprintf("Write a celebrity/influencer news story for %q.\n\n", input.Vertical))
	if focus, ok := verticalFocus[input.Vertical]; ok {
		usr.WriteString("Focus: " + focus + "\n\n")
	}

	if input.CustomPrompt != "" {
		usr.WriteString(fmt.Sprintf("SUBJECT: %q\nBuild the story around %s as the main subject.\n\n", input.CustomPrompt, input.CustomPrompt))
	}

	if input.Grounding.Context != "" {
		usr.WriteString("CRITICAL INSTRUCTIONS:\n")
		usr.WriteString("1. Base this story ENTIRELY on the RECENT sources provided above (last 3 days)\n")
		usr.WriteString("2. Lead with the most dramatic/shocking angle from the sources\n")
		usr.WriteString("3. Cite sources inline (e.g., \"according to ESPN\", \"Billboard reports\", etc.)\n")
		usr.WriteString("4. Use REAL quotes from the sources (in quotation marks with attribution)\n")
		usr.WriteString("5. Include specific dates, locations, and numbers\n")
		usr.WriteString("6. Maintain factual accuracy - do not embellish or fabricate\n")
		usr.WriteString(fmt.Sprintf("7. TODAY IS %s - make it feel CURRENT and BREAKING\n", strings.ToUpper(today)))
		usr.WriteString("8. Reject any sources older than 3 days - only use FRESH news\n\n")
	}

	usr.WriteString("Return ONLY valid JSON (no markdown, no extra text):\n")
	usr.WriteString("{\n")
	usr.WriteString(`  "title": "Punchy tabloid-style headline with power words (70 characters max)",` + "\n")
	usr.WriteString(`  "excerpt": "2-sentence dramatic lead with the most shocking fact first",` + "\n")
	if input.Grounding.Context != "" {
		usr.WriteString(`  "content": "4-6 paragraphs mixing tabloid energy with journalistic sourcing - cite sources inline. Use paragraph breaks (\n\n). Include direct quotes with attribution.",` + "\n")
	} else {
		usr.WriteString(`  "content": "4-6 paragraphs mixing tabloid energy with journalistic sourcing. Use paragraph breaks (\n\n). Include direct quotes with attribution.",` + "\n")
	}
	usr.WriteString(`  "tags": ["Tag1", "Tag2", "Tag3", "Breaking News"],` + "\n")
	if len(input.Grounding.Sources) > 0 {
		usr.WriteString(`  "imageQuery": "2-3 keywords for image search",` + "\n")
		usr.WriteString(`  "sources": [{"title": "...", "url": "..."}] - echo the provided source list` + "\n")
	} else {
		usr.WriteString(`  "imageQuery": "2-3 keywords for image search"` + "\n")
	}
	usr.WriteString("}")

	return sys.String(), usr.String()
}

const polishSystemPrompt = `You are a professional editor for The Limelight Post, a modern tabloid covering influencers and celebrities.

YOUR VOICE:
- Hybrid tabloid/journalist style
- Punchy, engaging headlines and intros
- Factual content with dramatic flair
- Professional but entertaining
- Perfect grammar and spelling

REWRITE THE FOLLOWING STORY:
1. Keep all facts and information intact
2. Fix any spelling/grammar errors
3. Add tabloid energy to the writing
4. Make it more engaging and readable
5. Keep the same general structure
6. Add excitement without fabricating details

Return ONLY the polished content, no explanations.`

func buildPolishUserPrompt(input PolishInput) string {
	return fmt.Sprintf("Title: %s\n\nContent:\n%s", input.Title, input.Content)
}
