package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"synapse/config"

	"google.golang.org/genai"
)

// ContentGenerator is the adapter contract around the external text generator:
// prompt in, text out, fallible. The workflow depends on this interface so
// tests can substitute a fake.
type ContentGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Generator is the process-wide content generator, set during startup
var Generator ContentGenerator

// GeminiClient calls the Gemini API through the official genai SDK
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds the Gemini-backed generator from configuration
func NewGeminiClient(ctx context.Context) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: config.AppConfig.GeminiApiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{
		client: client,
		model:  config.AppConfig.GeminiModel,
	}, nil
}

// Generate runs one prompt against the configured model
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("Gemini API error: %v", err)
		return "", classifyProviderError(err)
	}
	return result.Text(), nil
}

// classifyProviderError maps upstream failures to distinct user-facing
// messages. The provider gives no structured error contract, so this matches
// on message content, best effort.
func classifyProviderError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "API_KEY_INVALID") || strings.Contains(msg, "API key not valid"):
		return &GenerationError{Message: "Invalid Gemini API key. Please contact support.", Err: err}
	case strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return &GenerationError{Message: "Generation service is rate limited. Please try again later.", Err: err}
	case strings.Contains(msg, "SAFETY"):
		return &GenerationError{Message: "Content was blocked by safety filters. Please try different input.", Err: err}
	case strings.Contains(msg, "not found") || strings.Contains(msg, "404"):
		return &GenerationError{Message: "The configured generation model is unavailable.", Err: err}
	case strings.Contains(msg, "context deadline exceeded"):
		return &GenerationError{Message: "Generation timed out. Please try again.", Err: err}
	default:
		return &GenerationError{Message: "Failed to generate content. Please try again.", Err: err}
	}
}

// BuildSocialMediaPrompt renders the prompt for a social media post
func BuildSocialMediaPrompt(topic, tone string) string {
	return fmt.Sprintf(`Create an engaging social media post about "%s" with a %s tone.
The post should be:
- Concise and attention-grabbing (150-250 characters)
- Include relevant emojis
- End with a call-to-action or thought-provoking question
- Be suitable for platforms like Twitter, LinkedIn, or Facebook

Just provide the post content, no additional explanations.`, topic, tone)
}

// BuildBlogIdeasPrompt renders the prompt for blog title ideas
func BuildBlogIdeasPrompt(keyword string, count int) string {
	return fmt.Sprintf(`Generate %d creative and SEO-friendly blog post title ideas about "%s".
Requirements:
- Each title should be unique and engaging
- Include the keyword or related terms
- Make them actionable and compelling
- Suitable for various audiences

Format: Provide only the titles, one per line, numbered. No additional explanations.`, count, keyword)
}

// BuildCodeExplainerPrompt renders the prompt for a code explanation
func BuildCodeExplainerPrompt(code, language string) string {
	return fmt.Sprintf(`Explain the following %s code in natural language:

`+"```%s\n%s\n```"+`

Provide a clear, detailed explanation that covers:
1. What the code does (overall purpose)
2. How it works (step-by-step breakdown)
3. Key concepts or patterns used
4. Any potential issues or improvements

Make the explanation beginner-friendly but thorough.`, language, language, code)
}

// BuildFullBlogPrompt renders the prompt for a complete blog post
func BuildFullBlogPrompt(title, keywords, tone string) string {
	return fmt.Sprintf(`Write a comprehensive, well-structured blog post with the following specifications:

Title: "%s"
Keywords to include: %s
Tone: %s

Requirements:
- Create a detailed, engaging blog post (approximately 2000-3000 words)
- Include an attention-grabbing introduction
- Use proper headings (H2, H3) to structure the content
- Include 6-8 main sections with detailed explanations
- Add relevant examples, statistics, or case studies where appropriate
- Include actionable tips or takeaways
- End with a strong conclusion and call-to-action
- Use the keywords naturally throughout the content
- Make it SEO-friendly and reader-friendly
- Format with proper markdown (headings, lists, bold, italic)

Write the complete blog post now:`, title, keywords, tone)
}

// ParseBlogIdeas splits the generator's free-text output into a list of
// ideas. The upstream gives no grammar guarantee, so this strips enumeration
// markers line by line and tolerates malformed lines. At most count ideas
// are returned.
func ParseBlogIdeas(raw string, count int) []string {
	ideas := make([]string, 0, count)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = stripEnumerationMarker(line)
		if line == "" {
			continue
		}
		ideas = append(ideas, line)
		if len(ideas) == count {
			break
		}
	}
	return ideas
}

// stripEnumerationMarker removes a leading "1.", "12)", "-" or "*" marker
func stripEnumerationMarker(line string) string {
	trimmed := strings.TrimLeft(line, "0123456789")
	if trimmed != line {
		if strings.HasPrefix(trimmed, ".") || strings.HasPrefix(trimmed, ")") {
			return strings.TrimSpace(trimmed[1:])
		}
		return line
	}
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return strings.TrimSpace(line[2:])
	}
	return line
}
