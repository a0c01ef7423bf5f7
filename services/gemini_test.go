package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBlogIdeas(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		count int
		want  []string
	}{
		{
			name:  "numbered with blank line",
			raw:   "1. Idea A\n2. Idea B\n\n3. Idea C",
			count: 3,
			want:  []string{"Idea A", "Idea B", "Idea C"},
		},
		{
			name:  "dash and star markers",
			raw:   "- First idea\n* Second idea\nPlain third idea",
			count: 3,
			want:  []string{"First idea", "Second idea", "Plain third idea"},
		},
		{
			name:  "truncates to requested count",
			raw:   "1. A\n2. B\n3. C\n4. D\n5. E",
			count: 2,
			want:  []string{"A", "B"},
		},
		{
			name:  "fewer lines than requested",
			raw:   "1. Only one",
			count: 5,
			want:  []string{"Only one"},
		},
		{
			name:  "parenthesis markers and padding whitespace",
			raw:   "  1) Idea A  \n\t2) Idea B",
			count: 2,
			want:  []string{"Idea A", "Idea B"},
		},
		{
			name:  "line starting with a year is kept whole",
			raw:   "2026 trends to watch\n1. Real idea",
			count: 2,
			want:  []string{"2026 trends to watch", "Real idea"},
		},
		{
			name:  "empty output",
			raw:   "\n\n",
			count: 3,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBlogIdeas(tt.raw, tt.count))
		})
	}
}

func TestPromptBuildersIncludeInputs(t *testing.T) {
	social := BuildSocialMediaPrompt("remote work", "witty")
	assert.Contains(t, social, `"remote work"`)
	assert.Contains(t, social, "witty tone")

	ideas := BuildBlogIdeasPrompt("kubernetes", 7)
	assert.Contains(t, ideas, "Generate 7")
	assert.Contains(t, ideas, `"kubernetes"`)
	assert.Contains(t, ideas, "one per line, numbered")

	code := BuildCodeExplainerPrompt("fmt.Println(\"hi\")", "go")
	assert.Contains(t, code, "```go")
	assert.Contains(t, code, "fmt.Println(\"hi\")")

	blog := BuildFullBlogPrompt("Why Go?", "go, backend", "friendly")
	assert.Contains(t, blog, `Title: "Why Go?"`)
	assert.Contains(t, blog, "Keywords to include: go, backend")
	assert.Contains(t, blog, "Tone: friendly")
}

func TestClassifyProviderError(t *testing.T) {
	tests := []struct {
		raw     string
		message string
	}{
		{"googleapi: Error 400: API key not valid", "Invalid Gemini API key. Please contact support."},
		{"RESOURCE_EXHAUSTED: quota exceeded", "Generation service is rate limited. Please try again later."},
		{"blocked: SAFETY", "Content was blocked by safety filters. Please try different input."},
		{"model gemini-x not found", "The configured generation model is unavailable."},
		{"context deadline exceeded", "Generation timed out. Please try again."},
		{"dial tcp: connection refused", "Failed to generate content. Please try again."},
	}

	for _, tt := range tests {
		err := classifyProviderError(errors.New(tt.raw))

		var genErr *GenerationError
		if assert.True(t, errors.As(err, &genErr), tt.raw) {
			assert.Equal(t, tt.message, genErr.Message, tt.raw)
			// Raw cause is preserved for server logs
			assert.True(t, strings.Contains(err.Error(), tt.raw))
		}
	}
}
