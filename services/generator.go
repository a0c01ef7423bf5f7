package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"synapse/config"
	"synapse/database"
	"synapse/models"

	"gorm.io/gorm"
)

// GenerationRequest carries the validated input for one generation run.
// Which fields matter depends on ToolType.
type GenerationRequest struct {
	ToolType models.ToolType

	// social_media
	Topic string
	Tone  string

	// blog_ideas
	Keyword string
	Count   int

	// code_explainer
	Code     string
	Language string

	// full_blog (Tone shared with social_media)
	Title    string
	Keywords string
}

// GenerationResult is the outcome of a successful workflow run
type GenerationResult struct {
	Content          string
	Ideas            []string // populated for blog_ideas only
	CreditsUsed      int
	RemainingCredits int
	GenerationID     uint
}

// ToolCost returns the configured credit cost for a tool
func ToolCost(tool models.ToolType) int {
	switch tool {
	case models.ToolSocialMedia:
		return config.AppConfig.CreditCostSocial
	case models.ToolBlogIdeas:
		return config.AppConfig.CreditCostBlog
	case models.ToolCodeExplainer:
		return config.AppConfig.CreditCostCode
	case models.ToolFullBlog:
		return config.AppConfig.CreditCostFullBlog
	}
	return 0
}

// Generate runs the credit-metered generation workflow: check the balance,
// call the generator, then deduct credits and append the history record in
// one transaction. A failed generator call leaves balance and history
// untouched; credits are only charged once the output exists.
func Generate(ctx context.Context, user *models.User, req GenerationRequest) (*GenerationResult, error) {
	cost := ToolCost(req.ToolType)

	// Reject early so a doomed request never reaches the provider
	if user.Credits < cost {
		return nil, &InsufficientCreditsError{Required: cost, Available: user.Credits}
	}

	prompt, inputPrompt := buildPrompt(req)

	ctx, cancel := context.WithTimeout(ctx, config.AppConfig.GenerationTimeout)
	defer cancel()

	raw, err := Generator.Generate(ctx, prompt)
	if err != nil {
		var genErr *GenerationError
		if errors.As(err, &genErr) {
			return nil, err
		}
		return nil, &GenerationError{Message: "Failed to generate content. Please try again.", Err: err}
	}

	result := &GenerationResult{
		Content:     raw,
		CreditsUsed: cost,
	}
	content := raw
	if req.ToolType == models.ToolBlogIdeas {
		result.Ideas = ParseBlogIdeas(raw, req.Count)
		content = strings.Join(result.Ideas, "\n\n")
		result.Content = content
	}

	inputJSON, err := json.Marshal(inputPrompt)
	if err != nil {
		return nil, err
	}

	// Charge and record atomically so a crash cannot charge without a record
	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		remaining, err := DeductCreditsTx(tx, user.ID, cost)
		if err != nil {
			return err
		}

		record := models.GenerationRecord{
			UserID:           user.ID,
			ToolType:         req.ToolType,
			InputPrompt:      inputJSON,
			GeneratedContent: content,
			CreditsUsed:      cost,
			ModelUsed:        config.AppConfig.GeminiModel,
		}
		if err := SaveGenerationTx(tx, &record); err != nil {
			return err
		}

		result.RemainingCredits = remaining
		result.GenerationID = record.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// buildPrompt renders the tool-specific prompt and the input snapshot stored
// with the history record
func buildPrompt(req GenerationRequest) (string, map[string]interface{}) {
	switch req.ToolType {
	case models.ToolSocialMedia:
		return BuildSocialMediaPrompt(req.Topic, req.Tone),
			map[string]interface{}{"topic": req.Topic, "tone": req.Tone}
	case models.ToolBlogIdeas:
		return BuildBlogIdeasPrompt(req.Keyword, req.Count),
			map[string]interface{}{"keyword": req.Keyword, "count": req.Count}
	case models.ToolCodeExplainer:
		return BuildCodeExplainerPrompt(req.Code, req.Language),
			map[string]interface{}{"code": req.Code, "language": req.Language}
	case models.ToolFullBlog:
		return BuildFullBlogPrompt(req.Title, req.Keywords, req.Tone),
			map[string]interface{}{"title": req.Title, "keywords": req.Keywords, "tone": req.Tone}
	}
	return "", nil
}
