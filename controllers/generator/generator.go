package generatorControllers

import (
	"synapse/middleware"
	"synapse/models"
	"synapse/services"

	"github.com/gofiber/fiber/v2"
)

// GenerateSocial produces a social media post for the authenticated user
func GenerateSocial(c *fiber.Ctx) error {
	authUid := c.Locals("authUid").(string)

	reqData, ok := c.Locals("validatedSocialMedia").(*struct {
		Topic string `json:"topic"`
		Tone  string `json:"tone"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	user, err := services.GetUserByAuthUID(authUid)
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	result, err := services.Generate(c.UserContext(), user, services.GenerationRequest{
		ToolType: models.ToolSocialMedia,
		Topic:    reqData.Topic,
		Tone:     reqData.Tone,
	})
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"content":          result.Content,
		"creditsUsed":      result.CreditsUsed,
		"remainingCredits": result.RemainingCredits,
		"generationId":     result.GenerationID,
	})
}

// GenerateBlogIdeas produces a list of blog title ideas
func GenerateBlogIdeas(c *fiber.Ctx) error {
	authUid := c.Locals("authUid").(string)

	reqData, ok := c.Locals("validatedBlogIdeas").(*struct {
		Keyword string `json:"keyword"`
		Count   int    `json:"count"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	user, err := services.GetUserByAuthUID(authUid)
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	result, err := services.Generate(c.UserContext(), user, services.GenerationRequest{
		ToolType: models.ToolBlogIdeas,
		Keyword:  reqData.Keyword,
		Count:    reqData.Count,
	})
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"ideas":            result.Ideas,
		"creditsUsed":      result.CreditsUsed,
		"remainingCredits": result.RemainingCredits,
		"generationId":     result.GenerationID,
	})
}

// ExplainCode produces a natural-language explanation of a code snippet
func ExplainCode(c *fiber.Ctx) error {
	authUid := c.Locals("authUid").(string)

	reqData, ok := c.Locals("validatedCodeExplainer").(*struct {
		Code     string `json:"code"`
		Language string `json:"language"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	user, err := services.GetUserByAuthUID(authUid)
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	result, err := services.Generate(c.UserContext(), user, services.GenerationRequest{
		ToolType: models.ToolCodeExplainer,
		Code:     reqData.Code,
		Language: reqData.Language,
	})
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"explanation":      result.Content,
		"creditsUsed":      result.CreditsUsed,
		"remainingCredits": result.RemainingCredits,
		"generationId":     result.GenerationID,
	})
}

// GenerateFullBlog produces a complete blog post. The upstream call can take
// tens of seconds; the workflow bounds it with the configured timeout.
func GenerateFullBlog(c *fiber.Ctx) error {
	authUid := c.Locals("authUid").(string)

	reqData, ok := c.Locals("validatedFullBlog").(*struct {
		Title    string `json:"title"`
		Keywords string `json:"keywords"`
		Tone     string `json:"tone"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	user, err := services.GetUserByAuthUID(authUid)
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	result, err := services.Generate(c.UserContext(), user, services.GenerationRequest{
		ToolType: models.ToolFullBlog,
		Title:    reqData.Title,
		Keywords: reqData.Keywords,
		Tone:     reqData.Tone,
	})
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"blogPost":         result.Content,
		"creditsUsed":      result.CreditsUsed,
		"remainingCredits": result.RemainingCredits,
		"generationId":     result.GenerationID,
	})
}
