package generatorValidators

import (
	"strings"

	"synapse/middleware"

	"github.com/gofiber/fiber/v2"
)

func SocialMedia() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Topic string `json:"topic"`
			Tone  string `json:"tone"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		errors := make(map[string]string)

		reqData.Topic = strings.TrimSpace(reqData.Topic)
		if reqData.Topic == "" {
			errors["topic"] = "Topic is required!"
		} else if len(reqData.Topic) > 200 {
			errors["topic"] = "Topic must not exceed 200 characters!"
		}

		reqData.Tone = strings.TrimSpace(reqData.Tone)
		if reqData.Tone == "" {
			errors["tone"] = "Tone is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSocialMedia", reqData)
		return c.Next()
	}
}

func BlogIdeas() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Keyword string `json:"keyword"`
			Count   int    `json:"count"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		errors := make(map[string]string)

		reqData.Keyword = strings.TrimSpace(reqData.Keyword)
		if reqData.Keyword == "" {
			errors["keyword"] = "Keyword is required!"
		} else if len(reqData.Keyword) > 100 {
			errors["keyword"] = "Keyword must not exceed 100 characters!"
		}

		if reqData.Count < 1 || reqData.Count > 10 {
			errors["count"] = "Count must be between 1 and 10!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBlogIdeas", reqData)
		return c.Next()
	}
}

func CodeExplainer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Code     string `json:"code"`
			Language string `json:"language"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Code) == "" {
			errors["code"] = "Code is required!"
		} else if len(reqData.Code) > 20000 {
			errors["code"] = "Code must not exceed 20000 characters!"
		}

		reqData.Language = strings.TrimSpace(reqData.Language)
		if reqData.Language == "" {
			errors["language"] = "Language is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCodeExplainer", reqData)
		return c.Next()
	}
}

func FullBlog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title    string `json:"title"`
			Keywords string `json:"keywords"`
			Tone     string `json:"tone"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) > 200 {
			errors["title"] = "Title must not exceed 200 characters!"
		}

		reqData.Keywords = strings.TrimSpace(reqData.Keywords)
		if reqData.Keywords == "" {
			errors["keywords"] = "Keywords are required!"
		}

		reqData.Tone = strings.TrimSpace(reqData.Tone)
		if reqData.Tone == "" {
			errors["tone"] = "Tone is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFullBlog", reqData)
		return c.Next()
	}
}
