package generatorRoutes

import (
	generatorControllers "synapse/controllers/generator"
	"synapse/middleware"
	generatorValidators "synapse/validators/generator"

	"github.com/gofiber/fiber/v2"
)

func SetupGeneratorRoutes(app *fiber.App) {
	generate := app.Group("/generate")

	generate.Post("/social", generatorValidators.SocialMedia(), middleware.JWTMiddleware, generatorControllers.GenerateSocial)
	generate.Post("/blog-ideas", generatorValidators.BlogIdeas(), middleware.JWTMiddleware, generatorControllers.GenerateBlogIdeas)
	generate.Post("/code-explainer", generatorValidators.CodeExplainer(), middleware.JWTMiddleware, generatorControllers.ExplainCode)
	generate.Post("/full-blog", generatorValidators.FullBlog(), middleware.JWTMiddleware, generatorControllers.GenerateFullBlog)
}
