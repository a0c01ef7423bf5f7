package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ToolType identifies which generator produced a record
type ToolType string

const (
	ToolSocialMedia   ToolType = "social_media"
	ToolBlogIdeas     ToolType = "blog_ideas"
	ToolCodeExplainer ToolType = "code_explainer"
	ToolFullBlog      ToolType = "full_blog"
)

// ValidToolTypes lists every accepted tool type
var ValidToolTypes = map[ToolType]bool{
	ToolSocialMedia:   true,
	ToolBlogIdeas:     true,
	ToolCodeExplainer: true,
	ToolFullBlog:      true,
}

// GenerationRecord is one entry of a user's generation history.
// InputPrompt shape varies by tool type:
//
//	social_media:   { topic, tone }
//	blog_ideas:     { keyword, count }
//	code_explainer: { code, language }
//	full_blog:      { title, keywords, tone }
type GenerationRecord struct {
	gorm.Model
	UserID           uint           `gorm:"not null;index:idx_generations_user_created" json:"userId"`
	ToolType         ToolType       `gorm:"type:varchar(50);not null" json:"toolType"`
	InputPrompt      datatypes.JSON `gorm:"not null" json:"inputPrompt"`
	GeneratedContent string         `gorm:"type:text;not null" json:"generatedContent"`
	CreditsUsed      int            `gorm:"not null" json:"creditsUsed"`
	ModelUsed        string         `gorm:"type:varchar(100);default:'gemini-2.5-pro'" json:"modelUsed"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (GenerationRecord) TableName() string {
	return "generation_records"
}
