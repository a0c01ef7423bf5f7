package services

import (
	"context"
	"errors"
	"testing"

	"synapse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	response string
	err      error
	calls    int
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestGenerateSuccess(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "gen_user", 100)

	fake := &fakeGenerator{response: "A punchy post about Go."}
	Generator = fake

	result, err := Generate(context.Background(), user, GenerationRequest{
		ToolType: models.ToolSocialMedia,
		Topic:    "Go generics",
		Tone:     "professional",
	})
	require.NoError(t, err)

	assert.Equal(t, "A punchy post about Go.", result.Content)
	assert.Equal(t, 10, result.CreditsUsed)
	assert.Equal(t, 90, result.RemainingCredits)
	assert.NotZero(t, result.GenerationID)
	assert.Equal(t, 1, fake.calls)

	// Exactly one history record, charged at the per-tool cost
	var records []models.GenerationRecord
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, models.ToolSocialMedia, records[0].ToolType)
	assert.Equal(t, 10, records[0].CreditsUsed)
	assert.Equal(t, "A punchy post about Go.", records[0].GeneratedContent)

	credits, err := GetCredits(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, credits)
}

func TestGenerateProviderFailureLeavesNoTrace(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "fail_user", 100)

	Generator = &fakeGenerator{err: &GenerationError{Message: "Generation service is rate limited. Please try again later."}}

	_, err := Generate(context.Background(), user, GenerationRequest{
		ToolType: models.ToolSocialMedia,
		Topic:    "anything",
		Tone:     "casual",
	})
	require.Error(t, err)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))

	// No deduction, no history record
	credits, err := GetCredits(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, credits)

	var count int64
	require.NoError(t, db.Model(&models.GenerationRecord{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGenerateUnclassifiedFailureIsWrapped(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "wrap_user", 100)

	Generator = &fakeGenerator{err: errors.New("connection reset by peer")}

	_, err := Generate(context.Background(), user, GenerationRequest{
		ToolType: models.ToolCodeExplainer,
		Code:     "package main",
		Language: "go",
	})

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, "Failed to generate content. Please try again.", genErr.Message)
}

func TestGenerateInsufficientCreditsSkipsProvider(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "broke_user", 25)

	fake := &fakeGenerator{response: "should never run"}
	Generator = fake

	_, err := Generate(context.Background(), user, GenerationRequest{
		ToolType: models.ToolFullBlog, // costs 30
		Title:    "A title",
		Keywords: "go, fiber",
		Tone:     "casual",
	})

	var insufficient *InsufficientCreditsError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 30, insufficient.Required)
	assert.Equal(t, 25, insufficient.Available)
	assert.Zero(t, fake.calls, "provider must not be called for a doomed request")

	credits, err := GetCredits(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, credits)
}

func TestGenerateBlogIdeasParsesAndJoins(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "ideas_user", 100)

	Generator = &fakeGenerator{response: "1. Idea A\n2. Idea B\n\n3. Idea C"}

	result, err := Generate(context.Background(), user, GenerationRequest{
		ToolType: models.ToolBlogIdeas,
		Keyword:  "golang",
		Count:    3,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Idea A", "Idea B", "Idea C"}, result.Ideas)
	assert.Equal(t, 15, result.CreditsUsed)
	assert.Equal(t, 85, result.RemainingCredits)

	record, err := GetGenerationByID(user.ID, result.GenerationID)
	require.NoError(t, err)
	assert.Equal(t, "Idea A\n\nIdea B\n\nIdea C", record.GeneratedContent)
}

func TestToolCost(t *testing.T) {
	setupTestConfig()

	tests := []struct {
		tool models.ToolType
		cost int
	}{
		{models.ToolSocialMedia, 10},
		{models.ToolBlogIdeas, 15},
		{models.ToolCodeExplainer, 20},
		{models.ToolFullBlog, 30},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.cost, ToolCost(tt.tool), string(tt.tool))
	}
}

func TestGenerateEndToEndScenario(t *testing.T) {
	db := setupTestDB(t)

	// New user syncs in with the initial grant
	user, isNew, err := SyncUser("e2e_uid", "e2e@example.com", "E2E User")
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, 100, user.Credits)

	// Provider failure: balance and history untouched
	Generator = &fakeGenerator{err: &GenerationError{Message: "Generation timed out. Please try again."}}
	_, err = Generate(context.Background(), user, GenerationRequest{
		ToolType: models.ToolSocialMedia,
		Topic:    "launch day",
		Tone:     "excited",
	})
	require.Error(t, err)

	credits, err := GetCredits(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, credits)

	// Provider success: balance 90, exactly one social_media record
	Generator = &fakeGenerator{response: "We are live! 🚀"}
	result, err := Generate(context.Background(), user, GenerationRequest{
		ToolType: models.ToolSocialMedia,
		Topic:    "launch day",
		Tone:     "excited",
	})
	require.NoError(t, err)
	assert.Equal(t, 90, result.RemainingCredits)

	var records []models.GenerationRecord
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, models.ToolSocialMedia, records[0].ToolType)
}
