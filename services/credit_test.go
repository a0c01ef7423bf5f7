package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeductCredits(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "deduct_user", 100)

	remaining, err := DeductCredits(user.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, 70, remaining)

	credits, err := GetCredits(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 70, credits)
}

func TestDeductCreditsInsufficient(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "short_user", 20)

	_, err := DeductCredits(user.ID, 30)
	require.Error(t, err)

	var insufficient *InsufficientCreditsError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 30, insufficient.Required)
	assert.Equal(t, 20, insufficient.Available)

	// Balance stays untouched after the failed deduct
	credits, err := GetCredits(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, credits)
}

func TestDeductCreditsUserMissing(t *testing.T) {
	setupTestDB(t)

	_, err := DeductCredits(9999, 10)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeductCreditsConcurrent(t *testing.T) {
	db := setupTestDB(t)
	// Balance covers exactly one of the two deductions
	user := createTestUser(t, db, "race_user", 50)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = DeductCredits(user.ID, 40)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			var insufficient *InsufficientCreditsError
			require.True(t, errors.As(err, &insufficient))
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent deduct may pass the balance")

	credits, err := GetCredits(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, credits)
	assert.GreaterOrEqual(t, credits, 0)
}

func TestCreditsNeverNegative(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "sequence_user", 25)

	type op struct {
		kind   string
		amount int
	}
	ops := []op{
		{"deduct", 10},
		{"deduct", 20}, // fails, only 15 left
		{"add", 5},
		{"deduct", 20},
		{"set", 7},
		{"deduct", 8}, // fails
		{"deduct", 7},
	}

	for _, o := range ops {
		switch o.kind {
		case "deduct":
			DeductCredits(user.ID, o.amount)
		case "add":
			_, err := AddCredits(user.ID, o.amount)
			require.NoError(t, err)
		case "set":
			require.NoError(t, SetCredits(user.ID, o.amount))
		}

		credits, err := GetCredits(user.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, credits, 0, "balance went negative after %s %d", o.kind, o.amount)
	}

	credits, err := GetCredits(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, credits)
}

func TestAddCredits(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "add_user", 10)

	total, err := AddCredits(user.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, 50, total)

	_, err = AddCredits(9999, 10)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSetCredits(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "set_user", 10)

	require.NoError(t, SetCredits(user.ID, 500))

	credits, err := GetCredits(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 500, credits)

	assert.ErrorIs(t, SetCredits(9999, 5), ErrUserNotFound)
}

func TestHasEnoughCredits(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "check_user", 15)

	ok, err := HasEnoughCredits(user.ID, 15)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = HasEnoughCredits(user.ID, 16)
	require.NoError(t, err)
	assert.False(t, ok)
}
