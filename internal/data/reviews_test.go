package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewLifecycle(t *testing.T) {
	ctx := context.Background()
	m := newTestModels(t)

	created, err := m.Reviews.AddReview(ctx, Review{UserID: "user1", UserName: "John Doe", Rating: 4, Comment: "Good."})
	require.NoError(t, err)
	assert.Regexp(t, `^review\d+$`, created.ID)

	_, err = m.Reviews.AddReview(ctx, Review{UserID: "user2", UserName: "Jane", Rating: 5, Comment: "Great."})
	require.NoError(t, err)

	mine, err := m.Reviews.GetReviewsByUser(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)

	rating := 2
	updated, err := m.Reviews.UpdateReview(ctx, created.ID, ReviewPatch{Rating: &rating})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 2, updated.Rating)
	assert.Equal(t, "Good.", updated.Comment)

	got, err := m.Reviews.GetReviewByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	ok, err := m.Reviews.DeleteReview(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	all, err := m.Reviews.GetReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateReviewMissing(t *testing.T) {
	m := newTestModels(t)
	comment := "edited"
	updated, err := m.Reviews.UpdateReview(context.Background(), "review1", ReviewPatch{Comment: &comment})
	assert.NoError(t, err)
	assert.Nil(t, updated)
}
