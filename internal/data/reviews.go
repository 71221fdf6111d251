package data

import (
	"context"
)

type ReviewModel struct {
	list list[Review]
}

type ReviewPatch struct {
	UserName   *string `json:"userName"`
	UserAvatar *string `json:"userAvatar"`
	Rating     *int    `json:"rating"`
	Comment    *string `json:"comment"`
}

func (p ReviewPatch) apply(r *Review) {
	if p.UserName != nil {
		r.UserName = *p.UserName
	}
	if p.UserAvatar != nil {
		r.UserAvatar = *p.UserAvatar
	}
	if p.Rating != nil {
		r.Rating = *p.Rating
	}
	if p.Comment != nil {
		r.Comment = *p.Comment
	}
}

func (m ReviewModel) GetReviews(ctx context.Context) ([]Review, error) {
	return m.list.all(ctx)
}

func (m ReviewModel) GetReviewByID(ctx context.Context, id string) (*Review, error) {
	reviews, err := m.list.all(ctx)
	if err != nil {
		return nil, err
	}
	for i := range reviews {
		if reviews[i].ID == id {
			return &reviews[i], nil
		}
	}
	return nil, nil
}

func (m ReviewModel) GetReviewsByUser(ctx context.Context, userID string) ([]Review, error) {
	reviews, err := m.list.all(ctx)
	if err != nil {
		return nil, err
	}
	return filter(reviews, func(r Review) bool { return r.UserID == userID }), nil
}

func (m ReviewModel) AddReview(ctx context.Context, r Review) (*Review, error) {
	r.ID = newID("review")
	r.CreatedAt = now()
	err := m.list.modify(ctx, func(reviews []Review) ([]Review, bool) {
		return append(reviews, r), true
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (m ReviewModel) UpdateReview(ctx context.Context, id string, patch ReviewPatch) (*Review, error) {
	var updated *Review
	err := m.list.modify(ctx, func(reviews []Review) ([]Review, bool) {
		for i := range reviews {
			if reviews[i].ID == id {
				patch.apply(&reviews[i])
				r := reviews[i]
				updated = &r
				return reviews, true
			}
		}
		return reviews, false
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (m ReviewModel) DeleteReview(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := m.list.modify(ctx, func(reviews []Review) ([]Review, bool) {
		filtered := filter(reviews, func(r Review) bool { return r.ID != id })
		deleted = len(filtered) != len(reviews)
		return filtered, deleted
	})
	return deleted, err
}
