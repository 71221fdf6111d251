package server

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/wisp167/masar/internal/data"
)

func validRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

func (app *Application) listReviewsHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var (
		reviews []data.Review
		err     error
	)
	if userID := app.readString(r, "user", ""); userID != "" {
		reviews, err = app.models.Reviews.GetReviewsByUser(r.Context(), userID)
	} else {
		reviews, err = app.models.Reviews.GetReviews(r.Context())
	}
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"reviews": reviews}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createReviewHandler signs the review with the session's user.
func (app *Application) createReviewHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if !validRating(input.Rating) {
		app.failedValidationResponse(w, r, map[string]string{"rating": "must be between 1 and 5"})
		return
	}

	user := app.contextGetUser(r)
	review, err := app.models.Reviews.AddReview(r.Context(), data.Review{
		UserID:     user.ID,
		UserName:   user.Name,
		UserAvatar: user.Avatar,
		Rating:     input.Rating,
		Comment:    input.Comment,
	})
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"review": review}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) updateReviewHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var patch data.ReviewPatch
	if err := app.readJSON(w, r, &patch); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if patch.Rating != nil && !validRating(*patch.Rating) {
		app.failedValidationResponse(w, r, map[string]string{"rating": "must be between 1 and 5"})
		return
	}

	review, err := app.models.Reviews.UpdateReview(r.Context(), ps.ByName("id"), patch)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if review == nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"review": review}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) deleteReviewHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	deleted, err := app.models.Reviews.DeleteReview(r.Context(), ps.ByName("id"))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if !deleted {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "review successfully deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
