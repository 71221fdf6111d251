package server

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/wisp167/masar/internal/data"
)

func (app *Application) listUsersHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var (
		users []data.User
		err   error
	)
	if role := data.Role(app.readString(r, "role", "")); role != "" {
		if !role.Valid() {
			app.badRequestResponse(w, r, errors.New("role must be user, seller or admin"))
			return
		}
		users, err = app.models.Users.GetUsersByRole(r.Context(), role)
	} else {
		users, err = app.models.Users.GetUsers(r.Context())
	}
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"users": users}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) showUserHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, err := app.models.Users.GetUserByID(r.Context(), ps.ByName("id"))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if user == nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"user": user}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
