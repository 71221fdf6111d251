package server

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *Application) healthcheckHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	env := envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": app.config.Env,
			"storage":     app.config.Storage,
			"version":     Version,
		},
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) adminDashboardHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	stats, err := app.models.AdminStats(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"stats": stats}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// sellerDashboardHandler reports on the signed-in seller's own stores.
func (app *Application) sellerDashboardHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	overview, err := app.models.SellerOverview(r.Context(), app.contextGetUser(r).ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"overview": overview}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
