package server

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/wisp167/masar/internal/data"
)

func (app *Application) listServicesHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	emergency, err := app.readBool(r, "emergency", false)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	services, err := app.models.Services.GetServices(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	services = data.FilterServices(services, data.ServiceQuery{
		Search:        app.readString(r, "search", ""),
		Category:      app.readString(r, "category", ""),
		EmergencyOnly: emergency,
	})

	err = app.writeJSON(w, http.StatusOK, envelope{"services": services}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) showServiceHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	service, err := app.models.Services.GetServiceByID(r.Context(), ps.ByName("id"))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if service == nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"service": service}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) createServiceHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input data.Service
	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	problems := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		problems["name"] = "must be provided"
	}
	if strings.TrimSpace(input.Category) == "" {
		problems["category"] = "must be provided"
	}
	if len(problems) > 0 {
		app.failedValidationResponse(w, r, problems)
		return
	}

	service, err := app.models.Services.AddService(r.Context(), input)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", "/api/services/"+service.ID)

	err = app.writeJSON(w, http.StatusCreated, envelope{"service": service}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) updateServiceHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var patch data.ServicePatch
	if err := app.readJSON(w, r, &patch); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		app.failedValidationResponse(w, r, map[string]string{"name": "must not be empty"})
		return
	}

	service, err := app.models.Services.UpdateService(r.Context(), ps.ByName("id"), patch)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if service == nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"service": service}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) deleteServiceHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	deleted, err := app.models.Services.DeleteService(r.Context(), ps.ByName("id"))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if !deleted {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "service successfully deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
