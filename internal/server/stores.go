package server

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/wisp167/masar/internal/data"
)

func (app *Application) listStoresHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	stores, err := app.models.Stores.GetStores(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	stores = data.FilterStores(stores, data.StoreQuery{
		Search:   app.readString(r, "search", ""),
		Category: app.readString(r, "category", ""),
		OwnerID:  app.readString(r, "owner", ""),
	})

	err = app.writeJSON(w, http.StatusOK, envelope{"stores": stores}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) showStoreHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	store, err := app.models.Stores.GetStoreByID(r.Context(), ps.ByName("id"))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if store == nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"store": store}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) listStoreProductsHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	store, err := app.models.Stores.GetStoreByID(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if store == nil {
		app.notFoundResponse(w, r)
		return
	}

	products, err := app.models.Products.GetProductsByStore(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"products": products}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createStoreHandler assigns a seller's own stores to them; admins may name
// any owner.
func (app *Application) createStoreHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input data.Store
	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if strings.TrimSpace(input.Name) == "" {
		app.failedValidationResponse(w, r, map[string]string{"name": "must be provided"})
		return
	}

	user := app.contextGetUser(r)
	if user.Role == data.RoleSeller || input.OwnerID == "" {
		input.OwnerID = user.ID
	}

	store, err := app.models.Stores.AddStore(r.Context(), input)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", "/api/stores/"+store.ID)

	err = app.writeJSON(w, http.StatusCreated, envelope{"store": store}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) updateStoreHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var patch data.StorePatch
	if err := app.readJSON(w, r, &patch); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		app.failedValidationResponse(w, r, map[string]string{"name": "must not be empty"})
		return
	}

	store, err := app.models.Stores.UpdateStore(r.Context(), ps.ByName("id"), patch)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if store == nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"store": store}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) deleteStoreHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	deleted, err := app.models.Stores.DeleteStore(r.Context(), ps.ByName("id"))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if !deleted {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "store successfully deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
