package server

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/wisp167/masar/internal/data"
)

func (app *Application) listProductsHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	products, err := app.models.Products.GetProducts(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	products = data.FilterProducts(products, data.ProductQuery{
		Search:   app.readString(r, "search", ""),
		Category: app.readString(r, "category", ""),
		StoreID:  app.readString(r, "store", ""),
		Sort:     app.readString(r, "sort", data.SortNewest),
	})

	err = app.writeJSON(w, http.StatusOK, envelope{"products": products}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) showProductHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	product, err := app.models.Products.GetProductByID(r.Context(), ps.ByName("id"))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if product == nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"product": product}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) createProductHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input data.Product
	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	problems := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		problems["name"] = "must be provided"
	}
	if input.Price < 0 {
		problems["price"] = "must not be negative"
	}
	if input.StoreID == "" {
		problems["storeId"] = "must be provided"
	} else {
		store, err := app.models.Stores.GetStoreByID(r.Context(), input.StoreID)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
		if store == nil {
			problems["storeId"] = "must reference an existing store"
		}
	}
	if len(problems) > 0 {
		app.failedValidationResponse(w, r, problems)
		return
	}

	product, err := app.models.Products.AddProduct(r.Context(), input)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", "/api/products/"+product.ID)

	err = app.writeJSON(w, http.StatusCreated, envelope{"product": product}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) updateProductHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var patch data.ProductPatch
	if err := app.readJSON(w, r, &patch); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	problems := map[string]string{}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		problems["name"] = "must not be empty"
	}
	if patch.Price != nil && *patch.Price < 0 {
		problems["price"] = "must not be negative"
	}
	if len(problems) > 0 {
		app.failedValidationResponse(w, r, problems)
		return
	}

	product, err := app.models.Products.UpdateProduct(r.Context(), ps.ByName("id"), patch)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if product == nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"product": product}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) deleteProductHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	deleted, err := app.models.Products.DeleteProduct(r.Context(), ps.ByName("id"))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if !deleted {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "product successfully deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
