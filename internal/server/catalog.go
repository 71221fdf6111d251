package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/sync/errgroup"

	"github.com/wisp167/masar/internal/data"
)

type catalog struct {
	stores   []data.Store
	products []data.Product
	services []data.Service
}

// loadCatalog reads the three collections concurrently.
func (app *Application) loadCatalog(ctx context.Context) (*catalog, error) {
	var c catalog
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		c.stores, err = app.models.Stores.GetStores(ctx)
		return err
	})
	g.Go(func() (err error) {
		c.products, err = app.models.Products.GetProducts(ctx)
		return err
	})
	g.Go(func() (err error) {
		c.services, err = app.models.Services.GetServices(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (app *Application) categoriesHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	c, err := app.loadCatalog(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"categories":        data.Categories(c.stores, c.services),
		"productCategories": data.ProductCategories(c.products),
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) mapHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tab := app.readString(r, "tab", data.TabAll)
	switch tab {
	case data.TabAll, data.TabStores, data.TabServices:
	default:
		app.badRequestResponse(w, r, fmt.Errorf("tab must be one of %s, %s or %s", data.TabAll, data.TabStores, data.TabServices))
		return
	}

	c, err := app.loadCatalog(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	search := app.readString(r, "search", "")
	category := app.readString(r, "category", "")
	stores := data.FilterStores(c.stores, data.StoreQuery{Search: search, Category: category})
	services := data.FilterServices(c.services, data.ServiceQuery{Search: search, Category: category})

	err = app.writeJSON(w, http.StatusOK, envelope{"markers": data.Markers(stores, services, tab)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
