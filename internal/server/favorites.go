package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/wisp167/masar/internal/data"
)

// favoriteExists reports whether itemID names a stored record of itemType.
func (app *Application) favoriteExists(ctx context.Context, itemType data.ItemType, itemID string) (bool, error) {
	switch itemType {
	case data.FavoriteStore:
		s, err := app.models.Stores.GetStoreByID(ctx, itemID)
		return s != nil, err
	case data.FavoriteProduct:
		p, err := app.models.Products.GetProductByID(ctx, itemID)
		return p != nil, err
	}
	return false, data.ErrInvalidItemType
}

func (app *Application) listFavoritesHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itemType := data.ItemType(ps.ByName("type"))
	user := app.contextGetUser(r)

	ids, err := app.models.Favorites.List(r.Context(), itemType, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrInvalidItemType):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"type": itemType, "ids": ids}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) toggleFavoriteHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itemType := data.ItemType(ps.ByName("type"))
	itemID := ps.ByName("id")
	user := app.contextGetUser(r)

	exists, err := app.favoriteExists(r.Context(), itemType, itemID)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrInvalidItemType):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}
	if !exists {
		app.notFoundResponse(w, r)
		return
	}

	favorite, err := app.models.Favorites.Toggle(r.Context(), itemType, user.ID, itemID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"type": itemType, "id": itemID, "favorite": favorite}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
