package server

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/wisp167/masar/internal/data"
)

func (app *Application) routes() *httprouter.Router {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(app.notFoundResponse)

	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	public := func(method, path string, h httprouter.Handle) {
		router.Handle(method, path, app.limit(h))
	}
	private := func(method, path string, h httprouter.Handle, roles ...data.Role) {
		router.HandlerFunc(method, path, app.jwtMiddleware(app.limit(h), roles...))
	}
	staff := []data.Role{data.RoleSeller, data.RoleAdmin}

	router.GET("/v1/healthz", app.healthcheckHandler)

	// the login delay runs before a worker slot is taken
	router.Handle(http.MethodPost, "/api/auth/login", app.delayed(app.limit(app.loginHandler)))
	router.Handle(http.MethodPost, "/api/auth/register", app.delayed(app.limit(app.registerHandler)))
	private(http.MethodPost, "/api/auth/logout", app.logoutHandler)
	private(http.MethodGet, "/api/auth/me", app.meHandler)

	public(http.MethodGet, "/api/stores", app.listStoresHandler)
	public(http.MethodGet, "/api/stores/:id", app.showStoreHandler)
	public(http.MethodGet, "/api/stores/:id/products", app.listStoreProductsHandler)
	private(http.MethodPost, "/api/stores", app.createStoreHandler, staff...)
	private(http.MethodPatch, "/api/stores/:id", app.updateStoreHandler, staff...)
	private(http.MethodDelete, "/api/stores/:id", app.deleteStoreHandler, staff...)

	public(http.MethodGet, "/api/products", app.listProductsHandler)
	public(http.MethodGet, "/api/products/:id", app.showProductHandler)
	private(http.MethodPost, "/api/products", app.createProductHandler, staff...)
	private(http.MethodPatch, "/api/products/:id", app.updateProductHandler, staff...)
	private(http.MethodDelete, "/api/products/:id", app.deleteProductHandler, staff...)

	public(http.MethodGet, "/api/reviews", app.listReviewsHandler)
	private(http.MethodPost, "/api/reviews", app.createReviewHandler)
	private(http.MethodPatch, "/api/reviews/:id", app.updateReviewHandler)
	private(http.MethodDelete, "/api/reviews/:id", app.deleteReviewHandler)

	public(http.MethodGet, "/api/services", app.listServicesHandler)
	public(http.MethodGet, "/api/services/:id", app.showServiceHandler)
	private(http.MethodPost, "/api/services", app.createServiceHandler, data.RoleAdmin)
	private(http.MethodPatch, "/api/services/:id", app.updateServiceHandler, data.RoleAdmin)
	private(http.MethodDelete, "/api/services/:id", app.deleteServiceHandler, data.RoleAdmin)

	private(http.MethodGet, "/api/users", app.listUsersHandler, data.RoleAdmin)
	private(http.MethodGet, "/api/users/:id", app.showUserHandler, data.RoleAdmin)

	private(http.MethodGet, "/api/favorites/:type", app.listFavoritesHandler)
	private(http.MethodPost, "/api/favorites/:type/:id", app.toggleFavoriteHandler)

	public(http.MethodGet, "/api/categories", app.categoriesHandler)
	public(http.MethodGet, "/api/map", app.mapHandler)

	private(http.MethodGet, "/api/dashboard/admin", app.adminDashboardHandler, data.RoleAdmin)
	private(http.MethodGet, "/api/dashboard/seller", app.sellerDashboardHandler, data.RoleSeller)

	return router
}
