package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds an HTTP method and path to a handler.
type Route struct {
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// NewRouter builds a gin engine with the shipping routes registered.
// Middleware (otelgin and friends) must be passed here so it runs for every
// route; registering it after the routes would skip them.
func NewRouter(api *ShippingAPI, middleware ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger())
	engine.Use(recovery(api))
	return NewRouterWithGinEngine(engine, api, middleware...)
}

// NewRouterWithGinEngine adds the shipping routes to an existing engine.
func NewRouterWithGinEngine(engine *gin.Engine, api *ShippingAPI, middleware ...gin.HandlerFunc) *gin.Engine {
	for _, mw := range middleware {
		if mw != nil {
			engine.Use(mw)
		}
	}
	for _, route := range routes(api) {
		switch route.Method {
		case http.MethodGet:
			engine.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			engine.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			engine.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			engine.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return engine
}

func routes(api *ShippingAPI) []Route {
	return []Route{
		{http.MethodGet, "/api/shippings", api.FindAll},
		{http.MethodGet, "/api/shippings/:orderId/:productId", api.FindByID},
		{http.MethodPost, "/api/shippings", api.Save},
		{http.MethodPut, "/api/shippings", api.Update},
		{http.MethodDelete, "/api/shippings/:orderId/:productId", api.DeleteByID},
	}
}

// recovery converts panics into the catch-all error envelope instead of gin's
// default empty 500.
func recovery(api *ShippingAPI) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		api.responder.Respond(c, fmt.Errorf("panic recovered: %v", recovered))
	})
}
