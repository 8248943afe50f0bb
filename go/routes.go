package drugstoreserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route defines the parameters for a single API endpoint.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions holds the API handler groups served by the router.
type ApiHandleFunctions struct {
	OrderAPI   OrderAPI
	ProductAPI ProductAPI
}

// NewRouter returns a new gin engine with all drugstore routes registered.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine registers all drugstore routes on an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			"GetOrders",
			http.MethodGet,
			"/api/orders",
			handleFunctions.OrderAPI.GetOrders,
		},
		{
			"GetOrderById",
			http.MethodGet,
			"/api/orders/:orderId",
			handleFunctions.OrderAPI.GetOrderById,
		},
		{
			"CreateOrder",
			http.MethodPost,
			"/api/orders",
			handleFunctions.OrderAPI.CreateOrder,
		},
		{
			"UpdateOrder",
			http.MethodPut,
			"/api/orders/:orderId",
			handleFunctions.OrderAPI.UpdateOrder,
		},
		{
			"CancelOrder",
			http.MethodDelete,
			"/api/orders/:orderId",
			handleFunctions.OrderAPI.CancelOrder,
		},
		{
			"GetOrderInvoice",
			http.MethodGet,
			"/api/orders/:orderId/invoice",
			handleFunctions.OrderAPI.GetOrderInvoice,
		},
		{
			"ListProducts",
			http.MethodGet,
			"/api/products",
			handleFunctions.ProductAPI.ListProducts,
		},
		{
			"GetProductById",
			http.MethodGet,
			"/api/products/:productId",
			handleFunctions.ProductAPI.GetProductById,
		},
		{
			"CreateProduct",
			http.MethodPost,
			"/api/products",
			handleFunctions.ProductAPI.CreateProduct,
		},
		{
			"UpdateProduct",
			http.MethodPut,
			"/api/products/:productId",
			handleFunctions.ProductAPI.UpdateProduct,
		},
		{
			"DeleteProduct",
			http.MethodDelete,
			"/api/products/:productId",
			handleFunctions.ProductAPI.DeleteProduct,
		},
	}
}

func defaultFunc(c *gin.Context) {
	c.Status(http.StatusNotImplemented)
}
