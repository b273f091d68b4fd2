package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sabordecasa/storefront/internal/service/models/cartitem"
	"github.com/sabordecasa/storefront/internal/service/models/order"
	"github.com/sabordecasa/storefront/internal/service/models/orderstatus"
	"github.com/sabordecasa/storefront/internal/service/models/product"
	"github.com/sabordecasa/storefront/internal/service/models/view"
	"github.com/sabordecasa/storefront/internal/service/services/storesvc"
	admin "github.com/sabordecasa/storefront/internal/transport/http/admin"
	cartview "github.com/sabordecasa/storefront/internal/transport/http/cart"
	createorder "github.com/sabordecasa/storefront/internal/transport/http/create_order"
	listarticles "github.com/sabordecasa/storefront/internal/transport/http/list_articles"
	listorders "github.com/sabordecasa/storefront/internal/transport/http/list_orders"
	listproducts "github.com/sabordecasa/storefront/internal/transport/http/list_products"
	statusview "github.com/sabordecasa/storefront/internal/transport/http/status"
	"github.com/sabordecasa/storefront/pkg/http/middleware/trace"
	"github.com/sabordecasa/storefront/pkg/logger"
	"github.com/spf13/viper"
)

// service is the full command surface of the store, consumed piecewise by
// the per-operation handler packages.
type service interface {
	CatalogByCategory(cat string) []product.Product
	Cart() []cartitem.CartItem
	AddToCart(productID string) error
	UpdateCartQuantity(productID string, delta int) error
	Summary() storesvc.CartSummary
	CreateOrder(ctx context.Context, draft order.Draft) (order.Order, error)
	Orders() []order.Order
	Login(password string) bool
	Logout()
	IsAdmin() bool
	CreateProduct(ctx context.Context, draft product.Draft) (product.Product, error)
	EditProduct(ctx context.Context, id string, draft product.Draft) (product.Product, error)
	SetOrderStatus(ctx context.Context, id string, status orderstatus.Status) error
	ConnectionStatus() storesvc.ConnStatus
	View() view.View
	Navigate(target view.View) view.View
}

type HTTPTransport struct {
	server  *http.Server
	router  *chi.Mux
	service service
}

func NewHTTPTransport(service service) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:  server,
		router:  router,
		service: service,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/articles", h.listArticles)

		r.Get("/cart", h.getCart)
		r.Post("/cart/items", h.addCartItem)
		r.Patch("/cart/items/{id}", h.updateCartItem)

		r.Post("/orders", h.createOrder)
		r.Get("/orders", h.listOrders)

		r.Get("/status", h.getStatus)
		r.Post("/view", h.navigate)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.adminLogin)
			r.Post("/logout", h.adminLogout)
			r.Post("/products", h.adminCreateProduct)
			r.Put("/products/{id}", h.adminUpdateProduct)
			r.Patch("/orders/{id}/status", h.adminUpdateOrderStatus)
		})
	})
}

func (h *HTTPTransport) listProducts(w http.ResponseWriter, r *http.Request) {
	listproducts.ListProducts(w, r, h.service)
}

func (h *HTTPTransport) listArticles(w http.ResponseWriter, r *http.Request) {
	listarticles.ListArticles(w, r)
}

func (h *HTTPTransport) getCart(w http.ResponseWriter, r *http.Request) {
	cartview.GetCart(w, r, h.service)
}

func (h *HTTPTransport) addCartItem(w http.ResponseWriter, r *http.Request) {
	cartview.AddItem(w, r, h.service)
}

func (h *HTTPTransport) updateCartItem(w http.ResponseWriter, r *http.Request) {
	cartview.UpdateItem(w, r, h.service)
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	createorder.CreateOrder(w, r, h.service)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	listorders.ListOrders(w, r, h.service)
}

func (h *HTTPTransport) getStatus(w http.ResponseWriter, r *http.Request) {
	statusview.GetStatus(w, r, h.service)
}

func (h *HTTPTransport) navigate(w http.ResponseWriter, r *http.Request) {
	statusview.Navigate(w, r, h.service)
}

func (h *HTTPTransport) adminLogin(w http.ResponseWriter, r *http.Request) {
	admin.Login(w, r, h.service)
}

func (h *HTTPTransport) adminLogout(w http.ResponseWriter, r *http.Request) {
	admin.Logout(w, r, h.service)
}

func (h *HTTPTransport) adminCreateProduct(w http.ResponseWriter, r *http.Request) {
	admin.CreateProduct(w, r, h.service)
}

func (h *HTTPTransport) adminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	admin.UpdateProduct(w, r, h.service)
}

func (h *HTTPTransport) adminUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	admin.UpdateOrderStatus(w, r, h.service)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(trace.NewTraceMiddleware)

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
