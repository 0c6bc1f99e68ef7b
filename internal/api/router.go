package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Cheertaboi/storefront-service/internal/api/handlers"
	"github.com/Cheertaboi/storefront-service/internal/api/middleware"
	"github.com/Cheertaboi/storefront-service/internal/notify"
	"github.com/Cheertaboi/storefront-service/internal/service"
)

// Services are the page services the router exposes.
type Services struct {
	Accounts *service.AccountService
	Catalog  *service.CatalogService
	Carts    *service.CartService
	Orders   *service.OrderService
	MyPage   *service.MyPageService
}

type Options struct {
	// Gatherer serves /metrics; nil leaves the route out.
	Gatherer prometheus.Gatherer
	// KeepAlive is the SSE ping interval.
	KeepAlive time.Duration
}

// NewRouter builds the HTTP router for the storefront
func NewRouter(s Services, bus *notify.Bus, opts Options, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	sessionHandler := handlers.NewSessionHandler(s.Accounts, log)
	catalogHandler := handlers.NewCatalogHandler(s.Catalog, log)
	cartHandler := handlers.NewCartHandler(s.Carts, log)
	orderHandler := handlers.NewOrderHandler(s.Orders, log)
	mypageHandler := handlers.NewMyPageHandler(s.Accounts, s.MyPage, log)
	eventsHandler := handlers.NewEventsHandler(bus, opts.KeepAlive, log)

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	// Device-scoped pages
	r.Group(func(r chi.Router) {
		r.Use(middleware.Device)
		r.Use(middleware.Logger(log))

		r.Get("/", sessionHandler.Home)
		r.Get("/events", eventsHandler.Stream)

		r.Route("/session", func(r chi.Router) {
			r.Get("/", sessionHandler.Session)
			r.Post("/login", sessionHandler.Login)
			r.Post("/logout", sessionHandler.Logout)
		})

		r.Get("/stores/{storeID}", catalogHandler.Store)
		r.Get("/menus/{menuID}", catalogHandler.Menu)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Delete("/", cartHandler.Clear)
			r.Post("/items", cartHandler.Add)
			r.Patch("/items/{menuID}", cartHandler.SetQuantity)
			r.Delete("/items/{menuID}", cartHandler.Remove)
		})

		r.Post("/orders", orderHandler.Submit)

		r.Route("/mypage", func(r chi.Router) {
			r.Get("/", mypageHandler.Overview)
			r.Get("/profile", mypageHandler.Profile)
			r.Put("/profile", mypageHandler.UpdateProfile)
			r.Get("/orders", mypageHandler.Orders)
			r.Get("/reviews", mypageHandler.Reviews)
			r.Post("/reviews", mypageHandler.CreateReview)
			r.Get("/reviews/targets/{orderItemID}", mypageHandler.ReviewTarget)
			r.Put("/reviews/{reviewID}", mypageHandler.UpdateReview)
			r.Delete("/reviews/{reviewID}", mypageHandler.DeleteReview)
			r.Get("/stamps", mypageHandler.Stamps)
			r.Delete("/stamps/{stampID}", mypageHandler.DeleteStamp)
			r.Get("/coupons", mypageHandler.Coupons)
			r.Patch("/coupons/{couponID}/use", mypageHandler.UseCoupon)
			r.Delete("/coupons/{couponID}", mypageHandler.DeleteCoupon)
			r.Get("/map", mypageHandler.Map)
		})
	})

	return r
}
