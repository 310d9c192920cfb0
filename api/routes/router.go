package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/laptopfinder-backend/api/controllers"
	"github.com/angelmondragon/laptopfinder-backend/api/middleware"
	"github.com/angelmondragon/laptopfinder-backend/internal/finder"
	"github.com/angelmondragon/laptopfinder-backend/internal/guide"
	"github.com/angelmondragon/laptopfinder-backend/internal/listing"
	"github.com/angelmondragon/laptopfinder-backend/internal/reviews"
	"github.com/angelmondragon/laptopfinder-backend/pkg/config"
	"github.com/angelmondragon/laptopfinder-backend/pkg/db"
	"github.com/angelmondragon/laptopfinder-backend/pkg/logger"
)

// NewRouter wires every public, admin and operational route. redisP and
// rateStore are nil when redis is not configured.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP db.Pinger,
	rateStore middleware.RateLimiterStore,
	catalogStore controllers.CatalogCounter,
	finderService finder.Service,
	listingService listing.Service,
	reviewsService reviews.Service,
	buyingGuide *guide.Guide,
	rebuild controllers.CatalogRebuildFunc,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins...),
	)

	reviewPolicy := middleware.NewRateLimitPolicy(
		"reviews",
		cfg.Reviews.SubmitWindow,
		cfg.Reviews.SubmitLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP, catalogStore))
	})

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/finder", controllers.FinderQuery(finderService, logg))
		r.Get("/laptops", controllers.ListLaptops(listingService, logg))
		r.Get("/products/{productId}", controllers.ProductDetail(finderService, logg))
		r.Get("/benchmarks", controllers.Benchmarks(logg))
		r.Route("/guide", func(r chi.Router) {
			r.Get("/", controllers.GuideAll(buyingGuide, logg))
			r.Get("/{section}", controllers.GuideSection(buyingGuide, logg))
		})
		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", controllers.ListApprovedReviews(reviewsService, logg))
			r.With(middleware.RateLimit(reviewPolicy, rateStore, logg)).Post("/", controllers.CreateReview(reviewsService, logg))
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AdminToken(cfg.App.AdminToken, logg))
		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", controllers.ListReviews(reviewsService, logg))
			r.Patch("/{reviewId}", controllers.ModerateReview(reviewsService, logg))
		})
		r.Post("/catalog/rebuild", controllers.AdminRebuildCatalog(rebuild, logg))
	})

	return r
}
