package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/groupdrive-backend/api/controllers"
	"github.com/angelmondragon/groupdrive-backend/api/middleware"
	"github.com/angelmondragon/groupdrive-backend/internal/auth"
	"github.com/angelmondragon/groupdrive-backend/internal/catalog"
	"github.com/angelmondragon/groupdrive-backend/internal/groups"
	"github.com/angelmondragon/groupdrive-backend/internal/offers"
	"github.com/angelmondragon/groupdrive-backend/internal/payments"
	"github.com/angelmondragon/groupdrive-backend/internal/preferences"
	"github.com/angelmondragon/groupdrive-backend/pkg/auth/session"
	"github.com/angelmondragon/groupdrive-backend/pkg/config"
	"github.com/angelmondragon/groupdrive-backend/pkg/logger"
	"github.com/angelmondragon/groupdrive-backend/pkg/metrics"
	"github.com/angelmondragon/groupdrive-backend/pkg/redis"
)

// Dependencies is everything the HTTP surface needs. Nil services make their
// handlers answer 500 instead of panicking.
type Dependencies struct {
	Config   *config.Config
	Logger   *logger.Logger
	Gatherer prometheus.Gatherer
	Metrics  *metrics.HTTPMetrics

	DB       controllers.Pinger
	Redis    *redis.Client
	Sessions session.AccessSessionChecker

	Auth        auth.Service
	Catalog     *catalog.Resolver
	Seeder      *catalog.Seeder
	Groups      groups.Service
	Payments    payments.Service
	Preferences preferences.Service
	Offers      offers.Service
}

func NewRouter(d Dependencies) http.Handler {
	cfg, logg := d.Config, d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(d.Metrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	var (
		catalogReader controllers.CatalogReader
		catalogSeeder controllers.CatalogSeeder
	)
	if d.Catalog != nil {
		catalogReader = d.Catalog
	}
	if d.Seeder != nil {
		catalogSeeder = d.Seeder
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)
	requireAuth := middleware.Auth(cfg.JWT, d.Sessions, logg)
	rateLimit := func(p middleware.AuthRateLimitPolicy) func(http.Handler) http.Handler {
		if d.Redis == nil {
			return passThrough
		}
		return middleware.AuthRateLimit(p, d.Redis, logg)
	}
	idempotent := passThrough
	if d.Redis != nil {
		idempotent = middleware.Idempotency(d.Redis, logg)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readinessDeps(d)))
	})

	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(rateLimit(registerPolicy)).Post("/register", controllers.AuthRegister(d.Auth, logg))
			r.With(rateLimit(loginPolicy)).Post("/login", controllers.AuthLogin(d.Auth, logg))
			r.Post("/refresh", controllers.AuthRefresh(d.Auth, logg))
			r.Post("/logout", controllers.AuthLogout(d.Auth, logg))
			r.With(requireAuth).Get("/me", controllers.AuthMe(d.Auth, logg))
		})

		r.Get("/car-data", controllers.CarData(catalogReader, logg))
		r.Get("/car-data/{brand}", controllers.CarDataBrand(catalogReader, logg))
		r.Get("/brands", controllers.CarBrands(catalogReader, logg))
		r.Get("/fees/quote", controllers.FeesQuote(logg))

		r.Route("/groups", func(r chi.Router) {
			r.Get("/", controllers.GroupList(d.Groups, logg))
			r.Get("/{groupId}", controllers.GroupGet(d.Groups, logg))
			r.Get("/{groupId}/members", controllers.GroupMembers(d.Groups, logg))
			r.Get("/{groupId}/preferences", controllers.PreferenceList(d.Preferences, logg))
			r.Get("/{groupId}/offers", controllers.OfferList(d.Offers, logg))

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", controllers.GroupCreate(d.Groups, logg))
				r.Post("/{groupId}/join", controllers.GroupJoin(d.Groups, logg))
				r.Post("/{groupId}/preferences", controllers.PreferenceSave(d.Preferences, logg))
				r.Get("/{groupId}/my-preference", controllers.PreferenceMine(d.Preferences, logg))
				r.Get("/{groupId}/my-vote", controllers.OfferMyVote(d.Offers, logg))
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/offers/{offerId}/vote", controllers.OfferVote(d.Offers, logg))
			r.Route("/users", func(r chi.Router) {
				r.With(idempotent).Post("/pay-for-group/{groupId}", controllers.PayForGroup(d.Payments, logg))
				r.Get("/check-payment/{groupId}", controllers.CheckPayment(d.Payments, logg))
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAuth)
			r.Use(middleware.RequireAdmin(logg))
			r.Get("/locked-groups", controllers.AdminLockedGroups(d.Groups, logg))
			r.Post("/seed-data", controllers.AdminSeedGroups(d.Groups, logg))
			r.Post("/seed-car-data", controllers.AdminSeedCarData(catalogSeeder, logg))
			r.Route("/groups/{groupId}", func(r chi.Router) {
				r.With(idempotent).Post("/offers", controllers.AdminOfferCreate(d.Offers, logg))
				r.Get("/analytics", controllers.AdminGroupAnalytics(d.Offers, logg))
				r.Post("/complete", controllers.AdminGroupComplete(d.Groups, logg))
			})
		})
	})

	return r
}

func passThrough(next http.Handler) http.Handler {
	return next
}

func readinessDeps(d Dependencies) map[string]controllers.Pinger {
	deps := map[string]controllers.Pinger{}
	if d.DB != nil {
		deps["database"] = d.DB
	}
	if d.Redis != nil {
		deps["redis"] = d.Redis
	}
	return deps
}
