package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/config"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/geo"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/handlers"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/middleware"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/repository/postgres"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/service"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/utils"
)

func New(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(200, time.Minute))
	r.Use(middleware.WithAuth(cfg.JWTSecret))

	// Health
	r.Get("/healthz", handlers.Health())

	// Repos + services + handlers
	ticketRepo := postgres.NewTicketRepo(db)
	intakeRepo := postgres.NewIntakeRepo(db)
	userRepo := postgres.NewUserRepo(db)
	officialRepo := postgres.NewOfficialRepo(db)
	stationRepo := postgres.NewStationRepo(db)

	citizenAuth := service.NewCitizenAuth(userRepo, cfg.JWTSecret)
	officialAuth := service.NewOfficialAuth(officialRepo, cfg.JWTSecret)
	places := geo.NewPlacesClient(cfg.PlacesBaseURL, cfg.PlacesAPIKey, cache, log)

	ah := handlers.NewCitizenAuthHTTP(citizenAuth)
	th := handlers.NewTicketHTTP(ticketRepo)
	ih := handlers.NewIntakeHTTP(intakeRepo)
	oh := handlers.NewOfficialHTTP(officialAuth, officialRepo, intakeRepo)
	sh := handlers.NewStationHTTP(stationRepo)
	hh := handlers.NewHospitalHTTP(places)

	r.Route("/api/citizen", func(r chi.Router) {
		r.Post("/register", ah.Register())
		r.Post("/login", ah.Login())

		r.Route("/tickets", func(r chi.Router) {
			r.Use(middleware.RequireRoles(service.RoleCitizen))
			r.Get("/", th.List())
			r.Post("/", th.Create())
			r.Get("/{id}", th.Get())
			r.Patch("/{id}/status", th.UpdateStatus())
			r.Post("/{id}/updates", th.AddComment())
		})
	})

	r.Route("/api/official", func(r chi.Router) {
		r.Post("/register", oh.Register())
		r.Post("/login", oh.Login())
		r.Post("/reset-password-request", oh.ResetPasswordRequest())
		r.Post("/reset-password", oh.ResetPassword())

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRoles(service.RoleOfficial))
			r.Get("/tickets", oh.Tickets())
			r.Put("/ticket/{id}", oh.UpdateTicket())
			r.Get("/statistics", oh.Statistics())
			r.Get("/police-stations", sh.Police())
			r.Get("/fire-stations", sh.Fire())
			r.Get("/profile", oh.Profile())
			r.Put("/profile", oh.UpdateProfile())
		})
	})

	// Anonymous quick intake and SOS
	r.Route("/server/citizen", func(r chi.Router) {
		r.Post("/tickets", ih.Create())
		r.Get("/tickets/{contactNumber}", ih.ListByContact())
		r.Get("/ticket/{id}", ih.Get())
		r.Post("/sos", ih.SOS())
	})

	r.Get("/api/police_stations", sh.PublicPolice())
	r.Get("/api/hospitals/nearby", hh.Nearby())

	// Unknown API paths get JSON 404; everything else falls through to the
	// static client pages.
	static := handlers.Static(cfg.PublicDir)
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/api/") || strings.HasPrefix(req.URL.Path, "/server/") {
			utils.Error(w, http.StatusNotFound, "Not found")
			return
		}
		static(w, req)
	})

	return r
}
