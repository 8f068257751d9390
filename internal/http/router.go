// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, idempotency, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/miaudote/go-adopt-backend/internal/config"
	"github.com/miaudote/go-adopt-backend/internal/http/handlers"
	"github.com/miaudote/go-adopt-backend/internal/http/middleware"
	"github.com/miaudote/go-adopt-backend/internal/repo"
	"github.com/miaudote/go-adopt-backend/internal/services"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), idempotency for the
// adoption endpoint, rate limiting, CORS and security headers, health and
// metrics endpoints, and then mounts the versioned public API under /api/v*.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. UserIdentity: resolve caller id before anything keys or logs by it
//  4. RedactingLogger: structured logs with PII scrubbing
//  5. Recovery: capture panics after logger
//  6. Body size limiter + gzip
//  7. Metrics
//  8. Idempotency validator (before rate limiter to allow bypass on replay)
//  9. Rate limiter (per user/IP, bypass on replay)
// 10. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Resolve caller identity (context value or X-User-ID header) once, so
	// the replay lookup, rate-limit keying, and logs agree on who is calling
	r.Use(middleware.UserIdentity())

	// 4) Structured logging with redaction
	// X-User-ID is masked by default; nothing extra to hide yet.
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{}))

	// 5) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 6) Global body size limit (1 MiB) and response compression
	r.Use(limitBody(1 << 20))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Idempotency validation for the adoption endpoint (before rate limiting)
	r.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{
			MaxLen: 200,
		},
		func(ctx context.Context, userID, petID, key string, now time.Time) (bool, error) {
			rec, err := repo.GetReceipt(ctx, db, userID, petID, key, now)
			if err != nil || rec == nil {
				return false, nil
			}
			return true, nil
		},
	))

	// 9) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 10) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID", middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID", middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← db
	petSvc := &services.PetService{DB: db}
	favSvc := &services.FavoriteService{DB: db, Pets: petSvc}
	dislikeSvc := &services.DislikeService{DB: db, Pets: petSvc}
	speciesSvc := &services.SpeciesService{DB: db}
	giftSvc := &services.GiftService{DB: db}
	ongSvc := &services.OngService{DB: db}
	partnerSvc := &services.PartnerService{DB: db}

	h := handlers.New(petSvc, favSvc, dislikeSvc, speciesSvc, giftSvc, ongSvc, partnerSvc)
	h.SetReceiptRecorder(func(ctx context.Context, userID, petID, key string, status int) {
		_, _ = repo.CreateReceipt(ctx, db, userID, petID, key, status, cfg.IdempotencyTTL)
	})

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)
	{
		// Pets: matching pool, registry, lifecycle
		api.GET("/pets", h.ListEligiblePets)
		api.GET("/pets/summary", h.ListPetSummaries)
		api.GET("/pets/stats/gender", h.PetGenderStats)
		api.GET("/pets/stats/adoptions", h.PetAdoptionStats)
		api.GET("/pets/mine", h.MyPets)
		api.GET("/pets/:id", h.GetPet)
		api.POST("/pets", h.CreatePet)
		api.PUT("/pets/:id", h.UpdatePet)
		api.POST("/pets/:id/adopt", h.AdoptPet)
		api.POST("/pets/:id/gift", h.ChooseGift)
		api.PATCH("/pets/:id/active", h.SetPetActive)

		// Reactions
		api.GET("/favorites", h.ListFavorites)
		api.POST("/pets/:id/favorite", h.FavoritePet)
		api.DELETE("/pets/:id/favorite", h.UnfavoritePet)
		api.POST("/pets/:id/dislike", h.DislikePet)

		// Species
		api.GET("/species", h.ListSpecies)
		api.GET("/species/:id", h.GetSpecies)
		api.POST("/species", h.CreateSpecies)
		api.PUT("/species/:id", h.UpdateSpecies)
		api.PATCH("/species/:id/active", h.SetSpeciesActive)

		// Gifts
		api.GET("/gifts", h.ListGifts)
		api.GET("/gifts/:id", h.GetGift)
		api.POST("/gifts", h.CreateGift)
		api.PUT("/gifts/:id", h.UpdateGift)
		api.PATCH("/gifts/:id/active", h.SetGiftActive)

		// Ongs
		api.GET("/ongs", h.ListOngs)
		api.GET("/ongs/:id", h.GetOng)
		api.POST("/ongs", h.CreateOng)
		api.PUT("/ongs/:id", h.UpdateOng)
		api.PATCH("/ongs/:id/active", h.SetOngActive)

		// Partners
		api.GET("/partners", h.ListPartners)
		api.GET("/partners/:id", h.GetPartner)
		api.POST("/partners", h.CreatePartner)
		api.PUT("/partners/:id", h.UpdatePartner)
		api.PATCH("/partners/:id/active", h.SetPartnerActive)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix. Trailing slashes are trimmed so
// "/api/v1/" from config mounts the same tree as "/api/v1"; "" and "/" both
// mean the root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	return r.Group(strings.TrimRight(prefix, "/"))
}
