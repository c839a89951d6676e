package serverhttp

import (
	"github.com/go-chi/chi/v5"

	"github.com/changmai/sabang-qoo10-rincos/internal/enrich/handler"
	"github.com/changmai/sabang-qoo10-rincos/internal/middleware"
	"github.com/changmai/sabang-qoo10-rincos/server/http/handlers"
)

func NewRouter(env handler.Env) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limits
	r.Use(middleware.Recover(env.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(env.Logger))
	r.Use(middleware.CORS(env.Cfg.AllowOrigins))

	r.Get("/health", handlers.Health(env.Catalog != nil))
	r.Get("/catalog", handler.CatalogInfo(env))

	// загрузки: лимит на размер тела и общий rate limit
	r.Group(func(r chi.Router) {
		r.Use(middleware.LimitBytes(int64(env.Cfg.MaxUploadMB) << 20))
		r.Use(middleware.RateLimit(env.Cfg.RateLimitRPS, env.Cfg.RateLimitBurst))

		r.Post("/dr", handler.DR(env))
		r.Post("/orders", handler.Orders(env))
		r.Post("/preview", handler.Preview(env))
	})

	return r
}
