package app

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/metinatakli/lesson-booking/api"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riandyrn/otelchi"
)

var _ api.ServerInterface = (*application)(nil)

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.logRequest)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(app.metrics)
	r.Use(cors.Handler(app.corsOptions()))

	r.Get("/openapi.json", app.GetOpenAPISpec)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{app.sessionManager.LoadAndSave},
		ErrorHandlerFunc: app.badRequestResponse,
	})

	r.Get("/", app.serveIndex)
	r.Get("/*", app.serveStatic)

	return r
}

func (app *application) corsOptions() cors.Options {
	opts := cors.Options{
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Idempotency-Key"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	// browsers drop credentialed responses with a literal "*", so any origin
	// is echoed back instead
	if slices.Contains(app.config.corsOrigins, "*") {
		opts.AllowOriginFunc = func(r *http.Request, origin string) bool {
			return true
		}
	} else {
		opts.AllowedOrigins = app.config.corsOrigins
	}

	return opts
}
