package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/LianHaeming/raw2hdr-site/storage"
)

// Router builds the site's route table.
func (d *Deps) Router() http.Handler {
	timeout := d.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(d.logger()))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// The frame stream lives as long as its client, so it sits outside the
	// request timeout.
	r.Get("/api/explainer/{id}/frames", d.HandleFrames)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(timeout))

		// Static files
		if d.StaticDir != "" {
			r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(d.StaticDir))))
		}

		// Pages (return full HTML)
		r.Get("/", d.HandleHome)
		r.Get("/explainer", d.HandleExplainerPage)
		r.Get("/deep-dive", d.HandleDeepDive)

		// Explainer sessions: htmx partials or JSON
		r.Post("/api/explainer", d.HandleCreateExplainer)
		r.Get("/api/explainer/{id}", d.HandleGetExplainer)
		r.Delete("/api/explainer/{id}", d.HandleDeleteExplainer)
		r.Post("/api/explainer/{id}/{action}", d.HandleExplainerAction)

		// Sample series
		r.Get("/api/samples/{kind}", d.HandleSamples)

		// Rendered images and downloads
		r.Get("/charts/{file}", d.HandleChart)
		r.Get("/hero/{file}", d.HandleHero)
		r.Get("/download", d.HandleDownload)
		r.Get("/"+storage.DownloadName, d.HandleDownload)
	})

	r.NotFound(d.HandleNotFound)
	return r
}
