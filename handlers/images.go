package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/LianHaeming/raw2hdr-site/charts"
	"github.com/LianHaeming/raw2hdr-site/imaging"
	"github.com/LianHaeming/raw2hdr-site/storage"
)

// splitFile splits "name.ext" into its parts.
func splitFile(file string) (name, ext string, ok bool) {
	i := strings.LastIndexByte(file, '.')
	if i <= 0 || i == len(file)-1 {
		return "", "", false
	}
	return file[:i], file[i+1:], true
}

// HandleChart renders /charts/{name}.{png|svg}.
func (d *Deps) HandleChart(w http.ResponseWriter, r *http.Request) {
	name, ext, ok := splitFile(chi.URLParam(r, "file"))
	if !ok {
		d.HandleNotFound(w, r)
		return
	}
	format, err := charts.ParseFormat(ext)
	if err != nil {
		d.HandleNotFound(w, r)
		return
	}

	var buf bytes.Buffer
	if err := charts.Render(&buf, name, format, d.noise()); err != nil {
		if errors.Is(err, charts.ErrUnknownChart) {
			d.HandleNotFound(w, r)
			return
		}
		d.logger().Error("chart render failed", zap.String("chart", name), zap.Error(err))
		http.Error(w, "Chart render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = buf.WriteTo(w)
}

// HandleHero serves /hero/{sdr|hdr}.jpg?w=N: the hero photo in the flat or
// vivid look, scaled to N pixels wide.
func (d *Deps) HandleHero(w http.ResponseWriter, r *http.Request) {
	name, ext, ok := splitFile(chi.URLParam(r, "file"))
	if !ok || (ext != "jpg" && ext != "jpeg") {
		d.HandleNotFound(w, r)
		return
	}
	look, err := imaging.ParseLook(name)
	if err != nil {
		d.HandleNotFound(w, r)
		return
	}
	width, _ := strconv.Atoi(r.URL.Query().Get("w"))

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, d.heroSource(), look, width); err != nil {
		d.logger().Error("hero render failed", zap.String("look", string(look)), zap.Error(err))
		http.Error(w, "Image render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = buf.WriteTo(w)
}

// HandleDownload serves the app package, or the 404 page when none has been
// published.
func (d *Deps) HandleDownload(w http.ResponseWriter, r *http.Request) {
	path, err := d.Assets.DownloadPath()
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			d.logger().Error("download lookup failed", zap.Error(err))
		}
		d.renderError(w, http.StatusNotFound, "Download unavailable",
			"The beta package is not published yet. Check back soon.")
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+storage.DownloadName+`"`)
	w.Header().Set("Content-Type", "application/zip")
	http.ServeFile(w, r, path)
}
