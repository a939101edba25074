package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/LianHaeming/raw2hdr-site/explainer"
	"github.com/LianHaeming/raw2hdr-site/models"
	"github.com/LianHaeming/raw2hdr-site/samples"
	"github.com/LianHaeming/raw2hdr-site/shell"
)

func pageShell(s *shell.State, active string) models.Shell {
	return models.Shell{Scrolled: s.Scrolled, Nav: models.NavLinks, Active: active}
}

// HandleHome renders the landing page. ?reveal=N places the comparison
// slider and ?explain=1 renders the pipeline overlay open, so the page works
// without JavaScript.
func (d *Deps) HandleHome(w http.ResponseWriter, r *http.Request) {
	st := shell.FromQuery(r.URL.Query())

	data := models.HomePageData{
		Shell:        pageShell(st, "home"),
		Slider:       st.Slider,
		Features:     models.Features,
		ScienceSteps: models.ScienceSteps,
		BetaNotes:    models.BetaNotes,
		Requirements: models.DownloadRequirements,
	}
	if st.ModalOpen() {
		ex := d.mount(explainer.Overlay)
		data.Overlay = &ex
	}

	d.render(w, "home.html", data)
}

// HandleExplainerPage renders the full-page pipeline walkthrough.
func (d *Deps) HandleExplainerPage(w http.ResponseWriter, r *http.Request) {
	st := shell.FromQuery(r.URL.Query())
	data := models.ExplainerPageData{
		Shell:     pageShell(st, "explainer"),
		Explainer: d.mount(explainer.Inline),
	}
	d.render(w, "explainer.html", data)
}

// HandleDeepDive renders the bit-depth page for ?mode=sdr|hdr&zoom=N.
func (d *Deps) HandleDeepDive(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mode := samples.SDR
	if m := q.Get("mode"); m != "" {
		mode = samples.ParseMode(m)
	}
	zoom := samples.MinZoom
	if z, err := strconv.ParseFloat(q.Get("zoom"), 64); err == nil {
		zoom = samples.ClampZoom(z)
	}

	data := models.DeepDivePageData{
		Shell:     pageShell(shell.FromQuery(q), "deep-dive"),
		Mode:      mode,
		Zoom:      zoom,
		MinZoom:   samples.MinZoom,
		MaxZoom:   samples.MaxZoom,
		Gradient:  samples.BitDepthBands(mode, zoom),
		Histogram: samples.HistogramFor(mode, d.noise()),
	}
	d.render(w, "deep-dive.html", data)
}

// HandleNotFound renders the 404 page.
func (d *Deps) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	d.renderError(w, http.StatusNotFound, "Page not found", "There is nothing at "+r.URL.Path+".")
}

// mount opens a new explainer session for a page render.
func (d *Deps) mount(p explainer.Presentation) models.ExplainerData {
	id, view := d.Sessions.Create(p)
	return d.explainerData(id, view)
}

func (d *Deps) explainerData(id string, view explainer.View) models.ExplainerData {
	return models.ExplainerData{
		SessionID: id,
		View:      view,
		Bars:      samples.StageBars(view.Stage, d.noise()),
	}
}

func (d *Deps) render(w http.ResponseWriter, name string, data any) {
	d.renderStatus(w, http.StatusOK, name, data)
}

func (d *Deps) renderStatus(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := d.Templates.ExecuteTemplate(&buf, name, data); err != nil {
		d.logger().Error("template error", zap.String("template", name), zap.Error(err))
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (d *Deps) renderError(w http.ResponseWriter, status int, title, msg string) {
	data := models.ErrorPageData{
		Shell:   models.Shell{Nav: models.NavLinks},
		Status:  status,
		Title:   title,
		Message: msg,
	}
	d.renderStatus(w, status, "error.html", data)
}
