package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/LianHaeming/raw2hdr-site/explainer"
	"github.com/LianHaeming/raw2hdr-site/storage"
)

// ExplainerResponse is the JSON body of every explainer session endpoint.
type ExplainerResponse struct {
	ID string `json:"id"`
	explainer.View
}

var actions = map[string]func(*explainer.Explainer){
	"advance": (*explainer.Explainer).Advance,
	"retreat": (*explainer.Explainer).Retreat,
	"reset":   (*explainer.Explainer).Reset,
}

// HandleCreateExplainer mounts a new explainer at stage 0.
// ?presentation=inline|overlay picks where it is shown.
func (d *Deps) HandleCreateExplainer(w http.ResponseWriter, r *http.Request) {
	p := explainer.ParsePresentation(r.URL.Query().Get("presentation"))
	id, view := d.Sessions.Create(p)
	if isHTMX(r) {
		d.renderPanel(w, id, view)
		return
	}
	w.Header().Set("Location", "/api/explainer/"+id)
	jsonStatus(w, http.StatusCreated, ExplainerResponse{ID: id, View: view})
}

// HandleGetExplainer returns a session's current stage.
func (d *Deps) HandleGetExplainer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, err := d.Sessions.Get(id)
	if err != nil {
		d.sessionError(w, err)
		return
	}
	d.respondView(w, r, id, view)
}

// HandleDeleteExplainer unmounts a session, as when the overlay closes.
func (d *Deps) HandleDeleteExplainer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := d.Sessions.Delete(id); err != nil {
		d.sessionError(w, err)
		return
	}
	if isHTMX(r) {
		// htmx swaps the overlay out with the empty body.
		w.WriteHeader(http.StatusOK)
		return
	}
	jsonOK(w, map[string]any{"success": true})
}

// HandleExplainerAction applies advance, retreat or reset to a session.
// Advancing past the last stage or retreating before the first is a no-op.
func (d *Deps) HandleExplainerAction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	fn, ok := actions[chi.URLParam(r, "action")]
	if !ok {
		jsonError(w, "Unknown action (advance, retreat, reset)", http.StatusNotFound)
		return
	}
	view, err := d.Sessions.Update(id, fn)
	if err != nil {
		d.sessionError(w, err)
		return
	}
	d.respondView(w, r, id, view)
}

func (d *Deps) respondView(w http.ResponseWriter, r *http.Request, id string, view explainer.View) {
	if isHTMX(r) {
		d.renderPanel(w, id, view)
		return
	}
	jsonOK(w, ExplainerResponse{ID: id, View: view})
}

func (d *Deps) renderPanel(w http.ResponseWriter, id string, view explainer.View) {
	d.render(w, "partials/stage-panel.html", d.explainerData(id, view))
}

func (d *Deps) sessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		jsonError(w, "Explainer session not found", http.StatusNotFound)
		return
	}
	d.logger().Error("explainer session", zap.Error(err))
	jsonError(w, "Explainer session failed", http.StatusInternalServerError)
}

// --- JSON helpers ---

func jsonOK(w http.ResponseWriter, data any) {
	jsonStatus(w, http.StatusOK, data)
}

func jsonStatus(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
