package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/LianHaeming/raw2hdr-site/explainer"
)

// FrameEvent is the payload of one "frame" server-sent event.
type FrameEvent struct {
	Stage int              `json:"stage"`
	Frame explainer.Frame  `json:"frame"`
	Scene *explainer.Scene `json:"scene,omitempty"`
}

// HandleFrames streams the session's displayed frame as server-sent events,
// one per tick, each advanced by the measured time since the last. It runs
// until the client goes away, the session is deleted or the server shuts
// down. ?scene=1 adds the full scene description; ?limit=N stops after N
// frames.
func (d *Deps) HandleFrames(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	flusher, ok := w.(http.Flusher)
	if !ok {
		jsonError(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}
	if _, err := d.Sessions.Get(id); err != nil {
		d.sessionError(w, err)
		return
	}

	withScene, _ := strconv.ParseBool(r.URL.Query().Get("scene"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	log := d.logger().With(zap.String("session", id))
	log.Debug("frame stream opened")
	defer log.Debug("frame stream closed")

	ticker := time.NewTicker(d.frameInterval())
	defer ticker.Stop()

	closed := func() {
		fmt.Fprint(w, "event: closed\ndata: {}\n\n")
		flusher.Flush()
	}

	for sent := 0; limit <= 0 || sent < limit; sent++ {
		select {
		case <-r.Context().Done():
			return
		case <-d.streamsClosed():
			closed()
			return
		case <-ticker.C:
			f, sc, err := d.Sessions.Tick(id)
			if err != nil {
				closed()
				return
			}
			ev := FrameEvent{Stage: sc.Stage, Frame: f}
			if withScene {
				ev.Scene = &sc
			}
			b, err := json.Marshal(ev)
			if err != nil {
				log.Error("encode frame", zap.Error(err))
				return
			}
			if _, err := fmt.Fprintf(w, "event: frame\ndata: %s\n\n", b); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
