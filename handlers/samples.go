package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/LianHaeming/raw2hdr-site/explainer"
	"github.com/LianHaeming/raw2hdr-site/samples"
)

// PairResponse carries an SDR and an HDR series drawn on the same axes.
type PairResponse struct {
	SDR samples.Series `json:"sdr"`
	HDR samples.Series `json:"hdr"`
}

// NitsResponse is the nits-section distribution with its clip marker.
type NitsResponse struct {
	PairResponse
	Clip float64 `json:"clip"`
}

// GamutResponse holds the two gamut outlines on the CIE xy plane.
type GamutResponse struct {
	SRGB       samples.Series       `json:"srgb"`
	Rec2020    samples.Series       `json:"rec2020"`
	WhitePoint samples.Chromaticity `json:"whitePoint"`
}

// HandleSamples returns a synthetic series as JSON.
//
//	histogram   ?mode=sdr|hdr
//	transfer    ?steps=N
//	stage-bars  ?stage=0..5
//	nits
//	gamut
//	bit-depth   ?mode=sdr|hdr&zoom=1..8
func (d *Deps) HandleSamples(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	switch chi.URLParam(r, "kind") {
	case "histogram":
		jsonOK(w, samples.HistogramFor(samples.ParseMode(q.Get("mode")), d.noise()))

	case "transfer":
		steps, _ := strconv.Atoi(q.Get("steps"))
		if steps > 1000 {
			steps = 1000
		}
		sdr, hdr := samples.TransferCurves(steps)
		jsonOK(w, PairResponse{SDR: sdr, HDR: hdr})

	case "stage-bars":
		stage, err := strconv.Atoi(q.Get("stage"))
		if err != nil {
			jsonError(w, "stage must be an integer 0-5", http.StatusBadRequest)
			return
		}
		jsonOK(w, samples.StageBars(explainer.ClampStage(stage), d.noise()))

	case "nits":
		sdr, hdr := samples.NitDistribution()
		jsonOK(w, NitsResponse{PairResponse: PairResponse{SDR: sdr, HDR: hdr}, Clip: samples.SDRClipBrightness})

	case "gamut":
		srgb, rec := samples.Gamut()
		jsonOK(w, GamutResponse{SRGB: srgb, Rec2020: rec, WhitePoint: samples.WhitePointD65})

	case "bit-depth":
		zoom, err := strconv.ParseFloat(q.Get("zoom"), 64)
		if err != nil {
			zoom = samples.MinZoom
		}
		jsonOK(w, samples.BitDepthBands(samples.ParseMode(q.Get("mode")), zoom))

	default:
		jsonError(w, "Unknown sample series", http.StatusNotFound)
	}
}
