// SPDX-License-Identifier: MIT
// Package: matcalc/form
//
// handler.go — HTTP entry points.
//
// Implementation:
//   - Stage 1: decode the form with ParseValues (never fails, clamps).
//   - Stage 2: BuildSet + Dispatch; a failure becomes the single error line.
//   - Stage 3: render heatmap and, for 2×2 eigen results, arrows as inline PNG.
//   - Plot errors are logged and leave the text report in place.

package form

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/katalvlaran/matcalc/builder"
	"github.com/katalvlaran/matcalc/dispatch"
	"github.com/katalvlaran/matcalc/render"
)

const (
	pathRoot    = "/"
	pathHeatmap = "/heatmap"
)

//go:embed templates/page.html
var pageHTML string

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

// Handler serves the calculator form. It is safe for concurrent use.
type Handler struct {
	cfg        config
	dispatcher *dispatch.Dispatcher
	mux        *http.ServeMux
}

var _ http.Handler = (*Handler)(nil)

// New returns a Handler configured by opts.
func New(opts ...Option) *Handler {
	cfg := gatherOptions(opts...)
	h := &Handler{
		cfg: cfg,
		dispatcher: dispatch.New(
			dispatch.WithLogger(cfg.logger),
			dispatch.WithDisplayPlaces(cfg.places),
		),
		mux: http.NewServeMux(),
	}
	h.mux.HandleFunc("GET "+pathHeatmap, h.serveHeatmap)
	h.mux.HandleFunc("GET /{$}", h.serveForm)
	h.mux.HandleFunc("POST /{$}", h.serveForm)

	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// compute builds the posted matrices and dispatches the selected operation.
func (h *Handler) compute(in Input) (dispatch.Result, error) {
	set, err := builder.BuildSet(in.Shapes, in.Cells,
		builder.WithIDScheme(matrixID),
		builder.WithMaxDim(h.cfg.maxDim),
	)
	if err != nil {
		return dispatch.Result{}, err
	}

	return h.dispatcher.Dispatch(in.Request(), set), nil
}

func (h *Handler) serveForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	in := ParseValues(r.Form, h.cfg.maxDim)
	view := newPageView(in, h.cfg.maxDim)

	if r.Method == http.MethodPost && !in.Resize {
		view.Submitted = true
		h.fillResult(view, in)
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, view); err != nil {
		h.cfg.logger.Printf("form: template: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// fillResult runs the calculation and stores its presentation in view.
func (h *Handler) fillResult(view *pageView, in Input) {
	res, err := h.compute(in)
	if err != nil {
		h.cfg.logger.Printf("form: build: %v", err)
		view.Error = err.Error()
		return
	}
	if res.Kind == dispatch.KindFailure {
		view.Error = res.Report()
		return
	}
	view.Report = res.Report()
	view.Title = res.Title
	view.HeatmapLink = heatmapLink(in)

	var buf bytes.Buffer
	if err = render.Heatmap(&buf, res.Heatmap, res.Title); err != nil {
		h.cfg.logger.Printf("form: %s: %v", res.Title, err)
	} else {
		view.HeatmapPNG = pngDataURL(&buf)
	}

	if res.Kind != dispatch.KindEigen {
		return
	}
	if res.Eigen.Arrows == nil {
		view.Notice = res.Eigen.Notice
		return
	}
	buf.Reset()
	if err = render.Arrows(&buf, *res.Eigen.Arrows, render.DefaultArrowsTitle); err != nil {
		h.cfg.logger.Printf("form: arrows: %v", err)
		return
	}
	view.ArrowsPNG = pngDataURL(&buf)
}

// serveHeatmap renders the interactive heatmap of the result described by the query.
func (h *Handler) serveHeatmap(w http.ResponseWriter, r *http.Request) {
	in := ParseValues(r.URL.Query(), h.cfg.maxDim)
	res, err := h.compute(in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if res.Kind == dispatch.KindFailure {
		http.Error(w, res.Report(), http.StatusUnprocessableEntity)
		return
	}

	var buf bytes.Buffer
	if err = render.HeatmapPage(&buf, res.Heatmap, res.Title); err != nil {
		h.cfg.logger.Printf("form: heatmap page: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
