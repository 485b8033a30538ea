package httpapi

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/Sebastian1234123/sistema-farmacia/internal/dto"
	"github.com/Sebastian1234123/sistema-farmacia/internal/export"
	"github.com/Sebastian1234123/sistema-farmacia/internal/form"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	if err := s.health.Ping(r.Context()); err != nil {
		_ = render.Render(w, r, &ErrResponse{
			Err:            err,
			HTTPStatusCode: http.StatusServiceUnavailable,
			StatusText:     http.StatusText(http.StatusServiceUnavailable),
		})
		return
	}
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (s *Server) getDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.reports.Dashboard(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertEntityDashboard(d))
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	req := &form.ReportRequest{Period: r.URL.Query().Get("period")}
	if err := req.Validate(); err != nil {
		renderError(w, r, err)
		return
	}
	rep, err := s.reports.Report(r.Context(), req.Period)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConvertEntitySalesReport(rep))
}

func (s *Server) exportSection(w http.ResponseWriter, r *http.Request) {
	req := &form.ExportRequest{
		Period:  r.URL.Query().Get("period"),
		Section: chi.URLParam(r, "section"),
		Format:  r.URL.Query().Get("format"),
	}
	if err := req.Validate(); err != nil {
		renderError(w, r, err)
		return
	}
	sink, err := export.SinkFor(req.Format)
	if err != nil {
		renderError(w, r, err)
		return
	}

	rep, err := s.reports.Report(r.Context(), req.Period)
	if err != nil {
		renderError(w, r, err)
		return
	}
	tbl, err := export.Build(rep, export.Section(req.Section))
	if err != nil {
		renderError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := sink.Write(&buf, tbl); err != nil {
		renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", sink.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("%s_%s.%s", tbl.Name, rep.Period, sink.Extension())))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
