// handlers/analytics_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jszwec/csvutil"

	"github.com/gewnthar/skysql/models"
	"github.com/gewnthar/skysql/services"
)

const maxReportBody = 1 << 16

func (api *API) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := api.svc.DashboardStats(r.Context())
	if err != nil {
		api.log.Error("dashboard stats failed", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Dashboard service temporarily unavailable")
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

func (api *API) EfficiencyAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := api.svc.EfficiencyAnalytics(r.Context())
	if err != nil {
		api.log.Error("efficiency analytics failed", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Analytics service temporarily unavailable")
		return
	}
	respondWithJSON(w, http.StatusOK, analytics)
}

func (api *API) OperationalMetrics(w http.ResponseWriter, r *http.Request) {
	report, err := api.svc.OperationalMetrics(r.Context())
	if err != nil {
		api.log.Error("operational metrics failed", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Metrics service temporarily unavailable")
		return
	}
	respondWithJSON(w, http.StatusOK, report)
}

func (api *API) AnalyzeRoute(w http.ResponseWriter, r *http.Request) {
	routeID, err := strconv.Atoi(chi.URLParam(r, "routeID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Route id must be an integer")
		return
	}

	analysis, err := api.svc.AnalyzeRoute(r.Context(), routeID)
	switch {
	case errors.Is(err, services.ErrRouteNotFound):
		respondWithError(w, http.StatusNotFound, "Route not found")
		return
	case err != nil:
		api.log.Error("route analysis failed", "route_id", routeID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Route analysis service temporarily unavailable")
		return
	}
	respondWithJSON(w, http.StatusOK, analysis)
}

// GenerateReport accepts an optional JSON body; a missing body means an
// efficiency report rendered as JSON.
func (api *API) GenerateReport(w http.ResponseWriter, r *http.Request) {
	var req models.ReportRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxReportBody)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format != "" && format != "json" && format != "csv" {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Unsupported report format: %s", req.Format))
		return
	}

	report, err := api.svc.GenerateReport(r.Context(), req.ReportType)
	switch {
	case errors.Is(err, services.ErrUnknownReportType):
		respondWithJSON(w, http.StatusBadRequest, errorBody{
			Error:     fmt.Sprintf("Unsupported report type: %s", req.ReportType),
			Timestamp: time.Now(),
			Supported: services.SupportedReportTypes,
		})
		return
	case err != nil:
		api.log.Error("report generation failed", "report_type", req.ReportType, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Report generation service temporarily unavailable")
		return
	}

	if format == "csv" {
		api.writeReportCSV(w, report)
		return
	}
	respondWithJSON(w, http.StatusOK, report)
}

func (api *API) writeReportCSV(w http.ResponseWriter, report *models.Report) {
	body, err := csvutil.Marshal(report.Data)
	if err != nil {
		api.log.Error("failed to encode report as CSV", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Report generation service temporarily unavailable")
		return
	}
	filename := fmt.Sprintf("%s_report_%s.csv", report.ReportType, report.GeneratedAt.Format("20060102"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
