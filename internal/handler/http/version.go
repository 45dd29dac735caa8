package http

import (
	"net/http"

	"github.com/MKhiriev/speech-analytics/models"
)

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.services.AppInfoService.GetBuildInfo(r.Context()), http.StatusOK)
}

// health answers 503 only when a critical component is down, so the
// platform keeps routing traffic to a degraded instance.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := h.services.HealthService.Check(r.Context())

	code := http.StatusOK
	if status.Status == models.HealthStatusUnhealthy {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-store")
	respond(w, r, status, code)
}
