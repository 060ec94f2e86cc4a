package http

import (
	"net/http"

	"github.com/MKhiriev/go-secret-notes/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.AppInfo.GetAppVersion(r.Context()), http.StatusOK)
}
