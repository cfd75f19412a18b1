package http

import (
	"net/http"

	"github.com/MKhiriev/go-registry-validator/internal/utils"
	"github.com/MKhiriev/go-registry-validator/internal/validators"
)

// versionResponse describes the running server and the API versions it validates.
type versionResponse struct {
	Version       string `json:"version"`
	MinAPIVersion int    `json:"minApiVersion"`
	MaxAPIVersion int    `json:"maxApiVersion"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, versionResponse{
		Version:       h.services.AppInfoService.GetAppVersion(r.Context()),
		MinAPIVersion: validators.MinVersion,
		MaxAPIVersion: validators.MaxVersion,
	}, http.StatusOK)
}
