package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-registry-validator/internal/logger"
	"github.com/MKhiriev/go-registry-validator/internal/utils"
	"github.com/MKhiriev/go-registry-validator/models"
	"github.com/go-chi/chi/v5"
)

// validate handles POST /api/v{version}/{entity}/validate.
//
// The body is {"candidate": ..., "current": ..., "availableLanguages": [...]}.
// A valid candidate answers 200, a candidate with violations 422; both carry
// a [models.ValidationResult]. Requests that cannot be validated get an
// error body with the status chosen by statusFromError.
func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	version, err := strconv.Atoi(chi.URLParam(r, "version"))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAPIVersion, err))
		return
	}

	scope, ok := utils.GetScopeFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrMissingScope)
		return
	}
	scope.Version = version

	var call models.ValidationCall
	if err = json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(&call); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
		return
	}
	call.Entity = chi.URLParam(r, "entity")
	call.Scope = scope

	result, err := h.services.ValidationService.Validate(r.Context(), call)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if !result.Valid {
		status = http.StatusUnprocessableEntity
	}
	if _, err = utils.WriteJSON(w, result, status); err != nil {
		log.Err(err).Msg("error writing validation result")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg("validation request failed")

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	utils.WriteError(w, message, status)
}
