package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skylark-hq/skylark/internal/engine"
)

const maxBodyBytes = 1 << 20

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func (a *API) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		a.logger.Errorw("failed to write response", "error", err)
	}
}

func (a *API) errorResponse(w http.ResponseWriter, status int, err error) {
	a.jsonResponse(w, status, map[string]string{"error": err.Error()})
}

// engineError maps engine sentinel errors onto HTTP statuses.
func (a *API) engineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrOrderNotFound),
		errors.Is(err, engine.ErrItemNotFound),
		errors.Is(err, engine.ErrIngredientNotFound):
		a.errorResponse(w, http.StatusNotFound, err)
	case errors.Is(err, engine.ErrIllegalTransition):
		a.errorResponse(w, http.StatusConflict, err)
	case errors.Is(err, engine.ErrEmptyCart),
		errors.Is(err, engine.ErrMissingName),
		errors.Is(err, engine.ErrMissingPhone),
		errors.Is(err, engine.ErrMissingTable),
		errors.Is(err, engine.ErrInvalidService),
		errors.Is(err, engine.ErrInvalidStatus),
		errors.Is(err, engine.ErrItemUnavailable):
		a.errorResponse(w, http.StatusBadRequest, err)
	default:
		a.logger.Errorw("internal error", "error", err)
		a.errorResponse(w, http.StatusInternalServerError, err)
	}
}
