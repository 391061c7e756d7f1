package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"ned-extinction-service/internal/adapters/ned"
	"ned-extinction-service/internal/api/dto"
	"ned-extinction-service/internal/domain"
	"ned-extinction-service/internal/ports"
	"ned-extinction-service/internal/services"
	"net/http"
	"strings"
)

// ExtinctionHandler resolves extinction lookups through the configured
// provider.
type ExtinctionHandler struct {
	Provider ports.ExtinctionProvider
}

// Lookup validates the request, runs one calculator query, and shapes the
// response per as_dict. Filter mismatches are not failures; they come back
// as warnings with null values.
func (h *ExtinctionHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ExtinctionRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(req.RA) == "" || strings.TrimSpace(req.Dec) == "" {
		writeError(w, r, http.StatusBadRequest, "ra and dec are required")
		return
	}

	filters := req.Filters
	if len(filters) == 0 {
		filters = []string{"SDSS g"}
	}

	frame := domain.DefaultFrame()
	if req.CoordSystem != "" {
		frame.System = req.CoordSystem
	}
	if req.Equinox != "" {
		frame.Equinox = req.Equinox
	}
	if req.ObsEpoch != "" {
		frame.ObsEpoch = req.ObsEpoch
	}

	svcReq := services.Request{
		RA:      domain.ParseCoordinate(req.RA),
		Dec:     domain.ParseCoordinate(req.Dec),
		Filters: filters,
		Frame:   frame,
	}

	result, err := services.RequestExtinctions(r.Context(), svcReq, h.Provider)
	if err != nil {
		log.Printf("extinction lookup failed: %v", err)

		var statusErr *ned.StatusError
		if errors.As(err, &statusErr) {
			writeError(w, r, http.StatusBadGateway, statusErr.Error())
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ExtinctionResponse{
		Warnings: make([]dto.WarningResponse, 0, len(result.Warnings)),
	}
	for _, warn := range result.Warnings {
		res.Warnings = append(res.Warnings, dto.WarningResponse{
			Filter:  warn.Filter,
			Kind:    string(warn.Kind),
			Message: warn.Message,
		})
	}

	if req.AsDict {
		res.ByFilter = make(map[string]*float64, len(result.Filters))
		for name, v := range result.ByFilter() {
			res.ByFilter[name] = magnitudeOrNull(v)
		}
	} else {
		res.Extinctions = make([]*float64, 0, len(result.Values))
		for _, v := range result.Values {
			res.Extinctions = append(res.Extinctions, magnitudeOrNull(v))
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

func magnitudeOrNull(v domain.Value) *float64 {
	if !v.OK {
		return nil
	}
	mag := v.Magnitude
	return &mag
}
