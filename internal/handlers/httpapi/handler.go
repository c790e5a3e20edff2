package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gabapcia/blockarchive/internal/archiveinfo"
	"github.com/gabapcia/blockarchive/internal/archiver"
	"github.com/gabapcia/blockarchive/internal/pkg/logger"
	"github.com/gorilla/mux"
)

type handler struct {
	info   archiveinfo.Service
	health archiveinfo.StatusReader
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

func (h *handler) healthz(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		var halted []archiver.StreamStatus
		for _, kind := range archiver.Streams {
			if status := h.health.Status(kind); status.Halted() {
				halted = append(halted, status)
			}
		}

		if len(halted) > 0 {
			respondJSON(w, http.StatusServiceUnavailable, halted)
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *handler) snapshot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.info.Snapshot(r.Context()))
}

func (h *handler) archivedBlock(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stream, err := archiver.ParseStreamKind(vars["stream"])
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	height, err := strconv.ParseUint(vars["height"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "height must be an unsigned integer")
		return
	}

	archived, err := h.info.ArchivedBlock(r.Context(), stream, height)
	switch {
	case errors.Is(err, archiver.ErrRecordNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case err != nil:
		logger.Error(r.Context(), "read archived block", "stream.kind", stream, "block.height", height, "error", err)
		respondError(w, http.StatusBadGateway, "archived block unavailable")
	default:
		respondJSON(w, http.StatusOK, archived)
	}
}
