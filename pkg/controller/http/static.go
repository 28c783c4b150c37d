package http

import (
	"net/http"
	"strconv"

	"github.com/secmon-lab/codeseeker/pkg/utils/safe"
)

func assetHandler(data []byte, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		safe.Write(r.Context(), w, data)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
