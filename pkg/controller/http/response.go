package http

import (
	"encoding/json"
	"net/http"

	"github.com/secmon-lab/codeseeker/pkg/utils/logging"
	"github.com/secmon-lab/codeseeker/pkg/utils/safe"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.From(r.Context()).Error("failed to encode response", logging.ErrAttr(err))
		http.Error(w, `{"detail":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

func writeDetail(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeJSON(w, r, status, errorResponse{Detail: detail})
}
