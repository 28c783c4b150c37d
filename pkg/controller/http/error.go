package http

import (
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeseeker/pkg/domain/model/errs"
	"github.com/secmon-lab/codeseeker/pkg/utils/logging"
)

const (
	detailUpstreamFailed  = "GitHub API request failed"
	detailUpstreamInvalid = "GitHub API returned an unexpected response"
	detailInternal        = "internal server error"
)

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.From(r.Context())

	var upstreamErr *errs.UpstreamError
	switch {
	case errors.As(err, &upstreamErr):
		// The upstream status is relayed, its body is not.
		status := upstreamErr.StatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		logger.Warn("GitHub API request failed", "error", err, "status", status)
		writeDetail(w, r, status, detailUpstreamFailed)

	case goerr.HasTag(err, errs.TagInvalidUpstream):
		logger.Error("Unexpected GitHub API response", "error", err)
		writeDetail(w, r, http.StatusBadGateway, detailUpstreamInvalid)

	case goerr.HasTag(err, errs.TagValidation):
		logger.Warn("Validation error", "error", err)
		writeDetail(w, r, http.StatusUnprocessableEntity, err.Error())

	case goerr.HasTag(err, errs.TagNotFound):
		logger.Warn("Not Found", "error", err)
		writeDetail(w, r, http.StatusNotFound, err.Error())

	default:
		errs.Handle(r.Context(), err)
		writeDetail(w, r, http.StatusInternalServerError, detailInternal)
	}
}
