package http

import (
	"net/http"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeseeker/pkg/domain/model/errs"
	"github.com/secmon-lab/codeseeker/pkg/usecase"
	"github.com/secmon-lab/codeseeker/pkg/utils/errutil"
)

// searchHandler serves GET /search?query=<string>&limit=<int>.
func searchHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, limit, err := parseSearchParams(r)
		if err != nil {
			handleError(w, r, err)
			return
		}

		result, err := uc.SearchRepositories(r.Context(), query, limit)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

func parseSearchParams(r *http.Request) (string, int, error) {
	values := r.URL.Query()

	// An empty query is accepted; only a missing one is rejected.
	if !values.Has("query") {
		return "", 0, goerr.New("query parameter is required",
			goerr.T(errs.TagValidation),
			goerr.TV(errutil.FieldKey, "query"))
	}
	query := values.Get("query")

	limit := usecase.DefaultSearchLimit
	if raw := values.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return "", 0, goerr.Wrap(err, "limit must be an integer",
				goerr.T(errs.TagValidation),
				goerr.TV(errutil.FieldKey, "limit"))
		}
		if n < 0 {
			return "", 0, goerr.New("limit must not be negative",
				goerr.T(errs.TagValidation),
				goerr.TV(errutil.LimitKey, n))
		}
		limit = n
	}

	return query, limit, nil
}
