// Package github holds the GitHub REST API payloads consumed by codeseeker.
// Timestamps are kept as the strings GitHub sent.
package github

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeseeker/pkg/domain/model/errs"
	"github.com/secmon-lab/codeseeker/pkg/utils/errutil"
	"github.com/secmon-lab/codeseeker/pkg/utils/ptr"
)

// SearchResult is the body of GET /search/repositories.
type SearchResult struct {
	TotalCount        int           `json:"total_count"`
	IncompleteResults bool          `json:"incomplete_results"`
	Items             []*Repository `json:"items"`
}

// Repository is one item of a repository search. Pointer fields marked
// required must be present in the upstream payload; the other pointers are
// nullable on GitHub's side.
type Repository struct {
	FullName        *string  `json:"full_name" validate:"required"`
	Description     *string  `json:"description"`
	HTMLURL         *string  `json:"html_url" validate:"required"`
	Homepage        *string  `json:"homepage"`
	Topics          []string `json:"topics"`
	Language        *string  `json:"language"`
	License         *License `json:"license"`
	StargazersCount *int     `json:"stargazers_count" validate:"required"`
	ForksCount      *int     `json:"forks_count" validate:"required"`
	Fork            *bool    `json:"fork" validate:"required"`
	CreatedAt       *string  `json:"created_at" validate:"required"`
	UpdatedAt       *string  `json:"updated_at" validate:"required"`
	PushedAt        *string  `json:"pushed_at" validate:"required"`
}

type License struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Validate reports the first required field missing from x.
func (x *Repository) Validate() error {
	if x == nil {
		return goerr.New("repository record is null", goerr.T(errs.TagInvalidUpstream))
	}

	if err := getValidator().Struct(x); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return goerr.Wrap(err, "repository record misses a required field",
				goerr.T(errs.TagInvalidUpstream),
				goerr.TV(errutil.FieldKey, fieldErrs[0].Field()),
				goerr.TV(errutil.RepositoryKey, x.Name()),
			)
		}
		return goerr.Wrap(err, "failed to validate repository record", goerr.T(errs.TagInvalidUpstream))
	}
	return nil
}

// Name returns the owner/repo name, or an empty string when GitHub did not
// send one.
func (x *Repository) Name() string {
	if x == nil {
		return ""
	}
	return ptr.Deref(x.FullName)
}

// LicenseName returns the display name of the license, nil if the
// repository has none.
func (x *Repository) LicenseName() *string {
	if x.License == nil {
		return nil
	}
	return ptr.Ref(x.License.Name)
}
