package errutil

import "github.com/m-mizutani/goerr/v2"

var (
	RequestIDKey = goerr.NewTypedKey[string]("request_id")

	// Search parameters
	QueryKey = goerr.NewTypedKey[string]("query")
	LimitKey = goerr.NewTypedKey[int]("limit")

	// Upstream
	RepositoryKey = goerr.NewTypedKey[string]("repository")
	EndpointKey   = goerr.NewTypedKey[string]("endpoint")
	HTTPStatusKey = goerr.NewTypedKey[int]("http_status")

	FieldKey    = goerr.NewTypedKey[string]("field")
	FilePathKey = goerr.NewTypedKey[string]("file_path")
)
