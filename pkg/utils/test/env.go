// Package test holds helpers for tests that talk to real services. Those
// tests are skipped unless the listed environment variables are set.
package test

import (
	"fmt"
	"os"
	"testing"
)

type EnvVars struct {
	vars map[string]string
}

// NewEnvVars skips t when any of keys is unset.
func NewEnvVars(t *testing.T, keys ...string) EnvVars {
	t.Helper()
	e := EnvVars{vars: make(map[string]string, len(keys))}

	for _, key := range keys {
		value, ok := os.LookupEnv(key)
		if !ok {
			t.Skipf("skipping test because %s is not set", key)
		}
		e.vars[key] = value
	}

	return e
}

func (e EnvVars) Get(key string) string {
	v, ok := e.vars[key]
	if !ok {
		panic(fmt.Sprintf("env var %s was not requested in NewEnvVars", key))
	}
	return v
}
