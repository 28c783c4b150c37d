// Package plugin describes the assistant plugin surface: the ai-plugin.json
// manifest and the OpenAPI document it points to.
package plugin

import (
	"strings"
)

const (
	ManifestPath = "/.well-known/ai-plugin.json"
	LogoPath     = "/logo.png"
	OpenAPIPath  = "/openapi.yaml"
)

type Manifest struct {
	SchemaVersion       string       `json:"schema_version"`
	NameForHuman        string       `json:"name_for_human"`
	NameForModel        string       `json:"name_for_model"`
	DescriptionForHuman string       `json:"description_for_human"`
	DescriptionForModel string       `json:"description_for_model"`
	Auth                ManifestAuth `json:"auth"`
	API                 ManifestAPI  `json:"api"`
	LogoURL             string       `json:"logo_url"`
	ContactEmail        string       `json:"contact_email"`
	LegalInfoURL        string       `json:"legal_info_url"`
}

type ManifestAuth struct {
	Type string `json:"type"`
}

type ManifestAPI struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// NewManifest returns the built-in manifest for a server reachable at
// serverURL (scheme and host, e.g. https://codeseeker.example.com).
func NewManifest(serverURL, contactEmail, legalInfoURL string) *Manifest {
	base := strings.TrimSuffix(serverURL, "/")

	return &Manifest{
		SchemaVersion:       "v1",
		NameForHuman:        "CodeSeeker",
		NameForModel:        "codeseeker",
		DescriptionForHuman: "Find GitHub projects related to your coding questions and ideas.",
		DescriptionForModel: searchDescription,
		Auth:                ManifestAuth{Type: "none"},
		API: ManifestAPI{
			Type: "openapi",
			URL:  base + OpenAPIPath,
		},
		LogoURL:      base + LogoPath,
		ContactEmail: contactEmail,
		LegalInfoURL: legalInfoURL,
	}
}
