package plugin

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

const (
	searchSummary     = "Search relevant GitHub projects based on user queries"
	searchDescription = "When a user seeks coding advice or shares a development idea, " +
		"use their keywords as the 'query' to search for GitHub projects. " +
		"Analyze and present the returned GitHub project details to inspire and guide the user's project."
)

type schema map[string]any

func nullable(typ string) schema {
	return schema{"type": typ, "nullable": true}
}

// OpenAPI renders the OpenAPI 3 document of the search API as YAML.
func OpenAPI(serverURL, version string) ([]byte, error) {
	doc := map[string]any{
		"openapi": "3.0.2",
		"info": map[string]any{
			"title":   "CodeSeeker",
			"version": version,
		},
		"servers": []any{
			map[string]any{"url": strings.TrimSuffix(serverURL, "/")},
		},
		"paths": map[string]any{
			"/search": map[string]any{
				"get": map[string]any{
					"summary":     searchSummary,
					"description": searchDescription,
					"operationId": "search_projects_search_get",
					"parameters": []any{
						map[string]any{
							"name":     "query",
							"in":       "query",
							"required": true,
							"schema":   schema{"title": "Query", "type": "string"},
						},
						map[string]any{
							"name":     "limit",
							"in":       "query",
							"required": false,
							"schema":   schema{"title": "Limit", "type": "integer", "default": 3, "minimum": 0},
						},
					},
					"responses": map[string]any{
						"200": map[string]any{
							"description": "Successful Response",
							"content": map[string]any{
								"application/json": map[string]any{
									"schema": schema{"$ref": "#/components/schemas/SearchResult"},
								},
							},
						},
						"422": map[string]any{
							"description": "Validation Error",
							"content": map[string]any{
								"application/json": map[string]any{
									"schema": schema{"$ref": "#/components/schemas/Error"},
								},
							},
						},
					},
				},
			},
		},
		"components": map[string]any{
			"schemas": map[string]any{
				"SearchResult": schema{
					"title":    "SearchResult",
					"type":     "object",
					"required": []string{"total_count", "items"},
					"properties": map[string]any{
						"total_count": schema{"title": "Total Count", "type": "integer"},
						"items": schema{
							"title": "Items",
							"type":  "array",
							"items": schema{"$ref": "#/components/schemas/Repository"},
						},
					},
				},
				"Repository": schema{
					"title": "Repository",
					"type":  "object",
					"required": []string{
						"name", "url", "topics", "stargazers_count", "forks_count",
						"fork", "created_at", "updated_at", "pushed_at",
					},
					"properties": map[string]any{
						"name":             schema{"type": "string"},
						"description":      nullable("string"),
						"url":              schema{"type": "string"},
						"homepage":         nullable("string"),
						"topics":           schema{"type": "array", "items": schema{"type": "string"}},
						"language":         nullable("string"),
						"license":          nullable("string"),
						"stargazers_count": schema{"type": "integer"},
						"forks_count":      schema{"type": "integer"},
						"fork":             schema{"type": "boolean"},
						"readme_content":   nullable("string"),
						"created_at":       schema{"type": "string"},
						"updated_at":       schema{"type": "string"},
						"pushed_at":        schema{"type": "string"},
					},
				},
				"Error": schema{
					"title":      "Error",
					"type":       "object",
					"properties": map[string]any{"detail": schema{"type": "string"}},
				},
			},
		},
	}

	raw, err := yaml.Marshal(doc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render OpenAPI document")
	}
	return raw, nil
}
