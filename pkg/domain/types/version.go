package types

// AppVersion is published in the OpenAPI document.
const AppVersion = "0.1.0"
