package plugin

import (
	_ "embed"
)

// DefaultLogo is served at LogoPath when no logo file is configured.
//
//go:embed asset/logo.png
var DefaultLogo []byte
