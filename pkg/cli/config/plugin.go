package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeseeker/pkg/domain/model/plugin"
	"github.com/secmon-lab/codeseeker/pkg/domain/types"
	"github.com/secmon-lab/codeseeker/pkg/utils/errutil"
	"github.com/secmon-lab/codeseeker/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type Plugin struct {
	manifestPath string
	logoPath     string
	serverURL    string
	contactEmail string
	legalInfoURL string
}

// PluginAssets are the documents served next to the search API.
type PluginAssets struct {
	Manifest []byte
	Logo     []byte
	OpenAPI  []byte
}

func (x *Plugin) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "plugin-manifest",
			Usage:       "ai-plugin.json file to serve instead of the built-in manifest",
			Category:    "Plugin",
			Sources:     cli.EnvVars("CODESEEKER_PLUGIN_MANIFEST"),
			Destination: &x.manifestPath,
		},
		&cli.StringFlag{
			Name:        "plugin-logo",
			Usage:       "PNG file to serve instead of the built-in logo",
			Category:    "Plugin",
			Sources:     cli.EnvVars("CODESEEKER_PLUGIN_LOGO"),
			Destination: &x.logoPath,
		},
		&cli.StringFlag{
			Name:        "server-url",
			Usage:       "Public URL of this server, derived from the listen address when empty",
			Category:    "Plugin",
			Sources:     cli.EnvVars("CODESEEKER_SERVER_URL"),
			Destination: &x.serverURL,
		},
		&cli.StringFlag{
			Name:        "plugin-contact-email",
			Usage:       "Contact email published in the built-in manifest",
			Category:    "Plugin",
			Sources:     cli.EnvVars("CODESEEKER_PLUGIN_CONTACT_EMAIL"),
			Destination: &x.contactEmail,
		},
		&cli.StringFlag{
			Name:        "plugin-legal-info-url",
			Usage:       "Legal information URL published in the built-in manifest",
			Category:    "Plugin",
			Sources:     cli.EnvVars("CODESEEKER_PLUGIN_LEGAL_INFO_URL"),
			Destination: &x.legalInfoURL,
		},
	}
}

func (x Plugin) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("manifest", x.manifestPath),
		slog.String("logo", x.logoPath),
		slog.String("server-url", x.serverURL),
		slog.String("contact-email", x.contactEmail),
		slog.String("legal-info-url", x.legalInfoURL),
	)
}

// serverURLFromAddr turns a listen address into a URL clients can reach.
func serverURLFromAddr(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		if strings.HasPrefix(addr, ":") {
			return "http://localhost" + addr
		}
		return "http://" + addr
	}

	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s", net.JoinHostPort(host, port))
}

func readAsset(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read plugin asset", goerr.TV(errutil.FilePathKey, path))
	}
	return data, nil
}

// Configure loads configured files and renders built-in documents for the
// rest. addr is the listen address used when no server URL is set.
func (x *Plugin) Configure(addr string) (*PluginAssets, error) {
	serverURL := x.serverURL
	if serverURL == "" {
		serverURL = serverURLFromAddr(addr)
		logging.Default().Warn("Server URL is automatically set",
			"server-url", serverURL,
			"recommendation", "set --server-url when the server is reachable under another name")
	}

	assets := &PluginAssets{Logo: plugin.DefaultLogo}

	if x.manifestPath != "" {
		data, err := readAsset(x.manifestPath)
		if err != nil {
			return nil, err
		}
		if !json.Valid(data) {
			return nil, goerr.New("plugin manifest is not valid JSON", goerr.TV(errutil.FilePathKey, x.manifestPath))
		}
		assets.Manifest = data
	} else {
		data, err := json.Marshal(plugin.NewManifest(serverURL, x.contactEmail, x.legalInfoURL))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to encode plugin manifest")
		}
		assets.Manifest = data
	}

	if x.logoPath != "" {
		data, err := readAsset(x.logoPath)
		if err != nil {
			return nil, err
		}
		assets.Logo = data
	}

	openAPI, err := plugin.OpenAPI(serverURL, types.AppVersion)
	if err != nil {
		return nil, err
	}
	assets.OpenAPI = openAPI

	return assets, nil
}
