package cli

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeseeker/pkg/cli/config"
	"github.com/secmon-lab/codeseeker/pkg/utils/errutil"
	"github.com/secmon-lab/codeseeker/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const defaultEnvFile = ".env"

// loadEnvFile exports variables of the dotenv file named by
// CODESEEKER_ENV_FILE (default .env). Variables already set in the process
// environment win. A missing default file is not an error.
func loadEnvFile() error {
	path, explicit := os.LookupEnv("CODESEEKER_ENV_FILE")
	if !explicit {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return goerr.Wrap(err, "failed to load env file", goerr.TV(errutil.FilePathKey, path))
	}
	return nil
}

func newApp() *cli.Command {
	var loggerCfg config.Logger
	var closer func()

	return &cli.Command{
		Name:  "codeseeker",
		Usage: "GitHub repository search gateway for assistant plugins",
		Flags: loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			closer = f
			if err != nil {
				return ctx, err
			}

			logging.Default().Debug("base options", "logger", loggerCfg)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdSearch(),
		},
	}
}

func Run(ctx context.Context, args []string) error {
	if err := loadEnvFile(); err != nil {
		logging.Default().Error("failed to load env file", "error", err)
		return err
	}

	if err := newApp().Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		return err
	}

	return nil
}
