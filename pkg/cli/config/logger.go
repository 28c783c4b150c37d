package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeseeker/pkg/utils/errutil"
	"github.com/secmon-lab/codeseeker/pkg/utils/logging"
	"github.com/secmon-lab/codeseeker/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

type Logger struct {
	level      string
	format     string
	output     string
	quiet      bool
	stacktrace bool
}

func (x *Logger) Flags() []cli.Flag {
	const category = "logging"
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Category:    category,
			Aliases:     []string{"l"},
			Sources:     cli.EnvVars("CODESEEKER_LOG_LEVEL"),
			Usage:       "Log level [debug|info|warn|error]",
			Value:       "info",
			Destination: &x.level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Category:    category,
			Aliases:     []string{"f"},
			Sources:     cli.EnvVars("CODESEEKER_LOG_FORMAT"),
			Usage:       "Log format [console|json], detected from TERM when empty",
			Value:       "console",
			Destination: &x.format,
		},
		&cli.StringFlag{
			Name:        "log-output",
			Category:    category,
			Aliases:     []string{"o"},
			Sources:     cli.EnvVars("CODESEEKER_LOG_OUTPUT"),
			Usage:       "Log destination: stdout, stderr, '-' or a file path to append to",
			Value:       "stderr",
			Destination: &x.output,
		},
		&cli.BoolFlag{
			Name:        "log-quiet",
			Category:    category,
			Aliases:     []string{"q"},
			Sources:     cli.EnvVars("CODESEEKER_LOG_QUIET"),
			Usage:       "Discard all log output",
			Destination: &x.quiet,
		},
		&cli.BoolFlag{
			Name:        "log-stacktrace",
			Category:    category,
			Aliases:     []string{"s"},
			Sources:     cli.EnvVars("CODESEEKER_LOG_STACKTRACE"),
			Usage:       "Print goerr stacktraces (console format only)",
			Value:       true,
			Destination: &x.stacktrace,
		},
	}
}

func (x Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", x.level),
		slog.String("format", x.format),
		slog.String("output", x.output),
		slog.Bool("stacktrace", x.stacktrace),
	)
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func (x *Logger) logFormat() (logging.Format, error) {
	switch x.format {
	case "console":
		return logging.FormatConsole, nil
	case "json":
		return logging.FormatJSON, nil
	case "":
		term := os.Getenv("TERM")
		if strings.Contains(term, "color") || strings.Contains(term, "xterm") {
			return logging.FormatConsole, nil
		}
		return logging.FormatJSON, nil
	}
	return 0, goerr.New("invalid log format", goerr.V("format", x.format))
}

// openOutput returns the writer for logs and a closer that is never nil.
func (x *Logger) openOutput() (io.Writer, func(), error) {
	switch x.output {
	case "stdout", "-":
		return os.Stdout, func() {}, nil
	case "stderr", "":
		return os.Stderr, func() {}, nil
	}

	f, err := os.OpenFile(filepath.Clean(x.output), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, func() {}, goerr.Wrap(err, "failed to open log file", goerr.TV(errutil.FilePathKey, x.output))
	}
	return f, func() { safe.Close(context.Background(), f) }, nil
}

// Configure installs the default logger. The returned closer is safe to call
// even when err is not nil.
func (x *Logger) Configure() (func(), error) {
	if x.quiet {
		logging.Quiet()
		return func() {}, nil
	}

	format, err := x.logFormat()
	if err != nil {
		return func() {}, err
	}

	level, ok := logLevels[strings.ToLower(x.level)]
	if !ok {
		return func() {}, goerr.New("invalid log level", goerr.V("level", x.level))
	}

	output, closer, err := x.openOutput()
	if err != nil {
		return closer, err
	}

	logging.SetDefault(logging.New(output, level, format, x.stacktrace))
	return closer, nil
}
