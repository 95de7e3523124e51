package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/listctl/internal/config"
	"github.com/rshade/listctl/internal/logging"
)

// setupLogging builds the CLI logger from cfg and the persistent flags,
// attaches it together with a trace id to the command context, and returns
// the result so the log file can be closed after the command finishes.
// --debug wins over --log-level, which wins over the config file and env.
func setupLogging(cmd *cobra.Command, cfg *config.Config, opts rootOptions) *logging.LogPathResult {
	loggingCfg := cfg.Logging.ToLoggingConfig()

	switch {
	case opts.debug:
		loggingCfg.Level = "debug"
		loggingCfg.Caller = true
	case opts.logLevel != "":
		loggingCfg.Level = opts.logLevel
	}

	result := logging.NewLoggerWithPath(loggingCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).
		Str("operation", "setup_logging").
		Str("command", cmd.CommandPath()).
		Str("level", loggingCfg.Level).
		Msg("command started")

	return &result
}

// cleanupLogging closes the log file opened by setupLogging, if any.
func cleanupLogging(result *logging.LogPathResult) {
	if result == nil {
		return
	}
	if err := result.Close(); err != nil {
		logger.Warn().Err(err).Msg("failed to close log file")
	}
}
