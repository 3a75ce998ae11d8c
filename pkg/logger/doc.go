// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers that keep key names consistent.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format and attaches any static attributes. Environment presets
// (WithDevelopment, WithProduction, WithEnvironment) set level, format and the
// "service"/"env" attributes in one call.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "formcheck"),
//	    logger.WithLevelName(cfg.LogLevel),
//	)
//	log.Info("form submitted",
//	    logger.Accepted(false),
//	    logger.Outcome("email", false, "Please enter a valid email address"),
//	    logger.Failed([]string{"email"}),
//	)
//
// # Error Handling
//
// Error and Errors return an empty attribute for nil errors, which slog
// drops, so they can be passed unconditionally.
package logger
