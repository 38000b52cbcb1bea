// Package log provides secure logging functionality with automatic sanitization
// of sensitive information, built on top of the standard slog package.
//
// This package extends slog to provide:
//   - Automatic sanitization of submitter network identity (IPs, user agents)
//   - Automatic sanitization of secret values (cookies, tokens, keys)
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Privacy Features
//
// The aggregation service handles reports voluntarily submitted by
// scanner users. Their network identity belongs in the report store,
// not in operational logs, so the SecureHandler masks it on the way out:
//   - Remote addresses and anything that looks like an IP literal
//   - User agent strings
//   - HTTP credentials (Authorization, Cookie, tokens, keys)
//
// Even in verbose mode these values stay masked, so debug logs can be
// shared without leaking who submitted what.
//
// # Usage
//
//	// Create a secure logger
//	logger := log.NewSecureLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Info("report accepted",
//	    "remote_addr", "203.0.113.7",  // Will be masked
//	    "total", 246,
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
