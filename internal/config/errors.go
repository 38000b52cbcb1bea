package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrInvalidProbeTimeout is returned when the probe timeout is not positive.
	// A timeout of zero or negative would cause immediate probe failures.
	ErrInvalidProbeTimeout = errors.New("invalid probe timeout: must be positive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no probing at all.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrInvalidFallbackBaseline is returned when the fallback baseline
	// is not positive. The classification threshold is derived from the
	// baseline and must stay above zero.
	ErrInvalidFallbackBaseline = errors.New("invalid fallback baseline: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidRetention is returned when the report log cap is not positive.
	ErrInvalidRetention = errors.New("invalid retention: must be positive")

	// ErrNoListenAddr is returned when the aggregation service has no
	// listen address configured.
	ErrNoListenAddr = errors.New("no listen address specified")
)
