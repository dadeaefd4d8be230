// Package obslog constructs the process-wide logger used by cmd/timon.
// The interpreter core (lang/...) never logs; logging is strictly a CLI
// concern.
package obslog

import "go.uber.org/zap"

// New builds a SugaredLogger. verbose selects zap's development config
// (human-readable, debug level); otherwise production config (JSON,
// info level) is used.
func New(verbose bool) (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
