// Package logging builds the diagnostic logger shared by the text tools.
package logging

import (
	"go.uber.org/zap"
)

// Setup returns the logger for one tool run. With debug set it is a
// development logger on stderr; otherwise it discards everything so the
// tool's own output and diagnostics stay clean.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop(), err
	}
	return logger, nil
}
