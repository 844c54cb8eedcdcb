// Package logging configures hclog for the generator.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// NewLogger creates an hclog logger with the generator's standard
// settings: UTC ISO timestamps, JSON format when VKFORMATGEN_JSON_LOG=1,
// and a line prefix on human-readable output.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := os.Getenv("VKFORMATGEN_JSON_LOG") == "1"
	if !jsonFormat {
		output = NewPrefixWriter("🧩 ", output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// ResolveLevel picks the log level with flag > environment > default
// precedence.
func ResolveLevel(cliLevel string) string {
	if cliLevel != "" {
		return cliLevel
	}
	if env := os.Getenv("VKFORMATGEN_LOG_LEVEL"); env != "" {
		return env
	}
	return "warn"
}
