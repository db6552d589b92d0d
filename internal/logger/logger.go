// Package logger provides a configured zerolog logger.
package logger

import (
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

// New returns a zerolog.Logger for the named component. Output goes to
// stderr so it never interleaves with command output, and the default
// level is warn to keep interactive sessions quiet; CAMPUSPLAN_LOG
// overrides it (debug, info, warn, error).
func New(component string) zerolog.Logger {
	zerolog.ErrorStackMarshaler = func(err error) interface{} {
		type stackTracer interface{ StackTrace() pkgerrors.StackTrace }
		if _, ok := err.(stackTracer); !ok {
			err = pkgerrors.WithStack(err)
		}
		return zpkgerrors.MarshalStack(err)
	}

	level := zerolog.WarnLevel
	if v, ok := os.LookupEnv("CAMPUSPLAN_LOG"); ok {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(v))); err == nil {
			level = parsed
		}
	}

	return zerolog.New(os.Stderr).Level(level).With().
		Str("component", component).
		Timestamp().
		Logger()
}
