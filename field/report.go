package field

import "github.com/rs/zerolog"

// Reporter is the single channel runtime faults surface through. The host
// supplies one per group; operations signal failure by completing with a
// reported error, never by unwinding into the caller.
type Reporter interface {
	Report(err error)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(err error)

func (f ReporterFunc) Report(err error) { f(err) }

// LogReporter reports through a zerolog logger at warn level.
func LogReporter(l zerolog.Logger) Reporter {
	return ReporterFunc(func(err error) {
		l.Warn().Err(err).Msg("remote config fault")
	})
}

// nopReporter discards everything; the default until the host installs a
// real channel.
var nopReporter Reporter = LogReporter(zerolog.Nop())
