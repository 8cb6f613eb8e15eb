package unittest

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var verbose = flag.Bool("vv", false, "emit pipeline debug logs during tests")

// LogVerbose enables debug output programmatically, for tests that want the
// pipeline logs regardless of the -vv flag.
func LogVerbose() {
	*verbose = true
}

// Logger returns a test logger that stays silent unless the -vv flag is set,
// so assertion failures are not drowned in pipeline output.
func Logger() zerolog.Logger {
	writer := io.Discard
	if *verbose {
		writer = os.Stderr
	}
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	return zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
