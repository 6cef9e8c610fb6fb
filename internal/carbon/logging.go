package carbon

import "github.com/rs/zerolog"

// logger is disabled by default; callers that want CSV parse
// diagnostics inject one via SetLogger.
var logger = zerolog.Nop()

// SetLogger injects the logger used for bill-of-materials parsing
// diagnostics. Safe to call once at startup before any calculation.
func SetLogger(l zerolog.Logger) {
	logger = l
}
