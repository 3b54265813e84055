package spatialmath

import "github.com/edaniels/golog"

// logger receives non-fatal conversion diagnostics, such as the warning
// emitted when an axis-angle magnitude exceeds 2π. It never affects the
// value returned by a conversion.
var logger = golog.Global()

// SetLogger replaces the logger used for conversion diagnostics.
func SetLogger(l golog.Logger) {
	logger = l
}
