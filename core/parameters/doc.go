package parameters

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdhtml.config'.
func tracer() tracing.Trace {
	return tracing.Select("mdhtml.config")
}
