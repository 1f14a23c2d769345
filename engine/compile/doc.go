/*
Package compile compiles a document tree (see package mdast) into HTML.

Compilation is a single depth-first pass over the tree, preceded by a scan
which collects link definitions and footnote definitions from anywhere in the
document. References may therefore point to definitions further down.
Footnotes written inline are numbered on first encounter, using the smallest
positive number not yet taken by any other footnote, and are rendered
together with the defined footnotes in a section at the end of the output.
Footnote definitions sharing an identifier make up a single footnote, with
the content of the last definition at the place of the first one. Handlers
calling Context.Footnotes will therefore see one record per identifier.

All state of a compilation lives in a Context, which is created for a single
call to Compile and dropped afterwards. A Compiler may thus be shared between
goroutines.

A node type without a compiler aborts compilation with a
*core.UnsupportedNodeError. Clients may add compilers for node types which
package mdast does not model (decoded as *mdast.Unknown) with WithHandler.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdhtml.compile'.
func tracer() tracing.Trace {
	return tracing.Select("mdhtml.compile")
}
