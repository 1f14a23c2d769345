/*
Package mdast defines the document tree which is input to the HTML compiler.

The tree follows the shape of mdast (Markdown abstract syntax tree) as
produced by upstream Markdown parsers. Every node kind is a distinct Go type.
Child sets are typed: flow content is Block, phrasing content is Inline,
lists hold *ListItem, tables hold *TableRow and rows hold *TableCell.
Trees violating these constraints cannot be constructed, and Decode rejects
JSON input which would require them.

Node types which this package does not know are decoded as *Unknown. They
are legal everywhere in a tree; it is up to consumers to decide what to do
with them.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mdast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdhtml.mdast'.
func tracer() tracing.Trace {
	return tracing.Select("mdhtml.mdast")
}
