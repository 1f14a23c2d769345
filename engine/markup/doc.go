/*
Package markup serializes HTML elements.

It offers three services to the compiler: an Encoder for text and attribute
values, NormalizeURI for link targets, and a Builder which creates start and
end tags with ordered attributes. Element names are taken from package
golang.org/x/net/html/atom.

A Builder honours rendering hints a node carries in its mdast.Data: the
element name may be replaced, attributes may be added or overwritten and the
content may be replaced.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdhtml.markup'.
func tracer() tracing.Trace {
	return tracing.Select("mdhtml.markup")
}
