/*
Package whitespace has the whitespace utilities used during compilation:
tab expansion, trimming and collapsing of whitespace runs.

Tab expansion counts columns in grapheme clusters, not in bytes or runes,
so that combining sequences do not shift tab stops.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package whitespace
