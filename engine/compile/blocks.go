package compile

import (
	"strings"

	"github.com/npillmayer/mdhtml/core"
	"github.com/npillmayer/mdhtml/engine/markup"
	"github.com/npillmayer/mdhtml/engine/text/whitespace"
	"github.com/npillmayer/mdhtml/input/mdast"
	"golang.org/x/net/html/atom"
)

// compilerFunc compiles a node of a known kind.
type compilerFunc func(ctx *Context, n mdast.Node, parent mdast.Node) (string, error)

// compilers is the dispatch table. Kinds without an entry are an error.
var compilers map[mdast.Kind]compilerFunc

func init() {
	compilers = map[mdast.Kind]compilerFunc{
		mdast.KindRoot:               compileRoot,
		mdast.KindParagraph:          compileParagraph,
		mdast.KindHeading:            compileHeading,
		mdast.KindBlockquote:         compileBlockquote,
		mdast.KindList:               compileList,
		mdast.KindListItem:           compileListItem,
		mdast.KindCode:               compileCode,
		mdast.KindTable:              compileTable,
		mdast.KindTableRow:           compileTableRow,
		mdast.KindTableCell:          compileTableCell,
		mdast.KindHTML:               compileHTML,
		mdast.KindThematicBreak:      compileThematicBreak,
		mdast.KindText:               compileText,
		mdast.KindEscape:             compileEscape,
		mdast.KindStrong:             compilePhrase(atom.Strong),
		mdast.KindEmphasis:           compilePhrase(atom.Em),
		mdast.KindDelete:             compilePhrase(atom.Del),
		mdast.KindInlineCode:         compileInlineCode,
		mdast.KindBreak:              compileBreak,
		mdast.KindLink:               compileLink,
		mdast.KindImage:              compileImage,
		mdast.KindFootnote:           compileFootnote,
		mdast.KindFootnoteReference:  compileFootnoteReference,
		mdast.KindLinkReference:      compileLinkReference,
		mdast.KindImageReference:     compileImageReference,
		mdast.KindDefinition:         ignore,
		mdast.KindFootnoteDefinition: ignore,
		mdast.KindYAML:               ignore,
	}
}

// ignore compiles nodes which have been consumed before rendering.
func ignore(*Context, mdast.Node, mdast.Node) (string, error) {
	return "", nil
}

func compileRoot(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	root := n.(*mdast.Root)
	if err := ctx.scanDefinitions(root); err != nil {
		return "", err
	}
	tracer().Debugf("root: %d definitions, %d footnote definitions",
		len(ctx.definitions), len(ctx.footnotes.records))
	values, err := ctx.all(root)
	if err != nil {
		return "", err
	}
	out := strings.Join(values, "\n")
	if out != "" {
		out += "\n"
	}
	section, err := ctx.footnoteSection()
	if err != nil {
		return "", err
	}
	return out + section, nil
}

func compileParagraph(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	content, err := ctx.All(n, "")
	if err != nil {
		return "", err
	}
	content = whitespace.Trim(whitespace.CollapseSpaces(whitespace.Detab(content, whitespace.TabWidth)))
	return ctx.markup.Element(n, atom.P, nil, content, false), nil
}

var headings = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

func compileHeading(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	h := n.(*mdast.Heading)
	content, err := ctx.All(h, "")
	if err != nil {
		return "", err
	}
	depth := h.Depth
	if depth < 1 {
		depth = 1
	} else if depth > len(headings) {
		depth = len(headings)
	}
	return ctx.markup.Element(h, headings[depth-1], nil, content, false), nil
}

func compileBlockquote(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	content, err := ctx.All(n, "\n")
	if err != nil {
		return "", err
	}
	return ctx.markup.Element(n, atom.Blockquote, nil, content, true), nil
}

func compileList(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	list := n.(*mdast.List)
	content, err := ctx.All(list, "\n")
	if err != nil {
		return "", err
	}
	if !list.Ordered {
		return ctx.markup.Element(list, atom.Ul, nil, content, true), nil
	}
	var attrs []markup.Attr
	if list.Start != nil && *list.Start != 1 {
		attrs = append(attrs, markup.A("start", *list.Start))
	}
	return ctx.markup.Element(list, atom.Ol, attrs, content, true), nil
}

// compileListItem renders the content of an item of a tight list without
// its wrapping paragraph, if the item consists of a single paragraph (or
// other container of inline content).
func compileListItem(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	item := n.(*mdast.ListItem)
	loose := true
	if list, ok := parent.(*mdast.List); ok {
		loose = list.Loose
	}
	var checkbox string
	if item.Checked != nil {
		checkbox = ctx.markup.Void(nil, atom.Input, []markup.Attr{
			markup.A("type", "checkbox"),
			markup.A("checked", *item.Checked),
			markup.A("disabled", true),
		})
	}
	if !loose && len(item.Children) == 1 {
		single := item.Children[0]
		if children := mdast.Children(single); len(children) > 0 {
			values, err := ctx.allOf(single, children)
			if err != nil {
				return "", err
			}
			content := strings.Join(values, "")
			if checkbox != "" {
				content = checkbox + " " + content
			}
			return ctx.markup.Element(item, atom.Li, nil, content, false), nil
		}
	}
	values, err := ctx.all(item)
	if err != nil {
		return "", err
	}
	if checkbox != "" {
		values = append([]string{checkbox}, values...)
	}
	return ctx.markup.Element(item, atom.Li, nil, strings.Join(values, "\n"), true), nil
}

func compileCode(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	code := n.(*mdast.Code)
	var value string
	if code.Value != "" {
		value = whitespace.Detab(strings.TrimRight(code.Value, "\n"), whitespace.TabWidth) + "\n"
	}
	var attrs []markup.Attr
	if lang := strings.Fields(code.Lang); len(lang) > 0 {
		attrs = append(attrs, markup.A("class", "language-"+lang[0]))
	}
	inner := ctx.markup.Element(nil, atom.Code, attrs, ctx.encode(value), false)
	return ctx.markup.Element(code, atom.Pre, nil, inner, false), nil
}

// compileTable renders the first row as the table header and all other
// rows as the table body. Every cell of column i is aligned by align[i].
// Rows shorter than the table are filled with empty cells.
func compileTable(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	table := n.(*mdast.Table)
	columns := len(table.Align)
	for _, row := range table.Children {
		if row == nil {
			return "", core.Error(core.EINVALID, "nil row in table")
		}
		if len(row.Children) > columns {
			columns = len(row.Children)
		}
	}
	rows := make([]string, len(table.Children))
	for i, row := range table.Children {
		cellTag := atom.Td
		if i == 0 {
			cellTag = atom.Th
		}
		r, err := ctx.tableRow(table, row, cellTag, columns)
		if err != nil {
			return "", err
		}
		rows[i] = r
	}
	var head, body string
	if len(rows) > 0 {
		head, body = rows[0], strings.Join(rows[1:], "\n")
	}
	content := ctx.markup.Element(nil, atom.Thead, nil, head, true) + "\n" +
		ctx.markup.Element(nil, atom.Tbody, nil, body, true)
	return ctx.markup.Element(table, atom.Table, nil, content, true), nil
}

func (ctx *Context) tableRow(table *mdast.Table, row *mdast.TableRow, cellTag atom.Atom, columns int) (string, error) {
	cells := make([]string, columns)
	for i := 0; i < columns; i++ {
		var align mdast.Align
		if table != nil && i < len(table.Align) {
			align = table.Align[i]
		}
		attrs := []markup.Attr{markup.A("align", align.String())}
		if i >= len(row.Children) {
			cells[i] = ctx.markup.Element(nil, cellTag, attrs, "", false)
			continue
		}
		cell := row.Children[i]
		if cell == nil {
			return "", core.Error(core.EINVALID, "nil cell in table row")
		}
		content, err := ctx.All(cell, "")
		if err != nil {
			return "", err
		}
		cells[i] = ctx.markup.Element(cell, cellTag, attrs, content, false)
	}
	return ctx.markup.Element(row, atom.Tr, nil, strings.Join(cells, "\n"), true), nil
}

// compileTableRow renders a row outside of a table, with data cells and
// without alignment.
func compileTableRow(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	row := n.(*mdast.TableRow)
	table, _ := parent.(*mdast.Table)
	return ctx.tableRow(table, row, atom.Td, len(row.Children))
}

func compileTableCell(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	content, err := ctx.All(n, "")
	if err != nil {
		return "", err
	}
	return ctx.markup.Element(n, atom.Td, nil, content, false), nil
}

// compileHTML passes literal HTML through, or escapes it when sanitizing.
func compileHTML(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	h := n.(*mdast.HTML)
	if ctx.sanitize {
		return ctx.encode(h.Value), nil
	}
	return h.Value, nil
}

func compileThematicBreak(ctx *Context, n mdast.Node, parent mdast.Node) (string, error) {
	return ctx.markup.Void(n, atom.Hr, nil), nil
}
