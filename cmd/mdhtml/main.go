/*
Command mdhtml compiles mdast document trees, given as JSON, into HTML.

	mdhtml [--sanitize] [--entities=escape|numbers] [--max-depth=N] [--trace=Info] [-o out.html] [tree.json|tree.json.xz|-]
	mdhtml repl

Trees may be xz-compressed, recognized by the file extension ".xz".
Sub-command "repl" reads one tree per line and prints the HTML for it.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/npillmayer/mdhtml/core"
	"github.com/npillmayer/mdhtml/core/parameters"
	"github.com/npillmayer/mdhtml/engine/compile"
	"github.com/npillmayer/mdhtml/input/mdast"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/ulikunitz/xz"
)

// tracer traces with key 'mdhtml.cli'
func tracer() tracing.Trace {
	return tracing.Select("mdhtml.cli")
}

// CLI is the command line interface, parsed by kong.
var CLI struct {
	Trace    string `name:"trace" default:"Error" help:"Trace level [Debug|Info|Error]"`
	Sanitize bool   `name:"sanitize" help:"Escape literal HTML instead of passing it through"`
	Entities string `name:"entities" default:"escape" enum:"escape,numbers" help:"Character references: escape or numbers"`
	MaxDepth int    `name:"max-depth" default:"0" help:"Maximum nesting depth of trees, 0 for no limit"`

	Compile CompileCmd `cmd:"" default:"withargs" help:"Compile a tree to HTML"`
	Repl    ReplCmd    `cmd:"" help:"Compile trees interactively, one JSON tree per line"`
}

var tracingKeys = []string{"mdhtml.cli", "mdhtml.compile", "mdhtml.markup", "mdhtml.mdast", "mdhtml.config"}

func main() {
	initDisplay()
	ctx := kong.Parse(&CLI,
		kong.Name("mdhtml"),
		kong.Description("Compile mdast document trees to HTML"),
		kong.UsageOnError(),
	)

	// set up logging and parameters
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := configuration()
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		pterm.Error.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("Trace level is %s", CLI.Trace)
	//
	params, err := parameters.FromConfiguration(conf)
	if err != nil {
		exit(err)
	}
	compiler, err := compile.New(compile.WithParameters(params))
	if err != nil {
		exit(err)
	}
	if err = ctx.Run(compiler); err != nil {
		exit(err)
	}
}

// configuration collects tracing levels and compile parameters from the
// command line flags.
func configuration() testconfig.Conf {
	conf := testconfig.Conf{
		"tracing.adapter":           "go",
		parameters.P_SANITIZE.Key(): strconv.FormatBool(CLI.Sanitize),
		parameters.P_ENTITIES.Key(): CLI.Entities,
		parameters.P_MAXDEPTH.Key(): strconv.Itoa(CLI.MaxDepth),
	}
	for _, key := range tracingKeys {
		conf["trace."+key] = CLI.Trace
	}
	return conf
}

// We use pterm for moderately fancy output. Messages go to stderr, as
// stdout may carry the HTML.
func initDisplay() {
	pterm.SetDefaultOutput(os.Stderr)
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func exit(err error) {
	tracer().Errorf("%v", err)
	pterm.Error.Println(core.UserMessage(err))
	os.Exit(2)
}

// --- Commands --------------------------------------------------------------

// CompileCmd compiles a single tree.
type CompileCmd struct {
	Output string `name:"output" short:"o" type:"path" help:"Output file (default: stdout)"`
	Input  string `arg:"" optional:"" default:"-" help:"mdast JSON tree, may be xz-compressed; '-' reads stdin"`
}

// Run reads, decodes and compiles the input tree. Nothing is written if
// any of these steps fails.
func (cmd *CompileCmd) Run(c *compile.Compiler) error {
	in, err := openInput(cmd.Input)
	if err != nil {
		return err
	}
	defer in.Close()
	root, err := mdast.Decode(in)
	if err != nil {
		return err
	}
	html, err := c.Compile(root)
	if err != nil {
		return err
	}
	if cmd.Output == "" {
		_, err = io.WriteString(os.Stdout, html)
	} else {
		err = os.WriteFile(cmd.Output, []byte(html), 0o644)
	}
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write output")
	}
	pterm.Info.Printfln("%s of HTML written", humanize.Bytes(uint64(len(html))))
	return nil
}

// ReplCmd compiles trees entered line by line.
type ReplCmd struct{}

// Run starts interactive mode. Errors are reported and do not end it.
func (cmd *ReplCmd) Run(c *compile.Compiler) error {
	repl, err := readline.New("mdhtml > ")
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot start interactive mode")
	}
	defer repl.Close()
	pterm.Info.Println("Enter one JSON tree per line, quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		html, err := compileLine(c, line)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		fmt.Fprint(repl.Stdout(), html)
	}
	pterm.Info.Println("Good bye!")
	return nil
}

func compileLine(c *compile.Compiler, line string) (string, error) {
	root, err := mdast.Unmarshal([]byte(line))
	if err != nil {
		return "", err
	}
	return c.Compile(root)
}

// --- Input -----------------------------------------------------------------

type readCloser struct {
	io.Reader
	io.Closer
}

// openInput opens a tree file, or stdin for "-". Files ending in ".xz" are
// decompressed.
func openInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open %s", name)
	}
	if fi, err := f.Stat(); err == nil {
		tracer().Infof("reading %s (%s)", name, humanize.Bytes(uint64(fi.Size())))
	}
	if !strings.HasSuffix(name, ".xz") {
		return f, nil
	}
	xr, err := xz.NewReader(f)
	if err != nil {
		f.Close()
		return nil, core.WrapError(err, core.EINVALID, "%s is not xz-compressed", name)
	}
	return readCloser{Reader: xr, Closer: f}, nil
}
