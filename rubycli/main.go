package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	rubytext "github.com/Akemisora/unity-ruby-text"
	"github.com/Akemisora/unity-ruby-text/metrics"
)

// tracer traces with key 'rubytext'
func tracer() tracing.Trace {
	return tracing.Select("rubytext")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.rubytext":  "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	scale := flag.Float64("scale", 0.5, "Gloss size as a fraction of the base size")
	voffset := flag.Float64("voffset", 1, "Vertical gloss offset in em")
	strip := flag.Bool("strip", false, "Strip markup instead of decorating it")
	hide := flag.Bool("hide", false, "Hide glosses, keeping base text only")
	meter := flag.String("measure", "eastasian", "Width source [eastasian|terminal|fixed]")
	flag.Parse()
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}

	measure, err := measureFor(*meter)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	opts := rubytext.DefaultOptions()
	opts.GlossScale = *scale
	opts.VerticalOffset = *voffset
	opts.Enabled = !*hide

	// non-interactive: transform the arguments and exit
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			pterm.Println(render(arg, opts, measure, *strip))
		}
		return
	}

	// set up REPL
	pterm.Info.Println("Ruby text transformer") // colored welcome message
	pterm.Info.Println("Quit with <ctrl>D")
	repl, err := readline.New("ruby > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pterm.Println(render(line, opts, measure, *strip))
	}
}

func render(input string, opts rubytext.Options, measure rubytext.Measure, strip bool) string {
	if strip {
		return rubytext.Strip(input)
	}
	return rubytext.Transform(input, opts, measure)
}

func measureFor(name string) (rubytext.Measure, error) {
	switch name {
	case "eastasian":
		return metrics.EastAsian(), nil
	case "terminal":
		return metrics.Terminal(), nil
	case "fixed":
		return metrics.Fixed(1), nil
	}
	return nil, fmt.Errorf("unknown measure %q", name)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
