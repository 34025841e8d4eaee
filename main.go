package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/wildfunctions/weierstrass/pkg/engine"
	"github.com/wildfunctions/weierstrass/pkg/params"
	"github.com/wildfunctions/weierstrass/pkg/series"
)

const usageLine = "usage: weierstrass [flags] <a> <b> <range> <min_x> <max_x> <n> <N>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(argv []string, stdout, stderr io.Writer) int {
	defaults := engine.DefaultConfig()

	var (
		configPath string
		selector   = defaults.Selector
		seed       = defaults.Seed
		format     = defaults.Format
		convention = defaults.Convention.String()
		verbose    = defaults.Verbose
		pngPath    string
		htmlPath   string
	)

	fs := flag.NewFlagSet("weierstrass", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&configPath, "config", "", "JSON config file; flags and arguments override it")
	fs.StringVar(&selector, "selector", selector, "parameter selector ("+strings.Join(params.Names(), ", ")+")")
	fs.Int64Var(&seed, "seed", seed, "random seed (0 = random)")
	fs.StringVar(&format, "format", format, "output format (text, json)")
	fs.StringVar(&convention, "convention", convention, "point count convention (intervals = N+1 points, points = N points)")
	fs.BoolVar(&verbose, "verbose", verbose, "diagnostics and a run summary on stderr")
	fs.StringVar(&pngPath, "png", "", "write a plot image to this path (.png, .svg, .pdf)")
	fs.StringVar(&htmlPath, "html", "", "write an interactive HTML chart to this path")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usageLine)
		fmt.Fprintln(stderr, "  a, b and range accept None to draw them at random")
		fs.PrintDefaults()
	}
	if err := fs.Parse(argv); err != nil {
		return 1
	}

	cfg := defaults
	if configPath != "" {
		fc, err := engine.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		fc.Apply(&cfg)
	}

	// Only flags given on the command line override the config file.
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "selector":
			cfg.Selector = selector
		case "seed":
			cfg.Seed = seed
		case "format":
			cfg.Format = format
		case "convention":
			c, err := series.ParseConvention(convention)
			if err != nil {
				flagErr = err
				return
			}
			cfg.Convention = c
		case "verbose":
			cfg.Verbose = verbose
		case "png":
			cfg.PNG = pngPath
		case "html":
			cfg.HTML = htmlPath
		}
	})
	if flagErr != nil {
		fmt.Fprintf(stderr, "error: %v\n", flagErr)
		return 1
	}

	// Flags must precede the positional arguments.
	args := fs.Args()
	switch {
	case len(args) == 7:
		if err := applyArgs(&cfg, args); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	case len(args) == 0 && configPath != "":
		// Everything comes from the config file.
	default:
		fmt.Fprintln(stderr, usageLine)
		return 1
	}

	if cfg.Verbose {
		engine.SetLogger(log.New(stderr, "weierstrass: ", 0).Printf)
	} else {
		engine.SetLogger(nil)
	}

	e, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	report, err := e.Run()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	switch cfg.Format {
	case "json":
		if err := engine.WriteJSON(stdout, report); err != nil {
			fmt.Fprintf(stderr, "error writing JSON: %v\n", err)
			return 1
		}
	default:
		engine.WriteText(stdout, report)
	}

	if cfg.Verbose {
		engine.WriteSummary(stderr, report)
	}
	return 0
}

// applyArgs fills cfg from the positional arguments
// a, b, range, min_x, max_x, n, N.
func applyArgs(cfg *engine.Config, args []string) error {
	o, err := params.ParseOverrides(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	minX, err := params.ParseFloat("min_x", args[3])
	if err != nil {
		return err
	}
	maxX, err := params.ParseFloat("max_x", args[4])
	if err != nil {
		return err
	}
	n, err := params.ParseInt("n", args[5])
	if err != nil {
		return err
	}
	count, err := params.ParseInt("N", args[6])
	if err != nil {
		return err
	}

	// None leaves whatever the config file set.
	if o.A != nil {
		cfg.Overrides.A = o.A
	}
	if o.B != nil {
		cfg.Overrides.B = o.B
	}
	if o.Range != nil {
		cfg.Overrides.Range = o.Range
	}
	cfg.MinX = minX
	cfg.MaxX = maxX
	cfg.Order = n
	cfg.Count = count
	return nil
}
