package main

import (
	"flag"
	"log"
	"os"

	"github.com/go-logr/stdr"

	"github.com/zephyrtronium/calc/internal/config"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, cfgpath string
		nl, echo              bool
		verbosity             int
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.StringVar(&cfgpath, "config", "", "YAML or TOML settings file")
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print each expression before its result")
	flag.IntVar(&verbosity, "v", 0, "log verbosity")
	flag.Parse()

	logger := stdr.New(log.New(os.Stderr, "", 0)).WithName("calc")
	cfg, err := config.Load(cfgpath)
	if err != nil {
		logger.Error(err, "loading config")
		os.Exit(1)
	}
	// Flags given explicitly override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fmt":
			cfg.Format = verb
		case "n":
			cfg.Lines = nl
		case "echo":
			cfg.Echo = echo
		case "v":
			cfg.Verbosity = verbosity
		}
	})
	if err := cfg.Validate(); err != nil {
		logger.Error(err, "invalid settings")
		os.Exit(1)
	}
	stdr.SetVerbosity(cfg.Verbosity)
	logger.V(2).Info("settings", "config", cfgpath, "format", cfg.Format, "lines", cfg.Lines, "echo", cfg.Echo)

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		logger.Error(err, "opening input")
		os.Exit(1)
	}
	if f != nil {
		s, err := readExprs(f, cfg.Lines)
		f.Close()
		if err != nil {
			logger.Error(err, "reading input", "in", inname)
			os.Exit(1)
		}
		srcs = append(srcs, s...)
	}
	srcs = append(srcs, flag.Args()...)

	if failed := run(os.Stdout, logger, cfg, srcs); failed > 0 {
		logger.V(1).Info("finished with errors", "failed", failed, "total", len(srcs))
		os.Exit(1)
	}
}
