package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/internal/config"
)

// run evaluates each expression and writes its result, or its error, to w.
// It returns the number of expressions that failed.
func run(w io.Writer, log logr.Logger, cfg *config.Config, srcs []string) int {
	verb := cfg.Format + "\n"
	failed := 0
	for _, src := range srcs {
		if cfg.Echo {
			fmt.Fprintf(w, "%s : ", strings.TrimSpace(src))
		}
		r, err := calc.Evaluate(src)
		if err != nil {
			failed++
			log.V(1).Info("evaluation failed", "expr", src, "error", err.Error())
			fmt.Fprintln(w, err)
			continue
		}
		log.V(1).Info("evaluated", "expr", src, "result", r)
		fmt.Fprintf(w, verb, r)
	}
	return failed
}

// readExprs reads expressions from r. If lines is true, each non-blank line is
// one expression. Otherwise the whole input is one expression, or none if it
// is blank.
func readExprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(err, "read input")
		}
		if strings.TrimSpace(string(b)) == "" {
			return nil, nil
		}
		return []string{string(b)}, nil
	}
	var srcs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		srcs = append(srcs, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read input lines")
	}
	return srcs, nil
}

// infile opens the named input. "-" means stdin, as does "" when std is true.
// The result is nil if there is no input to read.
func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
