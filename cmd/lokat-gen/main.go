package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lokapod/lokat/gen"
)

func main() {
	var (
		in      = flag.String("in", "", "input directory with locale dictionaries")
		out     = flag.String("out", "", "output directory for compiled artifacts")
		locales = flag.String("locales", "", "comma-separated locale list")
		ref     = flag.String("ref", "", "reference locale defining the canonical key order")
		goOut   = flag.String("go-out", "", "optional output directory for generated Go index constants")
		goPkg   = flag.String("go-pkg", "messages", "package name for generated Go constants")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *in == "" || *out == "" || *locales == "" || *ref == "" {
		fmt.Fprintln(os.Stderr, "usage: lokat-gen --in <dir> --out <dir> --locales <comma-list> --ref <locale>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	list := splitLocales(*locales)
	if len(list) == 0 {
		log.Error("no locales given")
		os.Exit(2)
	}

	layout, err := gen.LoadLayout(os.DirFS(*in), list)
	if err != nil {
		log.Error("loading layout", "error", err)
		os.Exit(2)
	}

	result, err := gen.Validate(layout, *ref)
	if err != nil {
		log.Error("validating layout", "error", err)
		os.Exit(2)
	}

	// Artifacts are emitted regardless of validation issues; the exit status
	// below is how a build opts into treating issues as failure.
	artifacts, err := gen.JSONEmitter{}.Emit(layout, result)
	if err != nil {
		log.Error("emitting artifacts", "error", err)
		os.Exit(2)
	}
	if err := gen.WriteArtifacts(*out, artifacts); err != nil {
		log.Error("writing artifacts", "error", err)
		os.Exit(2)
	}

	if *goOut != "" {
		goArtifacts, err := gen.GoEmitter{Package: *goPkg}.Emit(layout, result)
		if err != nil {
			log.Error("emitting Go constants", "error", err)
			os.Exit(2)
		}
		if err := gen.WriteArtifacts(*goOut, goArtifacts); err != nil {
			log.Error("writing Go constants", "error", err)
			os.Exit(2)
		}
	}

	for _, issue := range result.Issues {
		log.Warn(issue.String(), "kind", string(issue.Kind))
	}
	if len(result.Issues) > 0 {
		os.Exit(1)
	}
}

func splitLocales(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
