// Package main provides the CLI entrypoint for capnp-generator.
//
// capnp-generator is a schema codegen tool that:
//   - Scans a C++ header tree for classes/structs with data members
//   - Maps every field type onto the Cap'n Proto type vocabulary
//   - Synthesizes Optional* wrapper structs and stubs for referenced types
//   - Emits a deterministic generated.capnp schema
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/joho/godotenv"

	"capnp-generator/internal/classify"
	"capnp-generator/internal/config"
	"capnp-generator/internal/cxx"
	"capnp-generator/internal/diagnostic"
	"capnp-generator/internal/emit"
	"capnp-generator/internal/schema"
	"capnp-generator/internal/walk"
)

func main() {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("capnp-generator", flag.ExitOnError)
	fs.Usage = func() { usage(fs) }

	configPath := fs.String("config", os.Getenv("CAPNP_GENERATOR_CONFIG"), "YAML config file")
	output := fs.String("o", os.Getenv("CAPNP_GENERATOR_OUTPUT"), "output schema file (default generated.capnp)")
	debug := fs.Bool("debug", false, "dump the discovery store to stderr")
	dumpJSON := fs.String("dump-json", "", "also write the discovery store as JSON to this file")

	_ = fs.Parse(os.Args[1:])

	args := fs.Args()
	if len(args) < 1 {
		usage(fs)
		os.Exit(2)
	}

	root := args[0]
	passthrough := args[1:]

	if err := run(root, passthrough, *configPath, *output, *debug, *dumpJSON); err != nil {
		fmt.Fprintln(os.Stderr, "capnp-generator:", err)
		os.Exit(1)
	}
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage: capnp-generator [flags] <directory_of_headers> [<extra_parser_args>...]")
	fs.PrintDefaults()
}

func run(root string, passthrough []string, configPath, output string, debug bool, dumpJSON string) error {
	cfg := config.Default()

	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	if output != "" {
		cfg.Output = output
	}

	scanner := &cxx.Scanner{
		Root:        root,
		Extensions:  cfg.Extensions,
		Exclude:     cfg.Exclude,
		Passthrough: passthrough,
	}

	decls, err := scanner.Declarations()
	if err != nil {
		return err
	}

	var diags diagnostic.Diagnostics

	store := schema.NewStore()
	classifier := &classify.Classifier{Diags: &diags}
	walker := walk.New(classifier, store, &diags)

	stored := walker.Walk(decls)

	if !diags.Empty() {
		fmt.Fprint(os.Stderr, diags.Summary())
	}

	if stored == 0 {
		fmt.Println("No classes with fields found.")
		return nil
	}

	if debug {
		spew.Fdump(os.Stderr, store.Export())
	}

	if dumpJSON != "" {
		if err := store.WriteJSON(dumpJSON); err != nil {
			return err
		}
	}

	emitter := &emit.Emitter{ID: cfg.SchemaID}
	if err := emitter.WriteFile(store, cfg.Output); err != nil {
		return err
	}

	fmt.Printf("Wrote schema to %s\n", cfg.Output)

	return nil
}
