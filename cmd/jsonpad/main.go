package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/jsonpad/jsonpad"
	"github.com/jsonpad/jsonpad/pkg/log"
	"github.com/jsonpad/jsonpad/pkg/version"
)

type options struct {
	OutputFormat *string `short:"f" long:"format" description:"output format" choice:"json" choice:"json-pretty" choice:"yaml" choice:"toml" choice:"properties"`
	Indent       int     `short:"i" long:"indent" description:"indent width for pretty output" default:"2"`
	Minify       bool    `short:"m" long:"minify" description:"minify instead of pretty-printing"`
	Check        bool    `short:"c" long:"check" description:"validate only; exit nonzero on invalid input"`
	PathAt       *int    `short:"p" long:"path-at" description:"print the JSON path at this character offset"`
	Query        *string `short:"q" long:"query" description:"search the document and print matching paths"`
	Repair       bool    `short:"R" long:"repair" description:"repair malformed input before processing"`
	Diff         *string `short:"d" long:"diff" description:"print a unified diff of the input against this file"`
	Verbose      bool    `short:"v" long:"verbose" description:"enable verbose logging"`
	Version      bool    `short:"V" long:"version" description:"print version and exit"`

	Positional struct {
		InputPath *flags.Filename `positional-arg-name:"inputPath" required:"0" description:"input file path (stdin if omitted)"`
	} `positional-args:"yes"`
}

func main() {
	opts := &options{}

	fp := flags.NewParser(opts, flags.Default)
	fp.LongDescription = `
jsonpad validates, formats, searches, and repairs JSON documents.

Related tools:
* jsonpad-mcp`

	_, err := fp.Parse()
	if err != nil {
		os.Exit(1)
	}

	version.PrintVersion(opts.Version)

	if opts.Verbose {
		log.Debug = true
	}

	text, name, err := readInput(opts)
	if err != nil {
		fatal(err)
	}

	if opts.Repair {
		text, err = jsonpad.Repair(text, nil)
		if err != nil {
			fatal(err)
		}
	}

	switch {
	case opts.Check:
		check(text)

	case opts.PathAt != nil:
		fmt.Println(jsonpad.PathAtOffset(text, *opts.PathAt))

	case opts.Query != nil:
		query(text, *opts.Query)

	case opts.Diff != nil:
		diff(text, name, *opts.Diff)

	case opts.OutputFormat != nil:
		export(text, *opts.OutputFormat)

	case opts.Minify:
		out, err := jsonpad.MinifyText(text)
		if err != nil {
			fatal(err)
		}
		fmt.Println(out)

	default:
		out, err := jsonpad.FormatText(text, opts.Indent)
		if err != nil {
			fatal(err)
		}
		fmt.Println(out)
	}
}

func readInput(opts *options) (string, string, error) {
	if opts.Positional.InputPath == nil {
		blob, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(blob), "stdin", nil
	}

	path := string(*opts.Positional.InputPath)

	blob, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}

	return string(blob), path, nil
}

func check(text string) {
	_, err := jsonpad.Parse(text)
	if err != nil {
		fatal(err)
	}

	log.Debugf("input is valid JSON")
}

func query(text, term string) {
	v, err := jsonpad.Parse(text)
	if err != nil {
		fatal(err)
	}

	for _, match := range jsonpad.Search(v, term) {
		path := match.Path.String()
		if path == "" {
			path = "."
		}

		fmt.Printf("%s\t%s\n", path, match.Type)
	}
}

func diff(text, name, otherPath string) {
	blob, err := os.ReadFile(otherPath)
	if err != nil {
		fatal(err)
	}

	out, err := jsonpad.Diff(name, text, otherPath, string(blob))
	if err != nil {
		fatal(err)
	}

	fmt.Print(out)
}

func export(text, format string) {
	out, err := jsonpad.ExportText(text, format)
	if err != nil {
		fatal(err)
	}

	_, err = os.Stdout.Write(out)
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
