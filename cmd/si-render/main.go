package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/Eyevinn/mp2ts-si/internal"
	"github.com/Eyevinn/mp2ts-si/internal/fixture"
)

var usg = `Usage of %s:

%s prints a service information model described in YAML as indented text.
All services, events and programs of the model are printed unless -services
restricts the services.
`

func parseOptions() internal.Options {
	opts := internal.Options{}
	flag.StringVar(&opts.ServiceIDs, "services", "", "service IDs to show, e.g. \"28006 28007\" (default all)")
	flag.BoolVar(&opts.CRLF, "crlf", false, "end lines with CRLF")
	flag.BoolVar(&opts.Version, "version", false, "print version")

	flag.Usage = func() {
		parts := strings.Split(os.Args[0], "/")
		name := parts[len(parts)-1]
		fmt.Fprintf(os.Stderr, usg, name, name)
		fmt.Fprintf(os.Stderr, "\nRun as: %s [options] model.yaml (- for stdin) with options:\n\n", name)
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

func render(ctx context.Context, w io.Writer, f io.Reader, o internal.Options) error {
	m, err := fixture.Load(f)
	if err != nil {
		return err
	}
	m.Services = internal.FilterServices(internal.ParseIDsFromString(o.ServiceIDs), m.Services)
	p := internal.NewPrinter(w, o)
	p.PrintModel(m)
	return p.Error()
}

func main() {
	o, inFile := internal.ParseParams(parseOptions)
	err := internal.Execute(os.Stdout, o, inFile, render)
	if err != nil {
		log.Fatal(err)
	}
}
