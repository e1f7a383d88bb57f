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
	"github.com/Eyevinn/mp2ts-si/internal/collect"
)

var usg = `Usage of %s:

%s demuxes a TS file and prints its service information as indented text:
services from the SDT, their events from the EIT (-events) and programs with
their elementary streams from the PAT and PMT (-programs).
`

func parseOptions() internal.Options {
	opts := internal.Options{}
	flag.StringVar(&opts.ServiceIDs, "services", "", "service IDs to show, e.g. \"28006 28007\" (default all)")
	flag.BoolVar(&opts.Events, "events", false, "show events from the EIT")
	flag.BoolVar(&opts.Programs, "programs", false, "show programs from the PAT and PMT")
	flag.IntVar(&opts.MaxTables, "max", 0, "max nr of SI tables to collect (0 = all)")
	flag.BoolVar(&opts.CRLF, "crlf", false, "end lines with CRLF")
	flag.BoolVar(&opts.Version, "version", false, "print version")

	flag.Usage = func() {
		parts := strings.Split(os.Args[0], "/")
		name := parts[len(parts)-1]
		fmt.Fprintf(os.Stderr, usg, name, name)
		fmt.Fprintf(os.Stderr, "\nRun as: %s [options] file.ts (- for stdin) with options:\n\n", name)
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

func dump(ctx context.Context, w io.Writer, f io.Reader, o internal.Options) error {
	m, err := collect.Collect(ctx, f, o.CollectOptions())
	if err != nil {
		return err
	}
	p := internal.NewPrinter(w, o)
	p.PrintModel(m)
	return p.Error()
}

func main() {
	o, inFile := internal.ParseParams(parseOptions)
	err := internal.Execute(os.Stdout, o, inFile, dump)
	if err != nil {
		log.Fatal(err)
	}
}
