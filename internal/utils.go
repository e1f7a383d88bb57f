package internal

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/Eyevinn/mp2ts-si/internal/collect"
	"github.com/Eyevinn/mp2ts-si/internal/si"
	slices "golang.org/x/exp/slices"
)

type Options struct {
	Version    bool
	CRLF       bool
	ServiceIDs string
	Events     bool
	Programs   bool
	MaxTables  int
}

type OptionParseFunc func() Options
type RunableFunc func(ctx context.Context, w io.Writer, f io.Reader, o Options) error

// NewPrinter returns a printer with the default tables and the line ending
// selected by o.
func NewPrinter(w io.Writer, o Options) *si.TextPrinter {
	p := &si.TextPrinter{W: w}
	if o.CRLF {
		p.LineEnding = si.CRLF
	}
	return p
}

// CollectOptions translates the command line options to collector options.
func (o Options) CollectOptions() collect.Options {
	return collect.Options{
		MaxTables:  o.MaxTables,
		ServiceIDs: ParseIDsFromString(o.ServiceIDs),
		Events:     o.Events,
		Programs:   o.Programs,
	}
}

// FilterServices keeps the services whose ID is in ids. Empty ids keeps all.
func FilterServices(ids []int, services []*si.Service) []*si.Service {
	if len(ids) == 0 {
		return services
	}
	kept := []*si.Service{}
	for _, s := range services {
		if slices.Contains(ids, int(s.ServiceID)) {
			kept = append(kept, s)
		}
	}
	return kept
}

// ParseIDsFromString parses a whitespace or comma separated list of IDs.
// Words that are not numbers are skipped.
func ParseIDsFromString(input string) []int {
	words := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	var ids []int
	for _, word := range words {
		number, err := strconv.Atoi(word)
		if err != nil {
			continue
		}
		ids = append(ids, number)
	}
	return ids
}

func ParseParams(function OptionParseFunc) (o Options, inFile string) {
	o = function()
	if o.Version {
		parts := strings.Split(os.Args[0], "/")
		fmt.Printf("%s version %s\n", parts[len(parts)-1], GetVersion())
		os.Exit(0)
	}
	if len(flag.Args()) < 1 {
		flag.Usage()
		os.Exit(1)
	}
	inFile = flag.Args()[0]
	return o, inFile
}

func Execute(w io.Writer, o Options, inFile string, function RunableFunc) error {
	// Create a cancellable context in case you want to stop reading packets/data any time you want
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// Handle SIGINT signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT)
	defer signal.Stop(ch)
	go func() {
		select {
		case <-ch:
			cancel()
		case <-ctx.Done():
		}
	}()

	var f io.Reader
	if inFile == "-" {
		f = os.Stdin
	} else {
		fh, err := os.Open(inFile)
		if err != nil {
			return fmt.Errorf("opening input %w", err)
		}
		f = fh
		defer fh.Close()
	}

	return function(ctx, w, f, o)
}
