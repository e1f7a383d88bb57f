package internal

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/Eyevinn/mp2ts-si/internal/collect"
	"github.com/Eyevinn/mp2ts-si/internal/si"
	"github.com/stretchr/testify/require"
)

func TestParseIDsFromString(t *testing.T) {
	cases := []struct {
		input string
		want  []int
	}{
		{"", nil},
		{"28006", []int{28006}},
		{"28006 28007", []int{28006, 28007}},
		{"1,2, 3", []int{1, 2, 3}},
		{"1 x 2", []int{1, 2}},
	}
	for _, c := range cases {
		require.Equal(t, c.want, ParseIDsFromString(c.input), c.input)
	}
}

func TestFilterServices(t *testing.T) {
	services := []*si.Service{{ServiceID: 1}, {ServiceID: 2}, {ServiceID: 3}}
	require.Equal(t, services, FilterServices(nil, services))
	kept := FilterServices([]int{3, 1}, services)
	require.Len(t, kept, 2)
	require.Equal(t, uint16(1), kept[0].ServiceID)
	require.Equal(t, uint16(3), kept[1].ServiceID)
	require.Empty(t, FilterServices([]int{9}, services))
}

func TestCollectOptions(t *testing.T) {
	o := Options{ServiceIDs: "5 6", Events: true, MaxTables: 10}
	require.Equal(t, collect.Options{MaxTables: 10, ServiceIDs: []int{5, 6}, Events: true}, o.CollectOptions())
}

func TestNewPrinter(t *testing.T) {
	buf := bytes.Buffer{}
	p := NewPrinter(&buf, Options{CRLF: true})
	p.PrintService(&si.Service{ServiceID: 7}, 0)
	require.NoError(t, p.Error())
	require.Contains(t, buf.String(), "ServiceID: 7\r\n")
}

func TestExecuteMissingFile(t *testing.T) {
	called := false
	err := Execute(io.Discard, Options{}, "testdata/does-not-exist.ts", func(ctx context.Context, w io.Writer, f io.Reader, o Options) error {
		called = true
		return nil
	})
	require.Error(t, err)
	require.False(t, called)
}
