package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/Eyevinn/mp2ts-si/internal"
	"github.com/stretchr/testify/require"
)

func renderFile(t *testing.T, o internal.Options, file string) string {
	t.Helper()
	fh, err := os.Open(file)
	require.NoError(t, err)
	defer fh.Close()
	buf := bytes.Buffer{}
	err = render(context.Background(), &buf, fh, o)
	require.NoError(t, err)
	return buf.String()
}

func TestRenderModel(t *testing.T) {
	expected, err := os.ReadFile("../../internal/si/testdata/golden_model.txt")
	require.NoError(t, err)
	got := renderFile(t, internal.Options{}, "testdata/model.yaml")
	require.Equal(t, string(expected), got, "testdata/model.yaml should render as the golden model")
}

func TestRenderCRLF(t *testing.T) {
	got := renderFile(t, internal.Options{CRLF: true}, "testdata/model.yaml")
	require.True(t, strings.HasPrefix(got, "Service\r\n=======\r\n"))
	require.NotContains(t, strings.ReplaceAll(got, "\r\n", ""), "\n")
}

func TestRenderServiceFilter(t *testing.T) {
	got := renderFile(t, internal.Options{ServiceIDs: "1"}, "testdata/model.yaml")
	require.NotContains(t, got, "Service\n")
	require.True(t, strings.HasPrefix(got, "Program\n"))
}

func TestRenderBadFixture(t *testing.T) {
	err := render(context.Background(), &bytes.Buffer{}, strings.NewReader("services: [{kind: x}]"), internal.Options{})
	require.Error(t, err)
}
