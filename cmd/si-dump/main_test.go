package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/Eyevinn/mp2ts-si/internal"
	"github.com/stretchr/testify/require"
)

func TestDumpNoTransportStream(t *testing.T) {
	buf := bytes.Buffer{}
	err := dump(context.Background(), &buf, bytes.NewReader(make([]byte, 100)), internal.Options{Events: true})
	require.Error(t, err)
	require.Empty(t, buf.String())
}
