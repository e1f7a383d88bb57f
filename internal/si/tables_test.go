package si

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupTables(t *testing.T) {
	tbl := DefaultTables()

	require.Equal(t, "digital television service", tbl.ServiceType(0x01))
	require.Equal(t, Unknown, tbl.ServiceType(0xfe))

	require.Equal(t, "audio, stereo (2 channel)", tbl.ComponentType(0x02, 0x03))
	require.Equal(t, Unknown, tbl.ComponentType(0x03, 0x03+0x40))
	require.Equal(t, Unknown, tbl.ComponentType(0x0f, 0x01))

	require.Equal(t, "football/soccer", tbl.ContentType(0x4, 0x3))
	require.Equal(t, Unknown, tbl.ContentType(0xf, 0xf))

	require.Equal(t, "ITU-T Rec. H.264 | ISO/IEC 14496-10 Video", tbl.StreamType(0x1b))
	require.Equal(t, "Reserved", tbl.StreamType(0x7f))
	require.Equal(t, "User Private", tbl.StreamType(0xc0))
}

// Resolution is total: every pair gives a non-empty description.
func TestLookupTablesTotal(t *testing.T) {
	tbl := DefaultTables()
	for a := 0; a < 16; a++ {
		for b := 0; b < 16; b++ {
			require.NotEmpty(t, tbl.ContentType(uint8(a), uint8(b)))
		}
	}
	for v := 0; v < 256; v++ {
		require.NotEmpty(t, tbl.ServiceType(uint8(v)))
		require.NotEmpty(t, tbl.ComponentType(uint8(v), uint8(v)))
		require.NotEmpty(t, tbl.StreamType(uint8(v)))
	}
}

func TestDefaultTablesAreIndependent(t *testing.T) {
	a := DefaultTables()
	a.ServiceTypes[0].Description = "changed"
	require.Equal(t, "digital television service", DefaultTables().ServiceType(0x01))
	require.Equal(t, "digital television service", defaultTables.ServiceType(0x01))
}

func TestFirstMatchWins(t *testing.T) {
	tbl := &Tables{ServiceTypes: []ServiceType{{0x01, "first"}, {0x01, "second"}}}
	require.Equal(t, "first", tbl.ServiceType(0x01))
}
