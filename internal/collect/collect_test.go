package collect

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Eyevinn/mp2ts-si/internal/si"
	"github.com/asticode/go-astits"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDecodeRaw(t *testing.T) {
	cases := []struct {
		name string
		tag  si.Tag
		data []byte
		want si.Descriptor
	}{
		{
			"bouquet_name", si.TagBouquetName, []byte("Sky"),
			&si.BouquetNameDescriptor{Name: "Sky"},
		},
		{
			"ancillary_data", si.TagAncillaryData, []byte{0x11},
			&si.AncillaryDataDescriptor{Identifier: 0x11},
		},
		{
			"country_availability", si.TagCountryAvailability, []byte{0x80, 'D', 'E', 'U', 'A', 'U', 'T'},
			&si.CountryAvailabilityDescriptor{Available: true, CountryCodes: []string{"DEU", "AUT"}},
		},
		{
			"country_unavailable", si.TagCountryAvailability, []byte{0x7f, 'G', 'B', 'R'},
			&si.CountryAvailabilityDescriptor{Available: false, CountryCodes: []string{"GBR"}},
		},
		{
			"linkage", si.TagLinkage, []byte{0x04, 0x37, 0x00, 0x01, 0x6d, 0x66, 0x04},
			&si.LinkageDescriptor{TransportStreamID: 1079, OriginalNetworkID: 1, ServiceID: 28006, LinkageType: 4},
		},
		{
			"linkage_private_data", si.TagLinkage, []byte{0x00, 0x01, 0x00, 0x02, 0x00, 0x03, 0x09, 0xde, 0xad},
			&si.LinkageDescriptor{TransportStreamID: 1, OriginalNetworkID: 2, ServiceID: 3, LinkageType: 9, PrivateData: []byte{0xde, 0xad}},
		},
		{
			"nvod_reference", si.TagNVODReference, []byte{0x00, 0x01, 0x00, 0x02, 0x00, 0x03, 0x00, 0x04, 0x00, 0x05, 0x00, 0x06},
			&si.NVODReferenceDescriptor{Items: []si.NVODReferenceItem{
				{TransportStreamID: 1, OriginalNetworkID: 2, ServiceID: 3},
				{TransportStreamID: 4, OriginalNetworkID: 5, ServiceID: 6},
			}},
		},
		{
			"time_shifted_service", si.TagTimeShiftedService, []byte{0x01, 0x00},
			&si.TimeShiftedServiceDescriptor{ReferenceServiceID: 256},
		},
		{
			"time_shifted_event", si.TagTimeShiftedEvent, []byte{0x00, 0x0c, 0x00, 0x63},
			&si.TimeShiftedEventDescriptor{ReferenceServiceID: 12, ReferenceEventID: 99},
		},
		{
			"ca_identifier", si.TagCAIdentifier, []byte{0x01, 0x00, 0x17, 0x02},
			&si.CAIdentifierDescriptor{SystemIDs: []uint16{0x0100, 0x1702}},
		},
		{
			"short_linkage", si.TagLinkage, []byte{0x00, 0x01},
			&si.UnsupportedDescriptor{DescriptorTag: si.TagLinkage, Data: []byte{0x00, 0x01}},
		},
		{
			"empty_ancillary", si.TagAncillaryData, []byte{},
			&si.UnsupportedDescriptor{DescriptorTag: si.TagAncillaryData, Data: []byte{}},
		},
		{
			"network_name", si.TagNetworkName, []byte("net"),
			&si.UnsupportedDescriptor{DescriptorTag: si.TagNetworkName, Data: []byte("net")},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := decodeRaw(c.tag, c.data)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("decodeRaw mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToDescriptor(t *testing.T) {
	got := toDescriptor(&astits.Descriptor{
		Tag:     uint8(si.TagService),
		Service: &astits.DescriptorService{Name: []byte("Das Erste"), Provider: []byte("ARD"), Type: 1},
	})
	require.Equal(t, &si.ServiceDescriptor{ServiceType: 1, ServiceProvider: "ARD", Name: "Das Erste"}, got)

	got = toDescriptor(&astits.Descriptor{
		Tag:              uint8(si.TagStreamIdentifier),
		StreamIdentifier: &astits.DescriptorStreamIdentifier{ComponentTag: 7},
	})
	require.Equal(t, &si.StreamIdentifierDescriptor{ComponentTag: 7}, got)

	got = toDescriptor(&astits.Descriptor{
		Tag:     uint8(si.TagTimeShiftedService),
		Unknown: &astits.DescriptorUnknown{Content: []byte{0x00, 0x2a}},
	})
	require.Equal(t, &si.TimeShiftedServiceDescriptor{ReferenceServiceID: 42}, got)

	// Parsed variant missing: fall back to unsupported
	got = toDescriptor(&astits.Descriptor{Tag: uint8(si.TagShortEvent)})
	require.Equal(t, &si.UnsupportedDescriptor{DescriptorTag: si.TagShortEvent}, got)
}

func TestCollectorTables(t *testing.T) {
	start := time.Date(2024, 3, 9, 6, 5, 0, 0, time.UTC)
	c := newCollector(Options{Events: true, Programs: true})

	eit := &astits.EITData{
		ServiceID:         28006,
		TransportStreamID: 1079,
		OriginalNetworkID: 1,
		Events: []*astits.EITDataEvent{
			{EventID: 1, StartTime: start, Duration: 30 * time.Minute, RunningStatus: 4},
			{EventID: 2, StartTime: start.Add(30 * time.Minute), Duration: time.Hour, RunningStatus: 1},
		},
	}
	c.addEIT(eit)
	// Repeated sections do not duplicate events
	c.addEIT(eit)
	c.addSDT(&astits.SDTData{
		OriginalNetworkID: 1,
		TransportStreamID: 1079,
		Services: []*astits.SDTDataService{
			{ServiceID: 28006, HasEITSchedule: true, HasEITPresentFollowing: true, RunningStatus: 4},
			{ServiceID: 28007, RunningStatus: 1},
		},
	})
	c.addPAT(&astits.PATData{
		TransportStreamID: 1079,
		Programs: []*astits.PATProgram{
			{ProgramNumber: 0, ProgramMapID: 16},
			{ProgramNumber: 28007, ProgramMapID: 200},
			{ProgramNumber: 28006, ProgramMapID: 100},
		},
	})
	c.addPMT(&astits.PMTData{
		ProgramNumber: 28006,
		PCRPID:        101,
		ElementaryStreams: []*astits.PMTElementaryStream{
			{ElementaryPID: 101, StreamType: astits.StreamTypeH264Video},
		},
	})

	want := &si.Model{
		Services: []*si.Service{
			{
				ServiceID:         28006,
				TransportStreamID: 1079,
				OriginalNetworkID: 1,
				Status:            si.NewStatus(true, true, si.RunningStatusRunning),
				Events: []*si.Event{
					{
						EventID: 1, ServiceID: 28006, TransportStreamID: 1079, OriginalNetworkID: 1,
						StartTime: start, Duration: 30 * time.Minute,
						Status: si.NewStatus(false, false, si.RunningStatusRunning),
					},
					{
						EventID: 2, ServiceID: 28006, TransportStreamID: 1079, OriginalNetworkID: 1,
						StartTime: start.Add(30 * time.Minute), Duration: time.Hour,
						Status: si.NewStatus(false, false, si.RunningStatusNotRunning),
					},
				},
			},
			{
				ServiceID:         28007,
				TransportStreamID: 1079,
				OriginalNetworkID: 1,
				Status:            si.NewStatus(false, false, si.RunningStatusNotRunning),
			},
		},
		Programs: []*si.Program{
			{
				ProgramID: 28006, TransportStreamID: 1079, NetworkPID: 16,
				Pids: []*si.Pid{{
					ProgramID: 28006,
					PcrPID:    101,
					Infos:     []*si.PidInfo{{StreamType: 0x1b, ElementaryPid: 101}},
				}},
			},
			{ProgramID: 28007, TransportStreamID: 1079, NetworkPID: 16},
		},
	}
	if diff := cmp.Diff(want, c.model()); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectorServiceFilter(t *testing.T) {
	c := newCollector(Options{ServiceIDs: []int{2}, Events: true})
	c.addSDT(&astits.SDTData{
		Services: []*astits.SDTDataService{{ServiceID: 1}, {ServiceID: 2}},
	})
	c.addEIT(&astits.EITData{ServiceID: 1, Events: []*astits.EITDataEvent{{EventID: 5}}})
	m := c.model()
	require.Len(t, m.Services, 1)
	require.Equal(t, uint16(2), m.Services[0].ServiceID)
	require.Empty(t, m.Services[0].Events)
}

func TestCollectWithoutSyncByte(t *testing.T) {
	_, err := Collect(context.TODO(), bytes.NewReader(make([]byte, 10)), Options{})
	require.Error(t, err)
}

// muxTables writes the PAT and PMT of one H.264 program n times.
func muxTables(t *testing.T, n int) []byte {
	t.Helper()
	buf := bytes.Buffer{}
	mx := astits.NewMuxer(context.Background(), &buf)
	err := mx.AddElementaryStream(astits.PMTElementaryStream{
		ElementaryPID: 256,
		StreamType:    astits.StreamTypeH264Video,
	})
	require.NoError(t, err)
	mx.SetPCRPID(256)
	for i := 0; i < n; i++ {
		_, err = mx.WriteTables()
		require.NoError(t, err)
	}
	return buf.Bytes()
}

func TestCollectPrograms(t *testing.T) {
	ts := muxTables(t, 5)
	require.Equal(t, 0, len(ts)%PacketSize)

	m, err := Collect(context.Background(), bytes.NewReader(ts), Options{Programs: true})
	require.NoError(t, err)
	require.Empty(t, m.Services)
	require.Len(t, m.Programs, 1)
	pr := m.Programs[0]
	require.Len(t, pr.Pids, 1)
	require.Equal(t, uint16(256), pr.Pids[0].PcrPID)
	want := []*si.PidInfo{{StreamType: 0x1b, ElementaryPid: 256}}
	if diff := cmp.Diff(want, pr.Pids[0].Infos); diff != "" {
		t.Errorf("pid infos mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectProgramsDisabled(t *testing.T) {
	m, err := Collect(context.Background(), bytes.NewReader(muxTables(t, 2)), Options{})
	require.NoError(t, err)
	require.Empty(t, m.Programs)
}

func TestCollectMaxTables(t *testing.T) {
	// The PAT is the first table, so the PMT is never reached
	m, err := Collect(context.Background(), bytes.NewReader(muxTables(t, 5)), Options{Programs: true, MaxTables: 1})
	require.NoError(t, err)
	require.Len(t, m.Programs, 1)
	require.Empty(t, m.Programs[0].Pids)
}

func TestCollectCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m, err := Collect(ctx, bytes.NewReader(muxTables(t, 5)), Options{Programs: true})
	require.NoError(t, err)
	require.Empty(t, m.Programs)
}

func TestCollectorServiceWithoutSDT(t *testing.T) {
	c := newCollector(Options{Events: true})
	c.addEIT(&astits.EITData{ServiceID: 9, Events: []*astits.EITDataEvent{{EventID: 1, RunningStatus: 4}}})
	m := c.model()
	require.Len(t, m.Services, 1)
	require.Equal(t, si.Status(0), m.Services[0].Status)
	require.False(t, m.Services[0].Status.RunningStatus().Valid())
	require.Len(t, m.Services[0].Events, 1)

	var sb strings.Builder
	p := &si.TextPrinter{W: &sb}
	p.PrintModel(m)
	require.NoError(t, p.Error())
	require.Contains(t, sb.String(), "   Status: RUNNING_STATUS_INVALID(0)\n")

	// A later SDT fills in the status
	c.addSDT(&astits.SDTData{Services: []*astits.SDTDataService{{ServiceID: 9, RunningStatus: 4}}})
	require.Equal(t, si.RunningStatusRunning, c.model().Services[0].Status.RunningStatus())
}
