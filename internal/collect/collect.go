// Package collect demuxes a transport stream and builds the SI model from
// its SDT, EIT, PAT and PMT tables.
package collect

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Comcast/gots/v2/packet"
	"github.com/Eyevinn/mp2ts-si/internal/si"
	"github.com/asticode/go-astits"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const PacketSize = 188

type Options struct {
	// MaxTables stops collecting after this many SI tables. 0 means no limit.
	MaxTables int
	// ServiceIDs restricts services and events to these IDs. Empty means all.
	ServiceIDs []int
	Events     bool
	Programs   bool
}

type serviceKey struct {
	onID, tsID, serviceID uint16
}

type collector struct {
	o          Options
	services   map[serviceKey]*si.Service
	order      []serviceKey
	sdtSeen    map[serviceKey]bool
	eventSeen  map[serviceKey]map[uint16]bool
	programs   map[uint16]*si.Program
	networkPID uint16
}

func newCollector(o Options) *collector {
	return &collector{
		o:         o,
		services:  make(map[serviceKey]*si.Service),
		sdtSeen:   make(map[serviceKey]bool),
		eventSeen: make(map[serviceKey]map[uint16]bool),
		programs:  make(map[uint16]*si.Program),
	}
}

// Collect reads r until EOF, cancellation or the table limit and returns
// the collected model. Repeated tables keep the first version seen.
//
// A service known only from its EIT has no SDT entry, so its Status is zero
// and renders as RUNNING_STATUS_INVALID(0). A later SDT section fills it in.
func Collect(ctx context.Context, r io.Reader, o Options) (*si.Model, error) {
	rd := bufio.NewReaderSize(r, 1000*PacketSize)
	if _, err := packet.Sync(rd); err != nil {
		return nil, fmt.Errorf("syncing with reader %w", err)
	}
	dmx := astits.NewDemuxer(ctx, rd)
	c := newCollector(o)
	nrTables := 0
dataLoop:
	for {
		// Check if context was cancelled
		select {
		case <-ctx.Done():
			break dataLoop
		default:
		}

		d, err := dmx.NextData()
		if err != nil {
			if errors.Is(err, astits.ErrNoMorePackets) {
				break dataLoop
			}
			if ctx.Err() != nil {
				break dataLoop
			}
			return nil, fmt.Errorf("reading next data %w", err)
		}

		switch {
		case d.SDT != nil:
			c.addSDT(d.SDT)
		case d.EIT != nil && o.Events:
			c.addEIT(d.EIT)
		case d.PAT != nil && o.Programs:
			c.addPAT(d.PAT)
		case d.PMT != nil && o.Programs:
			c.addPMT(d.PMT)
		default:
			continue
		}

		nrTables++
		if o.MaxTables > 0 && nrTables >= o.MaxTables {
			break dataLoop
		}
	}
	return c.model(), nil
}

func (c *collector) wanted(serviceID uint16) bool {
	return len(c.o.ServiceIDs) == 0 || slices.Contains(c.o.ServiceIDs, int(serviceID))
}

// service returns the service for k, creating it on first sight.
func (c *collector) service(k serviceKey) *si.Service {
	if s, ok := c.services[k]; ok {
		return s
	}
	s := &si.Service{ServiceID: k.serviceID, TransportStreamID: k.tsID, OriginalNetworkID: k.onID}
	c.services[k] = s
	c.order = append(c.order, k)
	return s
}

func (c *collector) addSDT(sdt *astits.SDTData) {
	for _, s := range sdt.Services {
		if s == nil || !c.wanted(s.ServiceID) {
			continue
		}
		k := serviceKey{sdt.OriginalNetworkID, sdt.TransportStreamID, s.ServiceID}
		if c.sdtSeen[k] {
			continue
		}
		c.sdtSeen[k] = true
		svc := c.service(k)
		svc.Status = si.NewStatus(s.HasEITSchedule, s.HasEITPresentFollowing, si.RunningStatus(s.RunningStatus))
		svc.Descriptors = toDescriptors(s.Descriptors)
	}
}

func (c *collector) addEIT(eit *astits.EITData) {
	if !c.wanted(eit.ServiceID) {
		return
	}
	k := serviceKey{eit.OriginalNetworkID, eit.TransportStreamID, eit.ServiceID}
	svc := c.service(k)
	seen := c.eventSeen[k]
	if seen == nil {
		seen = make(map[uint16]bool)
		c.eventSeen[k] = seen
	}
	for _, e := range eit.Events {
		if e == nil || seen[e.EventID] {
			continue
		}
		seen[e.EventID] = true
		svc.Events = append(svc.Events, &si.Event{
			EventID:           e.EventID,
			ServiceID:         eit.ServiceID,
			TransportStreamID: eit.TransportStreamID,
			OriginalNetworkID: eit.OriginalNetworkID,
			StartTime:         e.StartTime,
			Duration:          e.Duration,
			Status:            si.NewStatus(false, false, si.RunningStatus(e.RunningStatus)),
			Descriptors:       toDescriptors(e.Descriptors),
		})
	}
}

func (c *collector) addPAT(pat *astits.PATData) {
	for _, p := range pat.Programs {
		if p == nil {
			continue
		}
		if p.ProgramNumber == 0 {
			c.networkPID = p.ProgramMapID
			continue
		}
		if _, ok := c.programs[p.ProgramNumber]; ok {
			continue
		}
		c.programs[p.ProgramNumber] = &si.Program{
			ProgramID:         p.ProgramNumber,
			TransportStreamID: pat.TransportStreamID,
		}
	}
}

func (c *collector) addPMT(pmt *astits.PMTData) {
	pr, ok := c.programs[pmt.ProgramNumber]
	if !ok {
		pr = &si.Program{ProgramID: pmt.ProgramNumber}
		c.programs[pmt.ProgramNumber] = pr
	}
	if len(pr.Pids) > 0 {
		return
	}
	pid := &si.Pid{ProgramID: pmt.ProgramNumber, PcrPID: pmt.PCRPID}
	for _, es := range pmt.ElementaryStreams {
		if es == nil {
			continue
		}
		pid.Infos = append(pid.Infos, &si.PidInfo{
			StreamType:    uint8(es.StreamType),
			ElementaryPid: es.ElementaryPID,
			Descriptors:   toDescriptors(es.ElementaryStreamDescriptors),
		})
	}
	pr.Pids = append(pr.Pids, pid)
}

// model orders services by first appearance and programs by program number.
func (c *collector) model() *si.Model {
	m := &si.Model{}
	for _, k := range c.order {
		m.Services = append(m.Services, c.services[k])
	}
	ids := maps.Keys(c.programs)
	slices.Sort(ids)
	for _, id := range ids {
		pr := c.programs[id]
		pr.NetworkPID = c.networkPID
		m.Programs = append(m.Programs, pr)
	}
	return m
}
