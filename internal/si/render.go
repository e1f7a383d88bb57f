package si

import (
	"strings"
	"time"
)

// PrintModel prints all services followed by all programs.
func (p *TextPrinter) PrintModel(m *Model) {
	if m == nil {
		return
	}
	p.PrintServices(m.Services, 0)
	p.PrintPrograms(m.Programs, 0)
}

func (p *TextPrinter) PrintServices(services []*Service, depth int) {
	for _, s := range services {
		p.PrintService(s, depth)
	}
}

func (p *TextPrinter) PrintService(s *Service, depth int) {
	if s == nil {
		return
	}
	p.title(depth, "Service")
	p.printf(depth+1, "ServiceID: %d", s.ServiceID)
	p.printf(depth+1, "TransportStreamID: %d", s.TransportStreamID)
	p.printf(depth+1, "OriginalNetworkID: %d", s.OriginalNetworkID)
	p.printf(depth+1, "SdtVersion: %d", s.SdtVersion)
	p.printf(depth+1, "Status: %s", serviceStatus(s.Status))
	p.PrintDescriptors(s.Descriptors, depth+1)
	p.PrintEvents(s.Events, depth+1)
}

// serviceStatus lists the set flags followed by the running status.
func serviceStatus(st Status) string {
	labels := make([]string, 0, 3)
	if st.ScheduleFlag() {
		labels = append(labels, "SCHEDULE_INFO")
	}
	if st.PresentFollowing() {
		labels = append(labels, "PRESENT_FOLLOWING")
	}
	labels = append(labels, st.RunningStatus().String())
	return strings.Join(labels, " ")
}

func (p *TextPrinter) PrintEvents(events []*Event, depth int) {
	for _, e := range events {
		p.PrintEvent(e, depth)
	}
}

func (p *TextPrinter) PrintEvent(e *Event, depth int) {
	if e == nil {
		return
	}
	p.title(depth, "Event")
	p.printf(depth+1, "EventID: %d", e.EventID)
	p.printf(depth+1, "ServiceID: %d", e.ServiceID)
	p.printf(depth+1, "TransportStreamID: %d", e.TransportStreamID)
	p.printf(depth+1, "OriginalNetworkID: %d", e.OriginalNetworkID)
	p.printf(depth+1, "EitVersion: %d", e.EitVersion)
	p.printf(depth+1, "StartTime: %s", e.StartTime.Format(time.ANSIC))
	p.printf(depth+1, "Duration: %d minutes", int64(e.Duration/time.Minute))
	p.printf(depth+1, "Status: %s", e.Status.RunningStatus())
	p.PrintDescriptors(e.Descriptors, depth+1)
}

func (p *TextPrinter) PrintPrograms(programs []*Program, depth int) {
	for _, pr := range programs {
		p.PrintProgram(pr, depth)
	}
}

func (p *TextPrinter) PrintProgram(pr *Program, depth int) {
	if pr == nil {
		return
	}
	p.title(depth, "Program")
	p.printf(depth+1, "ProgramID: %d", pr.ProgramID)
	p.printf(depth+1, "TransportStreamID: %d", pr.TransportStreamID)
	p.printf(depth+1, "NetworkPID: %d", pr.NetworkPID)
	p.printf(depth+1, "PatVersion: %d", pr.PatVersion)
	p.PrintPids(pr.Pids, depth+1)
}

func (p *TextPrinter) PrintPids(pids []*Pid, depth int) {
	for _, pid := range pids {
		p.PrintPid(pid, depth)
	}
}

func (p *TextPrinter) PrintPid(pid *Pid, depth int) {
	if pid == nil {
		return
	}
	p.title(depth, "Pid")
	p.printf(depth+1, "ProgramID: %d", pid.ProgramID)
	p.printf(depth+1, "PcrPid: %d", pid.PcrPID)
	p.printf(depth+1, "PmtVersion: %d", pid.PmtVersion)
	for _, info := range pid.Infos {
		p.PrintPidInfo(info, depth+1)
	}
}

// PrintPidInfo prints one elementary stream. Its descriptors are placed two
// levels below the stream fields.
func (p *TextPrinter) PrintPidInfo(info *PidInfo, depth int) {
	if info == nil {
		return
	}
	p.title(depth, "PidInfo")
	p.printf(depth+1, "StreamType: %s", p.tables().StreamType(info.StreamType))
	p.printf(depth+1, "ElementaryPid: %d", info.ElementaryPid)
	p.PrintDescriptors(info.Descriptors, depth+2)
}
