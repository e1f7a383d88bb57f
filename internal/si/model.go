// Package si holds a read-only model of DVB/MPEG service information and
// renders it as indented text for diagnostics.
package si

import "time"

// Model is the root of a collected set of service information.
type Model struct {
	Services []*Service
	Programs []*Program
}

type Service struct {
	ServiceID         uint16
	TransportStreamID uint16
	OriginalNetworkID uint16
	SdtVersion        uint8
	Status            Status
	Descriptors       []Descriptor
	Events            []*Event
}

type Event struct {
	EventID           uint16
	ServiceID         uint16
	TransportStreamID uint16
	OriginalNetworkID uint16
	EitVersion        uint8
	StartTime         time.Time
	Duration          time.Duration
	// Status carries the running status only.
	Status      Status
	Descriptors []Descriptor
}

type Program struct {
	ProgramID         uint16
	TransportStreamID uint16
	NetworkPID        uint16
	PatVersion        uint8
	Pids              []*Pid
}

// Pid is the PMT of one program.
type Pid struct {
	ProgramID  uint16
	PcrPID     uint16
	PmtVersion uint8
	Infos      []*PidInfo
}

// PidInfo is one elementary stream entry of a PMT.
type PidInfo struct {
	StreamType    uint8
	ElementaryPid uint16
	Descriptors   []Descriptor
}
