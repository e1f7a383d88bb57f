package si

import "fmt"

// Status packs the SDT/EIT status sub-fields of a service or event.
//
//	bit 5     EIT schedule information present
//	bit 4     EIT present/following information present
//	bits 0-2  running status
//
// The running status keeps the full 3-bit DVB field rather than two bits, so
// values outside 1-4 stay visible and render as invalid.
type Status uint8

const (
	statusScheduleFlag     Status = 0x20
	statusPresentFollowing Status = 0x10
	statusRunningMask      Status = 0x07
)

// RunningStatus is the EN 300 468 running_status field.
type RunningStatus uint8

const (
	RunningStatusNotRunning RunningStatus = 1
	RunningStatusAwaiting   RunningStatus = 2
	RunningStatusPausing    RunningStatus = 3
	RunningStatusRunning    RunningStatus = 4
)

// NewStatus packs the three sub-fields. Only the low three bits of rs are kept.
func NewStatus(schedule, presentFollowing bool, rs RunningStatus) Status {
	s := Status(rs) & statusRunningMask
	if schedule {
		s |= statusScheduleFlag
	}
	if presentFollowing {
		s |= statusPresentFollowing
	}
	return s
}

func (s Status) ScheduleFlag() bool {
	return s&statusScheduleFlag != 0
}

func (s Status) PresentFollowing() bool {
	return s&statusPresentFollowing != 0
}

func (s Status) RunningStatus() RunningStatus {
	return RunningStatus(s & statusRunningMask)
}

// Valid reports whether r is one of the four defined running states.
func (r RunningStatus) Valid() bool {
	return r >= RunningStatusNotRunning && r <= RunningStatusRunning
}

func (r RunningStatus) String() string {
	switch r {
	case RunningStatusNotRunning:
		return "RUNNING_STATUS_NOT_RUNNING"
	case RunningStatusAwaiting:
		return "RUNNING_STATUS_AWAITING"
	case RunningStatusPausing:
		return "RUNNING_STATUS_PAUSING"
	case RunningStatusRunning:
		return "RUNNING_STATUS_RUNNING"
	default:
		return fmt.Sprintf("RUNNING_STATUS_INVALID(%d)", uint8(r))
	}
}
