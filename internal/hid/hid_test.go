package hid

import "gesturelink/internal/uinput"

// recordedEvent captures one Emit call; syncs are recorded as EV_SYN events
// so ordering relative to value events is observable.
type recordedEvent struct {
	typ   uint16
	code  uint16
	value int32
}

type fakeConn struct {
	events []recordedEvent
	closed int
}

func (f *fakeConn) Emit(typ, code uint16, value int32) {
	f.events = append(f.events, recordedEvent{typ, code, value})
}

func (f *fakeConn) Sync() {
	f.Emit(uinput.EvSyn, uinput.SynReport, 0)
}

func (f *fakeConn) Close() error {
	f.closed++
	return nil
}

func syncEvent() recordedEvent {
	return recordedEvent{uinput.EvSyn, uinput.SynReport, 0}
}
