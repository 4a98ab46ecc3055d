package hid

import "github.com/edaniels/golog"

// TraceConn logs event records instead of writing them to uinput. It backs
// the dry-run mode so the whole command pipeline can run without
// /dev/uinput access.
type TraceConn struct {
	name   string
	logger golog.Logger
}

// NewTraceConn returns a connection that logs under the given device name.
func NewTraceConn(name string, logger golog.Logger) *TraceConn {
	return &TraceConn{name: name, logger: logger}
}

func (t *TraceConn) Emit(typ, code uint16, value int32) {
	t.logger.Infow("emit", "device", t.name, "type", typ, "code", code, "value", value)
}

func (t *TraceConn) Sync() {
	t.logger.Infow("sync", "device", t.name)
}

func (t *TraceConn) Close() error {
	t.logger.Infow("closed", "device", t.name)
	return nil
}
