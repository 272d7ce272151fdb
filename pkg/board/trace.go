package board

import (
	"time"

	"github.com/regkit-io/regkit-go/pkg/regmap"
	"github.com/regkit-io/regkit-go/pkg/tracelog"
	"github.com/regkit-io/regkit-go/pkg/version"
)

// tracer stamps register operations with the board's session identity
// and hands them to the configured trace logger. Sequence numbers are
// assigned with a plain increment; the board is single-threaded.
type tracer struct {
	session string
	seq     uint64
	logger  tracelog.Logger
}

func newTracer(session string, logger tracelog.Logger) *tracer {
	if logger == nil {
		logger = tracelog.NoopLogger{}
	}
	return &tracer{session: session, logger: logger}
}

func (t *tracer) setLogger(logger tracelog.Logger) {
	if logger == nil {
		logger = tracelog.NoopLogger{}
	}
	t.logger = logger
}

// emit delivers one trace event. The register word is sampled after
// the operation, so Word always reflects the post-operation state.
func (t *tracer) emit(op tracelog.Op, reg *regmap.Register, field regmap.Field, unit string, prev, value uint16, opErr error) {
	t.seq++
	event := tracelog.Event{
		Timestamp: time.Now(),
		SessionID: t.session,
		Seq:       t.seq,
		Op:        op,
		Register:  reg.Name(),
		Field:     field.Name,
		Unit:      unit,
		Prev:      prev,
		Value:     value,
		Word:      reg.Load(),
	}
	if op == tracelog.OpInit {
		event.Layout = version.Current
	}
	if opErr != nil {
		event.Error = opErr.Error()
	}
	t.logger.Log(event)
}
