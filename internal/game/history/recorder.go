package history

import (
	"strings"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
)

// Recorder is the append-only power log of one game session. It keeps the
// cumulative log and the batch appended since the last ClearLast.
//
// A Recorder is not safe for concurrent use; parallel simulations clone it.
type Recorder struct {
	logger  *zap.Logger
	id      string
	full    []Event
	last    []Event
	enabled bool
	level   zstd.EncoderLevel
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithTraceLevel sets the zstd level used by WriteTrace.
func WithTraceLevel(level zstd.EncoderLevel) RecorderOption {
	return func(r *Recorder) { r.level = level }
}

// WithRecording sets whether Record appends events. Recording is on by default.
func WithRecording(enabled bool) RecorderOption {
	return func(r *Recorder) { r.enabled = enabled }
}

// NewRecorder creates an empty recorder with a fresh session id.
func NewRecorder(logger *zap.Logger, opts ...RecorderOption) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Recorder{
		logger:  logger,
		id:      uuid.New().String(),
		enabled: true,
		level:   zstd.SpeedDefault,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ID returns the session id.
func (r *Recorder) ID() string { return r.id }

// Enabled reports whether Record appends events.
func (r *Recorder) Enabled() bool { return r.enabled }

// Start turns recording on.
func (r *Recorder) Start() {
	r.enabled = true
	r.logger.Debug("started history recording", zap.String("session_id", r.id))
}

// Stop turns recording off. Events already recorded are kept.
func (r *Recorder) Stop() {
	r.enabled = false
	r.logger.Debug("stopped history recording",
		zap.String("session_id", r.id),
		zap.Int("event_count", len(r.full)),
	)
}

// Record appends e to the full log and the current batch. Events are never
// reordered, merged or validated.
func (r *Recorder) Record(e Event) {
	if e == nil {
		r.logger.Warn("ignoring nil history event", zap.String("session_id", r.id))
		return
	}
	if !r.enabled {
		return
	}
	r.full = append(r.full, e)
	r.last = append(r.last, e)

	if ce := r.logger.Check(zap.DebugLevel, "recorded history event"); ce != nil {
		ce.Write(
			zap.String("session_id", r.id),
			zap.Stringer("kind", e.Kind()),
			zap.Int("event_count", len(r.full)),
		)
	}
}

// Full returns a copy of the cumulative log.
func (r *Recorder) Full() []Event {
	return append([]Event(nil), r.full...)
}

// Last returns a copy of the events recorded since the last ClearLast.
func (r *Recorder) Last() []Event {
	return append([]Event(nil), r.last...)
}

// ClearLast starts a new batch. The full log is untouched.
func (r *Recorder) ClearLast() {
	r.last = r.last[:0:0]
}

// Len returns the number of events in the full log.
func (r *Recorder) Len() int { return len(r.full) }

// Render concatenates the text of the full log, or of the current batch when
// full is false.
func (r *Recorder) Render(full bool) string {
	events := r.last
	if full {
		events = r.full
	}
	var b strings.Builder
	for _, e := range events {
		b.WriteString(Render(e))
	}
	return b.String()
}

// Clone returns a recorder with independent logs and a new session id.
// Events are immutable and shared.
func (r *Recorder) Clone() *Recorder {
	return &Recorder{
		logger:  r.logger,
		id:      uuid.New().String(),
		full:    append([]Event(nil), r.full...),
		last:    append([]Event(nil), r.last...),
		enabled: r.enabled,
		level:   r.level,
	}
}
