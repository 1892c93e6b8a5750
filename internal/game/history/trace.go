package history

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protowire"
)

// ErrCorruptTrace is returned when a trace frame cannot be decoded.
var ErrCorruptTrace = errors.New("corrupt history trace")

// WriteTrace writes the full log, or the current batch when full is false, as
// a zstd stream of varint length-delimited PowerHistoryData messages.
func (r *Recorder) WriteTrace(w io.Writer, full bool) error {
	events := r.last
	if full {
		events = r.full
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(r.level))
	if err != nil {
		return fmt.Errorf("failed to create trace encoder: %w", err)
	}
	bw := bufio.NewWriterSize(enc, 64*1024)

	var frame []byte
	for i, e := range events {
		msg := Marshal(e)
		frame = protowire.AppendVarint(frame[:0], uint64(len(msg)))
		frame = append(frame, msg...)
		if _, err := bw.Write(frame); err != nil {
			_ = enc.Close()
			return fmt.Errorf("failed to write trace event %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		return fmt.Errorf("failed to flush trace: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to close trace encoder: %w", err)
	}

	r.logger.Info("wrote history trace",
		zap.String("session_id", r.id),
		zap.Int("event_count", len(events)),
		zap.Bool("full", full),
	)
	return nil
}

// ReadTraceFrames decompresses a trace written by WriteTrace and returns the
// raw PowerHistoryData messages in order.
func ReadTraceFrames(r io.Reader) ([][]byte, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace decoder: %w", err)
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace: %w", err)
	}

	var frames [][]byte
	for len(data) > 0 {
		size, n := protowire.ConsumeVarint(data)
		if n < 0 {
			return nil, fmt.Errorf("%w: frame %d: %v", ErrCorruptTrace, len(frames), protowire.ParseError(n))
		}
		data = data[n:]
		if size > uint64(len(data)) {
			return nil, fmt.Errorf("%w: frame %d: length %d exceeds remaining %d bytes",
				ErrCorruptTrace, len(frames), size, len(data))
		}
		frames = append(frames, append([]byte(nil), data[:size]...))
		data = data[size:]
	}
	return frames, nil
}
