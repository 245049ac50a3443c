package log

import (
	"fmt"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// eventEnc is the encoder mode for audit events. Canonical map ordering
// keeps identical events byte-identical on disk; timestamps carry
// nanosecond precision.
var eventEnc cbor.EncMode

func init() {
	em, err := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("audit event encoder mode: %v", err))
	}
	eventEnc = em
}

// EncodeEvent renders a single audit event as CBOR bytes.
func EncodeEvent(event Event) ([]byte, error) {
	return eventEnc.Marshal(event)
}

// FileLogger appends audit events to a file as a stream of CBOR records.
// Each event is encoded before the lock is taken and written with a
// single Write call, so a crash leaves at most one truncated record at
// the tail. Safe for concurrent use.
type FileLogger struct {
	mu   sync.Mutex
	file *os.File
}

// NewFileLogger opens path for appending, creating it with permissions
// 0644 if it does not exist.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileLogger{file: f}, nil
}

// Log appends one event to the file. Encoding and write errors are
// dropped; auditing never disrupts the registry.
func (l *FileLogger) Log(event Event) {
	data, err := EncodeEvent(event)
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return
	}
	_, _ = l.file.Write(data)
}

// Close closes the log file. Close is idempotent and Log calls after
// Close are silently ignored.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Compile-time interface satisfaction check.
var _ Logger = (*FileLogger)(nil)
