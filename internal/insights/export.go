package insights

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownExportFormat is returned for formats other than csv and netcdf.
var ErrUnknownExportFormat = errors.New("unknown export format")

// ExportFormat is a requested download format.
type ExportFormat string

const (
	FormatCSV    ExportFormat = "csv"
	FormatNetCDF ExportFormat = "netcdf"
)

// ParseExportFormat validates a format name, case-insensitively.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatNetCDF:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownExportFormat, s)
	}
}

// ExportRequest records one export button press. No file is produced.
type ExportRequest struct {
	ID          string       `json:"id"`
	Format      ExportFormat `json:"format"`
	Filter      Filter       `json:"-"`
	Parameter   string       `json:"parameter"`
	RequestedAt time.Time    `json:"requested_at"`
}

// ExportLog keeps the most recent export requests in memory.
type ExportLog struct {
	mu       sync.Mutex
	capacity int
	entries  []ExportRequest
	now      func() time.Time
}

// NewExportLog creates a log holding at most capacity requests.
func NewExportLog(capacity int) *ExportLog {
	if capacity <= 0 {
		capacity = 100
	}
	return &ExportLog{capacity: capacity, now: time.Now}
}

// Record notes a request for format with the current filter.
func (l *ExportLog) Record(format string, f Filter) (ExportRequest, error) {
	ef, err := ParseExportFormat(format)
	if err != nil {
		return ExportRequest{}, err
	}
	req := ExportRequest{
		ID:          uuid.New().String(),
		Format:      ef,
		Filter:      f,
		Parameter:   string(f.Parameter),
		RequestedAt: l.now(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, req)
	if over := len(l.entries) - l.capacity; over > 0 {
		l.entries = append([]ExportRequest(nil), l.entries[over:]...)
	}
	return req, nil
}

// Recent returns the recorded requests, oldest first.
func (l *ExportLog) Recent() []ExportRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]ExportRequest, len(l.entries))
	copy(out, l.entries)
	return out
}
