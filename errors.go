package wmf

import (
	"errors"
	"fmt"
)

// Sentinel errors for the wmf package.
var (
	// ErrNotPlaceable is returned when the stream does not start with the
	// placeable metafile signature.
	ErrNotPlaceable = errors.New("wmf: not a placeable metafile")

	// ErrTruncated is returned when the stream ends before the end-of-file record.
	ErrTruncated = errors.New("wmf: unexpected end of stream")

	// ErrRecordSize is returned when a record declares fewer words than its own header.
	ErrRecordSize = errors.New("wmf: record size smaller than record header")

	// ErrUnbalancedRestore is returned when RestoreDC has no matching SaveDC.
	ErrUnbalancedRestore = errors.New("wmf: RestoreDC without matching SaveDC")

	// ErrBusy is returned by Store.Read while another Read is in progress.
	ErrBusy = errors.New("wmf: store is already reading")

	// ErrAlreadyRead is returned by Store.Read when the store already holds a metafile.
	ErrAlreadyRead = errors.New("wmf: store already holds a metafile")

	// ErrNotRead is returned by Store queries before a successful Read.
	ErrNotRead = errors.New("wmf: store holds no metafile")
)

// FormatError reports a malformed or truncated metafile stream.
// Offset is the byte offset at which the failing read started and
// Record is the index of the record being read, or -1 for the headers.
type FormatError struct {
	Offset int64
	Record int
	Err    error
}

func (e *FormatError) Error() string {
	if e.Record < 0 {
		return fmt.Sprintf("%v (header, offset %d)", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v (record %d, offset %d)", e.Err, e.Record, e.Offset)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ReplayError reports a fatal error while interpreting a record.
type ReplayError struct {
	Record int
	Opcode Opcode
	Err    error
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("%v (record %d, %v)", e.Err, e.Record, e.Opcode)
}

func (e *ReplayError) Unwrap() error { return e.Err }
