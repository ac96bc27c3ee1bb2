package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sarchlab/cachesim/mem/mem"
)

// A Record is one access of a trace file.
type Record struct {
	Kind        mem.AccessKind
	Address     uint64
	ExtraCycles uint64
}

// ParseError reports a malformed record.
type ParseError struct {
	Record int
	Token  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("trace record %d: %q: %v", e.Record, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrTruncated is wrapped by the ParseError of a record that ends early.
var ErrTruncated = errors.New("truncated record")

// A Reader reads records from a trace. Each record is three
// whitespace-separated tokens: the instruction character, the address in
// hexadecimal (optionally prefixed by 0x) and the extra cycles in decimal.
// The instruction is not checked; that is left to the caches.
type Reader struct {
	scanner *bufio.Scanner
	count   int
}

// NewReader creates a Reader.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	return &Reader{scanner: scanner}
}

// Read returns the next record, or io.EOF when the trace ends cleanly.
func (r *Reader) Read() (Record, error) {
	instruction, ok := r.next()
	if !ok {
		if err := r.scanner.Err(); err != nil {
			return Record{}, err
		}

		return Record{}, io.EOF
	}

	r.count++

	if len(instruction) != 1 {
		return Record{}, r.errorf(instruction,
			errors.New("instruction must be a single character"))
	}

	addressToken, ok := r.next()
	if !ok {
		return Record{}, r.truncated(instruction)
	}

	address, err := strconv.ParseUint(trimHexPrefix(addressToken), 16, 64)
	if err != nil {
		return Record{}, r.errorf(addressToken, err)
	}

	cyclesToken, ok := r.next()
	if !ok {
		return Record{}, r.truncated(addressToken)
	}

	cycles, err := strconv.ParseUint(cyclesToken, 10, 64)
	if err != nil {
		return Record{}, r.errorf(cyclesToken, err)
	}

	return Record{
		Kind:        mem.AccessKind(instruction[0]),
		Address:     address,
		ExtraCycles: cycles,
	}, nil
}

// Count returns the number of records started so far.
func (r *Reader) Count() int {
	return r.count
}

func (r *Reader) next() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}

	return r.scanner.Text(), true
}

func (r *Reader) truncated(lastToken string) error {
	if err := r.scanner.Err(); err != nil {
		return err
	}

	return r.errorf(lastToken, ErrTruncated)
}

func (r *Reader) errorf(token string, err error) error {
	return &ParseError{Record: r.count, Token: token, Err: err}
}

func trimHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}

	return s
}
