package sqlerr

import (
	"fmt"
	"sort"
	"sync"
)

// Coder describes a registered error code: a stable numeric code, its
// SQLSTATE, and a human-readable message.
type Coder interface {
	Code() int
	SQLState() string
	Message() string
}

type defaultCoder struct {
	C     int
	State string
	Msg   string
}

func (c defaultCoder) Code() int        { return c.C }
func (c defaultCoder) SQLState() string { return c.State }
func (c defaultCoder) Message() string  { return c.Msg }

var (
	codeMu sync.Mutex
	codes  = map[int]Coder{}

	unknownCoder = defaultCoder{C: 1, State: "XCL00", Msg: "unknown error"}
)

// Register registers a Coder.  It panics on a duplicate code; codes
// are program constants, so a collision is a bug.
func Register(code int, state, msg string) Coder {
	codeMu.Lock()
	defer codeMu.Unlock()
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("sqlerr: code %d already registered", code))
	}
	c := defaultCoder{C: code, State: state, Msg: msg}
	codes[code] = c
	return c
}

// ParseCoder resolves a code to its Coder, falling back to the unknown
// coder for unregistered codes.
func ParseCoder(code int) Coder {
	codeMu.Lock()
	defer codeMu.Unlock()
	if c, ok := codes[code]; ok {
		return c
	}
	return unknownCoder
}

// Codes lists all registered codes in ascending order.
func Codes() []int {
	codeMu.Lock()
	defer codeMu.Unlock()
	res := make([]int, 0, len(codes))
	for c := range codes {
		res = append(res, c)
	}
	sort.Ints(res)
	return res
}

// Error codes consumed by the jsonval packages.  The numbering and
// SQLSTATEs follow the surrounding query engine's convention.
var (
	// InvalidJSONData reports malformed input text to the JSON parser.
	InvalidJSONData = Register(2001, "22000", "invalid json data")
	// PathNotFound reports a strict-mode path traversal miss.
	PathNotFound = Register(2002, "22001", "path not found")
	// UnsupportedOperation reports an operation a sentinel value does
	// not support, such as deserializing into empty statistics.
	UnsupportedOperation = Register(2003, "0A000", "unsupported operation")
	// MalformedStats reports a statistics byte stream that declares
	// impossible record sizes.
	MalformedStats = Register(2004, "22000", "malformed table statistics")
)
