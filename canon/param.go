package canon

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Param is a single element of a parameter sequence. The set of implementations is
// closed: values participating in a canonical string must be constructed via one of
// the variant constructors below.
type Param interface {
	canonical() string
}

// Text includes a string verbatim: embedded line breaks are preserved as-is, never
// escaped or rejected
func Text(s string) Param {
	return textParam(s)
}

type textParam string

func (p textParam) canonical() string {
	return string(p)
}

// Int formats an integer as base-10 digits, with a leading '-' for negatives and no
// leading zeros
func Int(v int64) Param {
	return intParam(v)
}

type intParam int64

func (p intParam) canonical() string {
	return strconv.FormatInt(int64(p), 10)
}

// Bool formats a boolean as its default textual name, i.e. "true" or "false"
func Bool(v bool) Param {
	return boolParam(v)
}

type boolParam bool

func (p boolParam) canonical() string {
	return strconv.FormatBool(bool(p))
}

// Symbol includes the name of an enumerated value verbatim; the caller supplies the
// name exactly as the counterpart implementation would stringify it
func Symbol(name string) Param {
	return symbolParam(name)
}

type symbolParam string

func (p symbolParam) canonical() string {
	return string(p)
}

// Instant formats a point in time in UTC with seconds precision, e.g.
// "2013-05-01T15:00:00Z"; any sub-second component is discarded
func Instant(t time.Time) Param {
	return instantParam(t)
}

type instantParam time.Time

func (p instantParam) canonical() string {
	// RFC 3339 at a zero offset yields the required yyyy-MM-ddTHH:mm:ssZ form, with
	// no fractional seconds
	return time.Time(p).UTC().Truncate(time.Second).Format(time.RFC3339)
}

// StringMap formats a mapping of strings to strings as one "key=value" line per
// entry, joined by newlines, with entries sorted ascending by byte-wise key
// comparison: two maps holding the same pairs always canonicalize identically,
// regardless of insertion order
func StringMap(m map[string]string) Param {
	return mapParam(m)
}

type mapParam map[string]string

func (p mapParam) canonical() string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = k + "=" + p[k]
	}
	return strings.Join(lines, "\n")
}

// Empty represents a parameter with no representable value; it formats as the empty
// string
func Empty() Param {
	return emptyParam{}
}

type emptyParam struct{}

func (emptyParam) canonical() string {
	return ""
}
