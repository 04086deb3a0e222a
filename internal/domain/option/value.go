package option

import (
	"fmt"
	"net"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/clusterconf/internal/domain"
)

// fieldValue is the validation field key used for value parse failures.
const fieldValue = "value"

// ParseValue validates raw against the option's type, bounds and enum values
// and returns its canonical string form. Booleans are normalized to
// "true"/"false", integers and floats are reformatted, UUIDs lowercased;
// other types are returned trimmed.
func ParseValue(opt *Option, raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	switch opt.Type {
	case TypeStr:
		if opt.IsEnum() && !slices.Contains(opt.EnumValues, raw) {
			return "", invalid("must be one of [%s], got %q", strings.Join(opt.EnumValues, ", "), raw)
		}
		return raw, nil

	case TypeBool:
		b, ok := parseBool(raw)
		if !ok {
			return "", invalid("must be a boolean, got %q", raw)
		}
		return strconv.FormatBool(b), nil

	case TypeInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return "", invalid("must be an integer, got %q", raw)
		}
		return strconv.FormatInt(n, 10), checkBounds(opt, float64(n))

	case TypeUint:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return "", invalid("must be a non-negative integer, got %q", raw)
		}
		return strconv.FormatUint(n, 10), checkBounds(opt, float64(n))

	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", invalid("must be a number, got %q", raw)
		}
		return strconv.FormatFloat(f, 'g', -1, 64), checkBounds(opt, f)

	case TypeSize:
		n, err := ParseSize(raw)
		if err != nil {
			return "", invalid("must be a size (e.g. 4096, 64K, 1Gi), got %q", raw)
		}
		return raw, checkBounds(opt, float64(n))

	case TypeSecs:
		d, err := parseDuration(raw, time.Second)
		if err != nil {
			return "", invalid("must be a duration in seconds (e.g. 30, 5m), got %q", raw)
		}
		return raw, checkBounds(opt, d.Seconds())

	case TypeMillisecs:
		d, err := parseDuration(raw, time.Millisecond)
		if err != nil {
			return "", invalid("must be a duration in milliseconds (e.g. 500, 2s), got %q", raw)
		}
		return raw, checkBounds(opt, float64(d.Milliseconds()))

	case TypeUUID:
		id, err := uuid.Parse(raw)
		if err != nil {
			return "", invalid("must be a UUID, got %q", raw)
		}
		return id.String(), nil

	case TypeAddr:
		if !validAddr(raw) {
			return "", invalid("must be an address (e.g. v2:10.0.0.1:3300), got %q", raw)
		}
		return raw, nil

	case TypeAddrVec:
		if !validAddrVec(raw) {
			return "", invalid("must be an address vector (e.g. [v2:10.0.0.1:3300,v1:10.0.0.1:6789]), got %q", raw)
		}
		return raw, nil

	default:
		return "", invalid("option has unsupported type %q", opt.Type)
	}
}

// sizeUnits maps IEC/SI unit prefixes to their power-of-1024 exponent.
var sizeUnits = map[byte]uint{'K': 1, 'M': 2, 'G': 3, 'T': 4, 'P': 5, 'E': 6}

// ParseSize parses a byte count with an optional unit suffix (B, K, Ki,
// KB, KiB, ... up to E). Units are powers of 1024.
func ParseSize(raw string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.TrimSuffix(s, "B")
	s = strings.TrimSuffix(s, "I")

	var shift uint
	if n := len(s); n > 0 {
		if exp, ok := sizeUnits[s[n-1]]; ok {
			shift = exp * 10
			s = s[:n-1]
		}
	}

	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid size %q", raw)
	}
	if shift > 0 && n > (1<<(63-shift))-1 {
		return 0, fmt.Errorf("size %q overflows", raw)
	}
	return n << shift, nil
}

// parseDuration accepts a bare integer in the given unit or a Go duration
// string ("90s", "5m", "1h30m").
func parseDuration(raw string, unit time.Duration) (time.Duration, error) {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative duration %q", raw)
		}
		return time.Duration(n) * unit, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", raw)
	}
	return d, nil
}

func parseBool(raw string) (bool, bool) {
	switch strings.ToLower(raw) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	default:
		return false, false
	}
}

// validAddr accepts [v1:|v2:|any:]ip[:port][/nonce], with IPv6 hosts in
// brackets when a port is present.
func validAddr(raw string) bool {
	s := raw
	for _, prefix := range []string{"v1:", "v2:", "any:"} {
		if strings.HasPrefix(s, prefix) {
			s = s[len(prefix):]
			break
		}
	}
	if base, nonce, ok := strings.Cut(s, "/"); ok {
		if _, err := strconv.ParseUint(nonce, 10, 32); err != nil {
			return false
		}
		s = base
	}

	if net.ParseIP(strings.Trim(s, "[]")) != nil {
		return true
	}

	host, port, err := net.SplitHostPort(s)
	if err != nil || net.ParseIP(host) == nil {
		return false
	}
	p, err := strconv.ParseUint(port, 10, 16)
	return err == nil && p <= 65535
}

func validAddrVec(raw string) bool {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ",") {
		if !validAddr(strings.TrimSpace(part)) {
			return false
		}
	}
	return true
}

func checkBounds(opt *Option, v float64) error {
	if lo, ok := toFloat(opt.Min); ok && v < lo {
		return invalid("must be >= %v, got %v", opt.Min, v)
	}
	if hi, ok := toFloat(opt.Max); ok && v > hi {
		return invalid("must be <= %v, got %v", opt.Max, v)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return domain.NewValidationError(fieldValue, fmt.Sprintf(format, args...))
}
