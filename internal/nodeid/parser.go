// internal/nodeid/parser.go
package nodeid

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// headerRegex matches the `ns=<n>;<kind>=` prefix of an identity. Numbers
// carry no sign and no leading zeros so that every accepted text is canonical.
var headerRegex = regexp.MustCompile(`^ns=(0|[1-9][0-9]*);([isgb])=`)

var (
	numericRegex = regexp.MustCompile(`^(0|[1-9][0-9]*)$`)
	guidRegex    = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

// Parse creates a new ID by parsing its canonical string representation.
func Parse(text string) (ID, error) {
	if text == "" {
		return ID{}, fmt.Errorf("%w: identity cannot be empty", ErrMalformedIdentity)
	}

	header := headerRegex.FindStringSubmatch(text)
	if header == nil {
		return ID{}, fmt.Errorf("%w: %q does not match ns=<n>;{i|s|g|b}=<value>", ErrMalformedIdentity, text)
	}

	nsValue, err := strconv.ParseUint(header[1], 10, 16)
	if err != nil {
		return ID{}, fmt.Errorf("%w: namespace in %q: %v", ErrMalformedIdentity, text, err)
	}
	ns := uint16(nsValue)
	value := text[len(header[0]):]

	switch header[2] {
	case "i":
		if !numericRegex.MatchString(value) {
			return ID{}, fmt.Errorf("%w: invalid numeric identifier in %q", ErrMalformedIdentity, text)
		}
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return ID{}, fmt.Errorf("%w: numeric identifier in %q: %v", ErrMalformedIdentity, text, err)
		}
		return Numeric(ns, uint32(n)), nil

	case "s":
		if value == "" {
			return ID{}, fmt.Errorf("%w: empty string identifier in %q", ErrMalformedIdentity, text)
		}
		return String(ns, value), nil

	case "g":
		if !guidRegex.MatchString(value) {
			return ID{}, fmt.Errorf("%w: GUID in %q must be lower-case 8-4-4-4-12 hex", ErrMalformedIdentity, text)
		}
		g, err := uuid.Parse(value)
		if err != nil {
			return ID{}, fmt.Errorf("%w: GUID in %q: %v", ErrMalformedIdentity, text, err)
		}
		return GUID(ns, g), nil

	default: // "b"
		raw, err := base64.StdEncoding.Strict().DecodeString(value)
		if err != nil || len(raw) == 0 {
			return ID{}, fmt.Errorf("%w: opaque identifier in %q is not non-empty base64", ErrMalformedIdentity, text)
		}
		return Opaque(ns, raw), nil
	}
}

// MustParse is like Parse but panics on malformed input. It is meant for
// compiled-in declarations whose identities are constants.
func MustParse(text string) ID {
	id, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return id
}

// String serializes the ID into its canonical text representation.
func (id ID) String() string {
	var sb strings.Builder
	sb.WriteString("ns=")
	sb.WriteString(strconv.FormatUint(uint64(id.ns), 10))
	sb.WriteRune(';')
	sb.WriteString(id.kind.String())
	sb.WriteRune('=')

	switch id.kind {
	case KindNumeric:
		sb.WriteString(strconv.FormatUint(uint64(id.numeric), 10))
	case KindString:
		sb.WriteString(id.str)
	case KindGUID:
		g, _ := id.GUIDValue()
		sb.WriteString(g.String())
	case KindOpaque:
		sb.WriteString(base64.StdEncoding.EncodeToString([]byte(id.str)))
	}
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
