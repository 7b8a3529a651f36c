package colour

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/wheelibin/kasactl/internal/models"
)

type refKind int

const (
	refInvalid refKind = iota
	refName
	refLiteral
)

// Ref is a colour as written by the user: either a name from the colour
// table or a literal list of channel values.
type Ref struct {
	kind    refKind
	name    string
	literal []int
	raw     string
}

func Named(name string) Ref {
	return Ref{kind: refName, name: name}
}

func Literal(channels ...int) Ref {
	return Ref{kind: refLiteral, literal: channels}
}

// UnmarshalJSON accepts a string or a list of integers. Any other JSON value
// is kept and rejected when the colour is resolved.
func (r *Ref) UnmarshalJSON(data []byte) error {
	*r = Ref{kind: refInvalid, raw: string(data)}

	// null decodes into a string or slice without error
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*r = Named(name)
		return nil
	}
	var channels []*int
	if err := json.Unmarshal(data, &channels); err == nil {
		if lo.Contains(channels, nil) {
			return nil
		}
		*r = Literal(lo.Map(channels, func(v *int, _ int) int { return *v })...)
	}
	return nil
}

func (r Ref) String() string {
	switch r.kind {
	case refName:
		return r.name
	case refLiteral:
		return "[" + strings.Join(lo.Map(r.literal, func(v int, _ int) string { return strconv.Itoa(v) }), ",") + "]"
	default:
		return r.raw
	}
}

// Resolve turns a colour reference into RGB. Unknown names resolve to white;
// literals must have exactly three channels in 0..255.
func Resolve(ref Ref, table Table) (models.RGB, error) {
	switch ref.kind {
	case refName:
		return table.Lookup(ref.name), nil
	case refLiteral:
		if len(ref.literal) != 3 {
			return models.RGB{}, fmt.Errorf("%w: %s", ErrInvalidColour, ref)
		}
		for _, v := range ref.literal {
			if v < 0 || v > 255 {
				return models.RGB{}, fmt.Errorf("%w: %s", ErrInvalidColour, ref)
			}
		}
		return models.RGB{R: uint8(ref.literal[0]), G: uint8(ref.literal[1]), B: uint8(ref.literal[2])}, nil
	default:
		return models.RGB{}, fmt.Errorf("%w: %s", ErrInvalidColour, ref)
	}
}

// ParseArg reads a colour given on the command line: "[r,g,b]" is a literal,
// anything else is a name.
func ParseArg(arg string) (Ref, error) {
	if !strings.HasPrefix(arg, "[") || !strings.HasSuffix(arg, "]") {
		return Named(arg), nil
	}
	fields := strings.Split(strings.Trim(arg, "[]"), ",")
	channels := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Ref{}, fmt.Errorf("invalid RGB value %q in %s: %w", f, arg, err)
		}
		channels = append(channels, v)
	}
	return Literal(channels...), nil
}
