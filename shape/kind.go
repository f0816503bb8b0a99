package shape

import (
	"fmt"
	"strings"
)

// Kind tags a figure variant
type Kind uint8

const (
	KindCircle Kind = iota
	KindFilledCircle
	KindEllipse
	KindLine
	KindConus
	KindPartialConus
	KindDot
	kindCount
)

var kindNames = [kindCount]string{
	KindCircle:       "circle",
	KindFilledCircle: "filled circle",
	KindEllipse:      "ellipse",
	KindLine:         "line",
	KindConus:        "conus",
	KindPartialConus: "partial conus",
	KindDot:          "dot",
}

// kindArity is the parameter count New expects for each kind
var kindArity = [kindCount]int{
	KindCircle:       1, // radius
	KindFilledCircle: 1, // radius
	KindEllipse:      2, // x focus, y focus
	KindLine:         4, // start x, start y, end x, end y
	KindConus:        2, // radius, height
	KindPartialConus: 3, // main radius, upper radius, height
	KindDot:          2, // x, y
}

func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Arity returns the number of parameters the kind takes, -1 for unknown kinds
func (k Kind) Arity() int {
	if k >= kindCount {
		return -1
	}
	return kindArity[k]
}

// Kinds returns all known kinds in declaration order
func Kinds() []Kind {
	ks := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		ks = append(ks, k)
	}
	return ks
}

// ParseKind resolves a kind tag; "point" is accepted as an alias of "dot"
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "point" {
		return KindDot, nil
	}
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
