package shape

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/vi-canvas/core"
)

var (
	// ErrUnknownKind is returned by New and ParseKind for an unrecognized kind tag
	ErrUnknownKind = errors.New("no such figure kind")

	// ErrParamCount is returned by New when the parameter list does not match the kind's arity
	ErrParamCount = errors.New("wrong number of figure parameters")

	// ErrParamRange is returned by New for negative radii, foci or heights
	ErrParamRange = errors.New("figure parameter out of range")
)

// New creates an unbuilt figure of kind from its fixed-arity parameter list
//
//	circle, filled circle  radius
//	ellipse                xFocus, yFocus
//	line                   startX, startY, endX, endY
//	conus                  radius, height
//	partial conus          mainRadius, upperRadius, height
//	dot                    x, y
func New(kind Kind, params ...int) (Shape, error) {
	arity := kind.Arity()
	if arity < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if len(params) != arity {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrParamCount, kind, arity, len(params))
	}

	switch kind {
	case KindLine, KindDot:
	default:
		for i, v := range params {
			if v < 0 {
				return nil, fmt.Errorf("%w: %s parameter %d is %d", ErrParamRange, kind, i, v)
			}
		}
	}

	switch kind {
	case KindCircle:
		return NewCircle(params[0]), nil
	case KindFilledCircle:
		return NewFilledCircle(params[0]), nil
	case KindEllipse:
		return NewEllipse(params[0], params[1]), nil
	case KindLine:
		return NewLine(core.Point{X: params[0], Y: params[1]}, core.Point{X: params[2], Y: params[3]}), nil
	case KindConus:
		return NewConus(params[0], params[1]), nil
	case KindPartialConus:
		return NewPartialConus(params[0], params[1], params[2]), nil
	case KindDot:
		return NewDot(params[0], params[1]), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}

// NewNamed resolves name with ParseKind and calls New
func NewNamed(name string, params ...int) (Shape, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	return New(kind, params...)
}
