// Package typeid mints the sortable, prefixed ids carried by figures and
// containers ("shp_01h...", "cnt_01h...").
//
// A figure refers to its owner only by id, so the prefix is the one cheap
// check that a back-reference names a container and not another figure.
package typeid

import (
	"errors"
	"fmt"

	"go.jetify.com/typeid/v2"
)

// Id prefixes
const (
	PrefixShape     = "shp"
	PrefixContainer = "cnt"
)

// ErrMalformed is returned by Validate for ids that do not parse or carry the wrong prefix
var ErrMalformed = errors.New("malformed id")

// New returns a fresh id with prefix; prefix must be lowercase ascii
func New(prefix string) string {
	return typeid.MustGenerate(prefix).String()
}

func NewShapeID() string { return New(PrefixShape) }
func NewContainerID() string { return New(PrefixContainer) }

// Validate checks that id parses and carries want as its prefix
func Validate(id, want string) error {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrMalformed, id, err)
	}
	if got := parsed.Prefix(); got != want {
		return fmt.Errorf("%w: %q has prefix %q, expected %q", ErrMalformed, id, got, want)
	}
	return nil
}

