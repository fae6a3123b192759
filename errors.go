package gridmenu

import "github.com/aukilabs/go-tooling/pkg/errors"

// Error types attached to every error returned by this package. Check them
// with errors.IsType or errors.Type from go-tooling.
const (
	// ErrTypeOutOfRange is returned when an index mutation targets a point
	// that does not exist.
	ErrTypeOutOfRange = "gridmenu_out_of_range"

	// ErrTypeInvalidDimension is returned for non-positive or non-finite
	// surface sizes.
	ErrTypeInvalidDimension = "gridmenu_invalid_dimension"

	// ErrTypeParse is returned for malformed coordinate text.
	ErrTypeParse = "gridmenu_parse"

	// ErrTypeConfig is returned for invalid configuration values.
	ErrTypeConfig = "gridmenu_config"
)

func outOfRange(index, length int) error {
	return errors.New("point index out of range").
		WithType(ErrTypeOutOfRange).
		WithTag("index", index).
		WithTag("len", length)
}

func invalidDimension(width, height float64) error {
	return errors.New("surface dimensions must be positive and finite").
		WithType(ErrTypeInvalidDimension).
		WithTag("width", width).
		WithTag("height", height)
}
