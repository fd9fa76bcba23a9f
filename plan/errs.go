package plan

import "errors"

var (
	ErrInvalidPlan = errors.New("invalid plan")
	ErrOverlay     = errors.New("overlay")
)
