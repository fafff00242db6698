package annotate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDecode marks content that survived neither the primary nor the
	// fallback encoding.
	ErrDecode = errors.New("decode error")
	// ErrStore marks snapshot persistence failures.
	ErrStore = errors.New("snapshot store error")
	// ErrIO marks playlist read/write failures.
	ErrIO = errors.New("io error")
	// ErrLocked marks a run that could not acquire the stats directory lock.
	ErrLocked = errors.New("stats directory locked")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "run failure"
	}
	return strings.Join(parts, ": ")
}
