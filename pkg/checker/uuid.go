package checker

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IsUUID checks for a string in standard UUID format.
func IsUUID(opts ...Option) *Checker {
	return build(opts, WithKinds(KindString), WithChecks(checkUUID))
}

// ToUUID converts a UUID-formatted string to a uuid.UUID value.
func ToUUID(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("cannot convert %s to UUID", KindOf(value))
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %q to UUID", s)
	}
	return id, nil
}

func checkUUID(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string to check UUID format")
	}

	// Fast rejection: check length and hyphen positions before parsing.
	if strings.TrimSpace(s) == "" || len(s) != 36 {
		return fmt.Errorf("must be a valid UUID")
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return fmt.Errorf("must be a valid UUID")
	}

	if _, err := uuid.Parse(s); err != nil {
		return fmt.Errorf("must be a valid UUID")
	}
	return nil
}
