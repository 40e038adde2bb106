package catalog

import (
	"fmt"
	"strings"
)

// SeedEditPolicy decides what Update does with a built-in painting.
type SeedEditPolicy string

const (
	// SeedEditsSession keeps the edit in memory until the next reload.
	SeedEditsSession SeedEditPolicy = "session"
	// SeedEditsReject refuses the edit with ErrSeedReadOnly.
	SeedEditsReject SeedEditPolicy = "reject"
	// SeedEditsMigrate copies the edited record into the remote catalog and
	// hides the seed id.
	SeedEditsMigrate SeedEditPolicy = "migrate"
)

func ParseSeedEditPolicy(s string) (SeedEditPolicy, error) {
	switch p := SeedEditPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return SeedEditsSession, nil
	case SeedEditsSession, SeedEditsReject, SeedEditsMigrate:
		return p, nil
	default:
		return "", fmt.Errorf("unknown seed edit policy %q", s)
	}
}
