package domain

import "fmt"

// Role is the ordered permission level of a user. Higher values satisfy
// any floor at or below them: Reader < Writer < Admin.
type Role int

const (
	RoleReader Role = iota + 1
	RoleWriter
	RoleAdmin
)

// RoleNone marks operations with no role floor.
const RoleNone Role = 0

func (r Role) String() string {
	switch r {
	case RoleReader:
		return "reader"
	case RoleWriter:
		return "writer"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Satisfies reports whether r meets the given floor.
func (r Role) Satisfies(floor Role) bool {
	return r >= floor
}

func ParseRole(value string) (Role, error) {
	switch value {
	case "reader":
		return RoleReader, nil
	case "writer":
		return RoleWriter, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return 0, fmt.Errorf("%w: unknown role %q", ErrInvalidArgument, value)
	}
}
