package entity

import "github.com/samber/oops"

// Error codes returned by this package.
const (
	ErrCodeNoPlayer        = "NO_PLAYER"
	ErrCodeDuplicatePlayer = "DUPLICATE_PLAYER"
	ErrCodeEmptyName       = "EMPTY_NAME"
)

func errEmptyName(role Role) error {
	return oops.Code(ErrCodeEmptyName).
		With("role", role.String()).
		Errorf("%s name must not be empty", role)
}
