package password

import "errors"

var (
	ErrInvalidCost           = errors.New("invalid bcrypt cost")
	ErrHashingFailed         = errors.New("password hashing failed")
	ErrEmptyHash             = errors.New("empty password hash")
	ErrUnsupportedHashSource = errors.New("unsupported password hash source")
)
