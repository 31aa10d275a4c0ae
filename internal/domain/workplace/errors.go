package workplace

import "errors"

var ErrLocationNotFound = errors.New("workplace location not found")
