package incident

import "errors"

var ErrSubmitFailed = errors.New("failed to submit incident report")
