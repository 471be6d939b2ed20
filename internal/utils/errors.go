package utils

import "errors"

// ErrUnknownIDGenerator is returned by NewIDGenerator for unsupported names.
var ErrUnknownIDGenerator = errors.New("unknown id generator")
