package common

import "errors"

// ErrorIncorrectLevel is returned for unknown log level names.
var ErrorIncorrectLevel = errors.New("incorrect log level")
