package shell

import "errors"

var ErrInvalidLanguage = errors.New("unsupported language")
