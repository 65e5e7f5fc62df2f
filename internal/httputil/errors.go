package httputil

import "errors"

var ErrInvalidBody = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
