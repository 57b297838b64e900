package domain

import "errors"

var ErrValidation = errors.New("validation failed")
var ErrRecordNotFound = errors.New("record not found")
var ErrDuplicateRecord = errors.New("duplicate record")
var ErrConsistency = errors.New("posting left accounts in an inconsistent state")
