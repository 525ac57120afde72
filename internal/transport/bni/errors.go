package bni

import "errors"

// ErrNoRequests нет заявок в статусе PENDING.
var ErrNoRequests = errors.New("no pending requests")
