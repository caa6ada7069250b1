package domain

import "errors"

var (
	MessageHealthy              = "recipe catalog is up"
	MessageInternalServerError  = "Internal server error"
	MessageFailedProcessRequest = "failed to process request"

	ErrRecordNotFound = errors.New("record not found")
)

const (
	StatusOK = "ok"
)
