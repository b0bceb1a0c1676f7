package service

import "errors"

// Service errors
var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrSeasonNotFound   = errors.New("season not found")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrPMSNotLinked     = errors.New("property is not linked to a PMS property")
)
