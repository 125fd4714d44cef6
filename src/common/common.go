package common

import (
	"context"
	"errors"
	"log"
	"net/http"

	"gorm.io/gorm"
)

var (
	ErrSlotNotFound       = errors.New("slot not found")
	ErrSlotExists         = errors.New("slot already exists")
	ErrAlreadyBooked      = errors.New("slot is already booked")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ErrorStatus maps a domain error to its HTTP status. Anything outside the
// taxonomy is a validation-grade client error.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrSlotNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyBooked), errors.Is(err, ErrSlotExists):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

// translateStorageErr folds driver and deadline failures into
// ErrStorageUnavailable while letting domain errors through untouched.
func translateStorageErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrSlotNotFound),
		errors.Is(err, ErrSlotExists),
		errors.Is(err, ErrAlreadyBooked):
		return err
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrSlotExists
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, gorm.ErrInvalidTransaction):
		log.Printf("Storage operation aborted: %s\n", err.Error())
		return ErrStorageUnavailable
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrSlotNotFound
	default:
		log.Printf("Storage operation failed: %s\n", err.Error())
		return ErrStorageUnavailable
	}
}
