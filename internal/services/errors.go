package services

import (
	apperrors "unichip/pkg/errors"
)

const storeUnavailableMessage = "database operation failed, please retry later"

func badRequest(message string) error {
	return apperrors.New(apperrors.ErrCodeBadRequest, message)
}

func validationFailed(message string, details []string) error {
	return apperrors.Validation(message, details)
}

func unauthorized(message string) error {
	return apperrors.New(apperrors.ErrCodeUnauthorized, message)
}

func notFound(message string) error {
	return apperrors.New(apperrors.ErrCodeNotFound, message)
}

func conflict(message string) error {
	return apperrors.New(apperrors.ErrCodeConflict, message)
}

// storeUnavailable hides the driver error from callers; it stays in the chain for logs.
func storeUnavailable(err error) error {
	return apperrors.Wrap(apperrors.ErrCodeStoreUnavailable, storeUnavailableMessage, err)
}
