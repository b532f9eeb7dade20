package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrNoFieldsToUpdate    = errors.New("no fields provided for update")
	ErrNoEmployeesFound    = errors.New("no employees found")

	ErrInvalidCredentials      = errors.New("incorrect username or password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
