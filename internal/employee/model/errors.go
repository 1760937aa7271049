package model

import "errors"

var (
	// ErrInvalidID indicates that the provided employee ID is null or empty.
	ErrInvalidID = errors.New("employee ID is null or empty")
	// ErrInvalidInput indicates that the employee creation input is missing.
	ErrInvalidInput = errors.New("employee input cannot be null")
	// ErrNotFound indicates that the upstream reported no employee for the ID.
	ErrNotFound = errors.New("employee not found")
	// ErrUpstream indicates a transport-level failure calling the upstream API.
	ErrUpstream = errors.New("upstream employee API request failed")
	// ErrCreateFailed indicates the upstream accepted the call but returned
	// no created employee.
	ErrCreateFailed = errors.New("employee creation failed")
)
