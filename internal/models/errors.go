package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Officer errors
var ErrOfficerRegistrationNotUnique = errors.New("the officer registration number is already in use")

// Vehicle errors
var (
	ErrVehiclePlateNotUnique = errors.New("the vehicle plate is already in use")
	ErrVehicleTagNotUnique   = errors.New("the vehicle registration tag is already in use")
)

// Maintenance order errors
var ErrOrderNumberNotUnique = errors.New("the order number is already in use")

// Reference value errors
var (
	ErrReferenceValueExists   = errors.New("the vehicle already has a reference value record")
	ErrReferenceValueTooLow   = errors.New("the reference value must be more than one Real")
	ErrReferenceValueConflict = errors.New("the reference value was changed by someone else, check the current value and try again")
)

// User errors
var ErrUsernameNotUnique = errors.New("the username is already in use")
