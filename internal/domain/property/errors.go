package property

import "github.com/mallhub/backend/internal/domain/shared"

// Messages returned to clients. They are part of the public API.
const (
	MsgAccountExists    = "Account already exists!"
	MsgMallExists       = "Mall already exists!"
	MsgUnitExists       = "Unit already exists!"
	MsgAccountsExist    = "One or more accounts already exist!"
	MsgMallsExist       = "One or more malls already exist!"
	MsgUnitsExist       = "One or more units already exist!"
	MsgAccountNotFound  = "Account does not exist!"
	MsgMallNotFound     = "Mall does not exist!"
	MsgUnitNotFound     = "Unit does not exist!"
	MsgAccountsNotFound = "`page` or `per_page` specified incorrectly or accounts are not found!"
	MsgMallsNotFound    = "`page` or `per_page` specified incorrectly or malls are not found!"
	MsgUnitsNotFound    = "`page` or `per_page` specified incorrectly or units are not found!"
)

// ErrAccountExists returns the error for a duplicate account name
func ErrAccountExists() error { return shared.NewAlreadyExistsError(MsgAccountExists) }

// ErrMallExists returns the error for a duplicate mall name
func ErrMallExists() error { return shared.NewAlreadyExistsError(MsgMallExists) }

// ErrUnitExists returns the error for a duplicate unit name
func ErrUnitExists() error { return shared.NewAlreadyExistsError(MsgUnitExists) }

// ErrAccountNotFound returns the error for a missing account
func ErrAccountNotFound() error { return shared.NewDoesNotExistError(MsgAccountNotFound) }

// ErrMallNotFound returns the error for a missing mall
func ErrMallNotFound() error { return shared.NewDoesNotExistError(MsgMallNotFound) }

// ErrUnitNotFound returns the error for a missing unit
func ErrUnitNotFound() error { return shared.NewDoesNotExistError(MsgUnitNotFound) }
