package errcodes

import (
	"net/http"

	"git.appkode.ru/pub/go/failure"
)

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	AccessTokenExpired  failure.ErrorCode = "AccessTokenExpired"
	AccessTokenInvalid  failure.ErrorCode = "AccessTokenInvalid"
	NotFound            failure.ErrorCode = "NotFound"
	InvalidPaging       failure.ErrorCode = "InvalidPaging"

	InvalidRouletteID  failure.ErrorCode = "InvalidRouletteID"
	InvalidUserID      failure.ErrorCode = "InvalidUserID"
	InvalidCharacterID failure.ErrorCode = "InvalidCharacterID"
	InvalidRoulette    failure.ErrorCode = "InvalidRoulette"
	InvalidAmount      failure.ErrorCode = "InvalidAmount"

	RouletteNotFound  failure.ErrorCode = "RouletteNotFound"
	UserNotFound      failure.ErrorCode = "UserNotFound"
	UserAlreadyExists failure.ErrorCode = "UserAlreadyExists"
	CharacterNotFound failure.ErrorCode = "CharacterNotFound"

	InsufficientFunds     failure.ErrorCode = "InsufficientFunds"
	RouletteEmpty         failure.ErrorCode = "RouletteEmpty"
	SpinConflict          failure.ErrorCode = "SpinConflict"
	VersionConflict       failure.ErrorCode = "VersionConflict"
	ConcurrentUpdate      failure.ErrorCode = "ConcurrentUpdate"
	InternalInconsistency failure.ErrorCode = "InternalInconsistency"
	PersistenceFailure    failure.ErrorCode = "PersistenceFailure"
	MarvelUnavailable     failure.ErrorCode = "MarvelUnavailable"
)

//nolint:gochecknoglobals
var httpStatuses = map[failure.ErrorCode]int{
	Forbidden:          http.StatusForbidden,
	ValidationError:    http.StatusBadRequest,
	AccessTokenExpired: http.StatusUnauthorized,
	AccessTokenInvalid: http.StatusUnauthorized,
	NotFound:           http.StatusNotFound,
	InvalidPaging:      http.StatusBadRequest,

	InvalidRouletteID:  http.StatusBadRequest,
	InvalidUserID:      http.StatusBadRequest,
	InvalidCharacterID: http.StatusBadRequest,
	InvalidRoulette:    http.StatusBadRequest,
	InvalidAmount:      http.StatusBadRequest,

	RouletteNotFound:  http.StatusNotFound,
	UserNotFound:      http.StatusNotFound,
	UserAlreadyExists: http.StatusConflict,
	CharacterNotFound: http.StatusNotFound,

	InsufficientFunds: http.StatusBadRequest,
	RouletteEmpty:     http.StatusUnprocessableEntity,
	SpinConflict:      http.StatusConflict,
	VersionConflict:   http.StatusConflict,
	ConcurrentUpdate:  http.StatusConflict,
	MarvelUnavailable: http.StatusBadGateway,
}

// HTTPStatus maps an error code to the status it is served with.
// Unknown codes are internal errors.
func HTTPStatus(code failure.ErrorCode) int {
	if status, ok := httpStatuses[code]; ok {
		return status
	}

	return http.StatusInternalServerError
}
