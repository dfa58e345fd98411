package errors

import "fmt"

// SyncFailure is a sync error carrying the provider's own code and message.
// Kind is one of ErrSyncFailed, ErrSyncTimeout, ErrProviderAuth or ErrTokenExpired.
type SyncFailure struct {
	Kind            *BaseError
	ProviderCode    string
	ProviderMessage string
	Err             error
}

// NewSyncFailure creates a sync failure of the given kind
func NewSyncFailure(kind *BaseError, providerCode, providerMessage string, cause error) *SyncFailure {
	return &SyncFailure{
		Kind:            kind,
		ProviderCode:    providerCode,
		ProviderMessage: providerMessage,
		Err:             cause,
	}
}

// Error implements the error interface
func (e *SyncFailure) Error() string {
	msg := e.Kind.ErrorCode()
	if e.ProviderCode != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.ProviderCode)
	}
	if e.ProviderMessage != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.ProviderMessage)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As
func (e *SyncFailure) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

// HTTPCode returns the HTTP status code
func (e *SyncFailure) HTTPCode() int {
	return e.Kind.HTTPCode()
}

// ErrorCode returns the business error code
func (e *SyncFailure) ErrorCode() string {
	return e.Kind.ErrorCode()
}

// Message returns the user-friendly error message
func (e *SyncFailure) Message() string {
	return e.Kind.Message()
}

// Details returns the provider code and message verbatim
func (e *SyncFailure) Details() string {
	switch {
	case e.ProviderCode != "" && e.ProviderMessage != "":
		return e.ProviderCode + ": " + e.ProviderMessage
	case e.ProviderCode != "":
		return e.ProviderCode
	default:
		return e.ProviderMessage
	}
}

// HistoryCode is the error code written to sync history
func (e *SyncFailure) HistoryCode() string {
	if e.ProviderCode != "" {
		return e.ProviderCode
	}

	return e.Kind.ErrorCode()
}

// HistoryMessage is the error message written to sync history
func (e *SyncFailure) HistoryMessage() string {
	if e.ProviderMessage != "" {
		return e.ProviderMessage
	}
	if e.Err != nil {
		return e.Err.Error()
	}

	return e.Kind.Message()
}
