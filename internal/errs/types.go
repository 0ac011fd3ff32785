package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type AlreadyExistsError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// UnsupportedFormatError marks an export format outside the closed
// csv/json/pdf set.
type UnsupportedFormatError struct {
	ErrorMessage
}

type DatabaseError struct {
	ErrorMessage
	Operation string
	Cause     error
}

func (e *DatabaseError) Unwrap() error { return e.Cause }

type ExternalServiceError struct {
	ErrorMessage
	Service   string
	Transient bool
	Cause     error
}

func (e *ExternalServiceError) Unwrap() error { return e.Cause }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewAlreadyExistsError(message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewUnsupportedFormatError(format string) *UnsupportedFormatError {
	return &UnsupportedFormatError{
		ErrorMessage: ErrorMessage{Message: "unsupported export format: " + format},
	}
}

func NewDatabaseError(operation, message string, cause error) *DatabaseError {
	return &DatabaseError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
		Cause:        cause,
	}
}

func NewExternalServiceError(service, message string, transient bool, cause error) *ExternalServiceError {
	return &ExternalServiceError{
		ErrorMessage: ErrorMessage{Message: message},
		Service:      service,
		Transient:    transient,
		Cause:        cause,
	}
}
