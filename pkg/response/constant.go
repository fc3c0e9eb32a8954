package response

const (
	// MessageSuccess is the default message for successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage is returned when internals must stay hidden.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error_code for unexpected failures.
	InternalServerErrorCode = 500

	// DateFormat is the wire format for Date values.
	DateFormat = "2006-01-02"

	// DateTimeFormat is the wire format for DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)
