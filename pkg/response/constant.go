package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	ValidationErrorMessage  = "Invalid request"
	InternalServerErrorCode = 500

	KindValidation = "VALIDATION_FAILED"
	KindInternal   = "INTERNAL"

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
