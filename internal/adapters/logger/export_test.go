package logger

// Private error formatting exported for white-box tests.
var (
	CollectErrorMessages = collectErrorMessages
	FormatErrorMessages  = formatErrorMessages
)
