package cmd

import "fmt"

// Stable error codes reported in the CLI's JSON error envelope.
const (
	CodeInvalidArgs      = "INVALID_ARGS"
	CodeInvalidExtract   = "INVALID_EXTRACT"
	CodeLanguageRequired = "LANGUAGE_REQUIRED"
	CodeUnknownLanguage  = "UNKNOWN_LANGUAGE"
	CodeExecutionError   = "EXECUTION_ERROR"
)

// CodedError pairs a stable machine-readable code with a human message.
type CodedError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *CodedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func coded(code, format string, args ...any) *CodedError {
	return &CodedError{Code: code, Message: fmt.Sprintf(format, args...)}
}
