package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Stage failure wording shown to end users. The summary prefix has no trailing colon.
const (
	TranscriptionFailedPrefix = "An error occurred during the transcription:"
	SummaryFailedPrefix       = "Error during summarization"
	ActionItemsFailedPrefix   = "Error extracting action items:"
)

// AppError is the custom error type for the application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// Describe renders the error the way it is shown to end users: message then cause.
func (e AppError) Describe() string {
	if e.Raw == nil {
		return e.Message
	}
	return strings.TrimSpace(fmt.Sprintf("%s %v", e.Message, e.Raw))
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// WithHTTPCode overrides the HTTP status
func (e AppError) WithHTTPCode(code int) AppError {
	e.HTTPCode = code
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_INTERNAL,
		Message:   "Internal server error",
		Timestamp: time.Now(),
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode:  http.StatusBadRequest,
		Code:      ErrorCode_INVALID_ARGUMENT,
		Message:   message,
		Timestamp: time.Now(),
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode:  http.StatusBadRequest,
		Code:      ErrorCode_INVALID_PAYLOAD,
		Message:   "Invalid payload",
		Timestamp: time.Now(),
	}
}

// Upload Errors
func ErrMissingAudioFile() AppError {
	return AppError{
		HTTPCode:  http.StatusBadRequest,
		Code:      ErrorCode_MISSING_AUDIO_FILE,
		Message:   "Missing audio file",
		Timestamp: time.Now(),
	}
}

func ErrUnsupportedAudioFormat(filename string, allowed []string) AppError {
	return AppError{
		HTTPCode:  http.StatusUnsupportedMediaType,
		Code:      ErrorCode_UNSUPPORTED_AUDIO_FORMAT,
		Message:   "Unsupported audio format",
		Timestamp: time.Now(),
	}.WithDetail("filename", filename).
		WithDetail("allowed", strings.Join(allowed, ","))
}

func ErrAudioTooLarge(size, limit int64) AppError {
	return AppError{
		HTTPCode:  http.StatusRequestEntityTooLarge,
		Code:      ErrorCode_AUDIO_TOO_LARGE,
		Message:   "Audio file is too large",
		Timestamp: time.Now(),
	}.WithDetail("size", fmt.Sprintf("%d", size)).
		WithDetail("limit", fmt.Sprintf("%d", limit))
}

// AI Pipeline Errors
func ErrAITranscriptionFailed(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_AI_TRANSCRIPTION_FAILED,
		Message:   TranscriptionFailedPrefix,
		Timestamp: time.Now(),
	}
}

func ErrAISummaryFailed(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_AI_SUMMARY_FAILED,
		Message:   SummaryFailedPrefix,
		Timestamp: time.Now(),
	}
}

func ErrAIActionItemsFailed(err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_AI_ACTION_ITEMS_FAILED,
		Message:   ActionItemsFailedPrefix,
		Timestamp: time.Now(),
	}
}

// Integration Errors
func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:       err,
		HTTPCode:  http.StatusInternalServerError,
		Code:      ErrorCode_INTEGRATION_STORAGE_FAILED,
		Message:   fmt.Sprintf("Storage operation failed: %s", operation),
		Timestamp: time.Now(),
	}
}
