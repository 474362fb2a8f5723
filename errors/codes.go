package errors

// ErrorCode identifies an application error in API responses.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 200

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	// Upload
	ErrorCode_MISSING_AUDIO_FILE       ErrorCode = 2001
	ErrorCode_UNSUPPORTED_AUDIO_FORMAT ErrorCode = 2002
	ErrorCode_AUDIO_TOO_LARGE          ErrorCode = 2003

	// AI pipeline
	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 3001
	ErrorCode_AI_SUMMARY_FAILED       ErrorCode = 3002
	ErrorCode_AI_ACTION_ITEMS_FAILED  ErrorCode = 3003

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 4001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_MISSING_AUDIO_FILE:         "MISSING_AUDIO_FILE",
	ErrorCode_UNSUPPORTED_AUDIO_FORMAT:   "UNSUPPORTED_AUDIO_FORMAT",
	ErrorCode_AUDIO_TOO_LARGE:            "AUDIO_TOO_LARGE",
	ErrorCode_AI_TRANSCRIPTION_FAILED:    "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_SUMMARY_FAILED:          "AI_SUMMARY_FAILED",
	ErrorCode_AI_ACTION_ITEMS_FAILED:     "AI_ACTION_ITEMS_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText makes codes render as their names in JSON bodies
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
