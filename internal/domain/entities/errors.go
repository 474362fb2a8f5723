package entities

import "errors"

// Domain errors
var (
	ErrEmptyUpload        = errors.New("uploaded file is empty")
	ErrRecordingNotStaged = errors.New("recording is not staged")
	ErrEmptyTranscript    = errors.New("transcript is empty")
)
