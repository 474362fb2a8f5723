// Package ai holds the clients for the speech-to-text and language-model
// services the meeting pipeline talks to.
package ai

import "context"

// Audio is a staged recording handed to a transcriber
type Audio struct {
	// Path is a readable local file. Always set.
	Path string
	// URL is an optional remote copy reachable by hosted services.
	URL string
	// Filename is the name the user uploaded the recording with.
	Filename string
}

// Transcriber turns a recording into text
type Transcriber interface {
	Transcribe(ctx context.Context, audio Audio) (string, error)
}

// ChatModel answers a single system + user prompt
type ChatModel interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
