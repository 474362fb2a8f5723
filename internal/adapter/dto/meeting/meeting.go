package meeting

// ProcessMeetingRequest holds the form fields sent next to the audio file
type ProcessMeetingRequest struct {
	Title string `form:"title" validate:"max=200"`
}

// ActionItemDTO represents one row of the action-item table
type ActionItemDTO struct {
	Task     string `json:"task"`
	Owner    string `json:"owner"`
	Deadline string `json:"deadline"`
}

// ActionItemsDTO is the action-item table as markdown plus parsed rows
type ActionItemsDTO struct {
	Markdown string          `json:"markdown"`
	Valid    bool            `json:"valid"`
	Items    []ActionItemDTO `json:"items"`
}

// StageErrorDTO describes a failed stage
type StageErrorDTO struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Kind      string `json:"kind,omitempty"`
	Retryable bool   `json:"retryable"`
}

// MeetingResponse is the API response for a processed recording
type MeetingResponse struct {
	RunID            string          `json:"run_id"`
	Title            string          `json:"title,omitempty"`
	Backend          string          `json:"backend"`
	Filename         string          `json:"filename"`
	Transcript       string          `json:"transcript"`
	TranscriptWords  int             `json:"transcript_words"`
	Summary          string          `json:"summary,omitempty"`
	SummaryError     *StageErrorDTO  `json:"summary_error,omitempty"`
	ActionItems      *ActionItemsDTO `json:"action_items,omitempty"`
	ActionItemsError *StageErrorDTO  `json:"action_items_error,omitempty"`
	DurationMS       int64           `json:"duration_ms"`
}

// StageEventDTO is the payload of one server-sent event
type StageEventDTO struct {
	RunID       string          `json:"run_id"`
	Stage       string          `json:"stage"`
	Output      string          `json:"output,omitempty"`
	HTML        string          `json:"html,omitempty"`
	ActionItems *ActionItemsDTO `json:"action_items,omitempty"`
	Error       *StageErrorDTO  `json:"error,omitempty"`
}

// BackendResponse describes the configured engines
type BackendResponse struct {
	Mode               string   `json:"mode"`
	Transcriber        string   `json:"transcriber"`
	Generator          string   `json:"generator"`
	TranscriptionModel string   `json:"transcription_model"`
	ChatModel          string   `json:"chat_model"`
	AcceptedFormats    []string `json:"accepted_formats"`
	MaxUploadBytes     int64    `json:"max_upload_bytes"`
}
