package presenter

import (
	stdErrors "errors"

	"github.com/johnquangdev/meeting-minutes/errors"
	"github.com/johnquangdev/meeting-minutes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
)

// ToMeetingResponse converts a MeetingResult to its API DTO
func ToMeetingResponse(r *entities.MeetingResult) *meeting.MeetingResponse {
	if r == nil {
		return nil
	}

	response := &meeting.MeetingResponse{
		RunID:            r.RunID.String(),
		Title:            r.Title,
		Backend:          r.Backend,
		SummaryError:     ToStageError(r.SummaryErr),
		ActionItems:      ToActionItems(r.ActionItems),
		ActionItemsError: ToStageError(r.ActionItemsErr),
		DurationMS:       r.Duration().Milliseconds(),
	}

	if r.Recording != nil {
		response.Filename = r.Recording.Filename
	}
	if r.Transcript != nil {
		response.Transcript = r.Transcript.Text
		response.TranscriptWords = r.Transcript.WordCount()
	}
	if r.Summary != nil {
		response.Summary = r.Summary.Text
	}

	return response
}

// ToActionItems converts the parsed table
func ToActionItems(t *entities.ActionItemTable) *meeting.ActionItemsDTO {
	if t == nil {
		return nil
	}

	items := make([]meeting.ActionItemDTO, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, meeting.ActionItemDTO{Task: it.Task, Owner: it.Owner, Deadline: it.Deadline})
	}
	return &meeting.ActionItemsDTO{Markdown: t.Markdown, Valid: t.Valid, Items: items}
}

// ToStageEvent converts a pipeline event for streaming
func ToStageEvent(ev entities.StageEvent) *meeting.StageEventDTO {
	dto := &meeting.StageEventDTO{
		RunID:       ev.RunID.String(),
		Stage:       string(ev.Stage),
		ActionItems: ToActionItems(ev.Table),
		Error:       ToStageError(ev.Err),
	}
	if ev.Err == nil {
		dto.Output = ev.Output
		if ev.Stage != entities.StageTranscription {
			dto.HTML = string(RenderHTML(ev.Output))
		}
	}
	return dto
}

// ToStageError renders a stage failure the way users see it
func ToStageError(err error) *meeting.StageErrorDTO {
	if err == nil {
		return nil
	}

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return &meeting.StageErrorDTO{
			Code:      appErr.Code.String(),
			Message:   appErr.Describe(),
			Kind:      appErr.Details["kind"],
			Retryable: appErr.Details["retryable"] == "true",
		}
	}

	return &meeting.StageErrorDTO{
		Code:    errors.ErrorCode_INTERNAL.String(),
		Message: err.Error(),
	}
}

// ToBackendResponse converts the backend description
func ToBackendResponse(info entities.BackendInfo, maxUploadBytes int64) *meeting.BackendResponse {
	return &meeting.BackendResponse{
		Mode:               info.Mode,
		Transcriber:        info.Transcriber,
		Generator:          info.Generator,
		TranscriptionModel: info.TranscriptionModel,
		ChatModel:          info.ChatModel,
		AcceptedFormats:    entities.SupportedAudioExtensions,
		MaxUploadBytes:     maxUploadBytes,
	}
}
