package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-minutes/errors"
	dto "github.com/johnquangdev/meeting-minutes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-minutes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	meetinguc "github.com/johnquangdev/meeting-minutes/internal/usecase/meeting"
)

// Meeting handles the recording processing API
type Meeting struct {
	svc            meetinguc.Service
	maxUploadBytes int64
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(svc meetinguc.Service, maxUploadBytes int64, logger *zap.Logger) *Meeting {
	return &Meeting{svc: svc, maxUploadBytes: maxUploadBytes, logger: logger}
}

// Process runs the pipeline on an uploaded recording
// @Summary      Process meeting recording
// @Description  Transcribes the uploaded recording, then summarizes it and extracts action items. Summary and action-item failures are reported in the response instead of failing the request.
// @Tags         Meetings
// @Accept       multipart/form-data
// @Produce      json
// @Param        audio  formData  file    true   "Audio file (.mp3 .mp4 .mpeg .mpga .m4a .wav .webm .ogg .flac)"
// @Param        title  formData  string  false  "Meeting title"
// @Success      200    {object}  common.SuccessResponse{data=meeting.MeetingResponse}
// @Failure      400    {object}  common.ErrorResponse  "Missing audio file or invalid form"
// @Failure      413    {object}  common.ErrorResponse  "Audio file too large"
// @Failure      415    {object}  common.ErrorResponse  "Unsupported audio format"
// @Failure      422    {object}  common.ErrorResponse  "Transcription rejected the recording"
// @Failure      429    {object}  common.ErrorResponse  "Provider quota exceeded"
// @Failure      503    {object}  common.ErrorResponse  "Provider unavailable"
// @Router       /meetings/process [post]
func (h *Meeting) Process(c echo.Context) error {
	req, file, err := h.readUpload(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	defer file.Close()

	result, err := h.svc.Process(c.Request().Context(), req, nil)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(result))
}

// Stream runs the pipeline and pushes each stage as a server-sent event
// @Summary      Process meeting recording (streamed)
// @Description  Same input as /meetings/process. Emits `transcript`, `summary` and `action_items` events as each stage finishes, then `done` with the full result or `error`.
// @Tags         Meetings
// @Accept       multipart/form-data
// @Produce      text/event-stream
// @Param        audio  formData  file    true   "Audio file"
// @Param        title  formData  string  false  "Meeting title"
// @Success      200    {object}  meeting.StageEventDTO
// @Failure      400    {object}  common.ErrorResponse
// @Router       /meetings/process/stream [post]
func (h *Meeting) Stream(c echo.Context) error {
	req, file, err := h.readUpload(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	defer file.Close()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(200)
	res.Flush()

	emit := func(ev entities.StageEvent) {
		h.writeEvent(res, eventName(ev.Stage), presenter.ToStageEvent(ev))
	}

	result, err := h.svc.Process(c.Request().Context(), req, emit)
	if err != nil {
		h.writeEvent(res, "error", presenter.ToStageError(err))
		return nil
	}

	h.writeEvent(res, "done", presenter.ToMeetingResponse(result))
	return nil
}

// Backend describes the engines this deployment uses
// @Summary      Active backend
// @Description  Returns whether the hosted or local backend is configured, with provider and model names
// @Tags         Meetings
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=meeting.BackendResponse}
// @Router       /backend [get]
func (h *Meeting) Backend(c echo.Context) error {
	return HandleSuccess(h.logger, c, presenter.ToBackendResponse(h.svc.Backend(), h.maxUploadBytes))
}

// readUpload validates the multipart form. The returned file must be closed by the caller.
func (h *Meeting) readUpload(c echo.Context) (meetinguc.ProcessRequest, multipart.File, error) {
	var form dto.ProcessMeetingRequest
	if err := c.Bind(&form); err != nil {
		return meetinguc.ProcessRequest{}, nil, errors.ErrInvalidPayload()
	}
	if c.Echo().Validator != nil {
		if err := c.Validate(&form); err != nil {
			return meetinguc.ProcessRequest{}, nil, errors.ErrInvalidArgument(err.Error())
		}
	}

	fh, err := c.FormFile("audio")
	if err != nil {
		return meetinguc.ProcessRequest{}, nil, errors.ErrMissingAudioFile()
	}
	if !entities.IsSupportedAudio(fh.Filename) {
		return meetinguc.ProcessRequest{}, nil, errors.ErrUnsupportedAudioFormat(fh.Filename, entities.SupportedAudioExtensions)
	}
	if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
		return meetinguc.ProcessRequest{}, nil, errors.ErrAudioTooLarge(fh.Size, h.maxUploadBytes)
	}

	file, err := fh.Open()
	if err != nil {
		return meetinguc.ProcessRequest{}, nil, errors.ErrInternal(err)
	}

	return meetinguc.ProcessRequest{
		Title: form.Title,
		Upload: entities.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Size:        fh.Size,
			Body:        file,
		},
	}, file, nil
}

func (h *Meeting) writeEvent(w io.Writer, event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to encode event", zap.String("event", event), zap.Error(err))
		}
		return
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		if h.logger != nil {
			h.logger.Warn("client went away", zap.String("event", event), zap.Error(err))
		}
		return
	}
	if f, ok := w.(interface{ Flush() }); ok {
		f.Flush()
	}
}

// eventName maps pipeline stages onto the event names clients listen for
func eventName(stage entities.Stage) string {
	switch stage {
	case entities.StageTranscription:
		return "transcript"
	default:
		return string(stage)
	}
}
