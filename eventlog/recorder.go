package eventlog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/YuxiangJiangCT/billassistant/dto"
)

var (
	WTPHeader   = []string{"timestamp", "choice", "reason", "user_id"}
	EventHeader = []string{"timestamp", "event_type", "user_id", "extra"}
)

// EventRecorder persists feedback posted by the frontend.
type EventRecorder interface {
	RecordWTP(req dto.WTPRequest) error
	RecordSessionEvent(req dto.SessionEventRequest) error
}

type Recorder struct {
	wtp    *CSVLog
	events *CSVLog
	now    func() time.Time
}

func NewRecorder(wtpPath, eventPath string) *Recorder {
	return &Recorder{
		wtp:    NewCSVLog(wtpPath, WTPHeader),
		events: NewCSVLog(eventPath, EventHeader),
		now:    time.Now,
	}
}

func (r *Recorder) timestamp() string {
	return r.now().UTC().Format(time.RFC3339)
}

func (r *Recorder) RecordWTP(req dto.WTPRequest) error {
	return r.wtp.Append([]string{r.timestamp(), req.Choice, req.Reason, req.UserID})
}

func (r *Recorder) RecordSessionEvent(req dto.SessionEventRequest) error {
	extra := "{}"
	if raw := bytes.TrimSpace(req.Extra); len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return fmt.Errorf("encoding extra: %w", err)
		}
		extra = buf.String()
	}
	return r.events.Append([]string{r.timestamp(), req.EventType, req.UserID, extra})
}
