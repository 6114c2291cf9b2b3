package worker

import (
	"github.com/bornebyte/notes/internal/service"
)

// StartNotificationRecorder registers the audit trail handlers.
func StartNotificationRecorder(recorder *service.NotificationRecorder) {
	if recorder == nil {
		return
	}
	recorder.RegisterHandlers()
}
