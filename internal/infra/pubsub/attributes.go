package pubsub

import (
	"wearsync/internal/domain/constants"
	"wearsync/internal/domain/service"
)

// eventAttributes are the message attributes used for filtering and tracing
func eventAttributes(event *service.SyncRequestedEvent) map[string]string {
	attributes := map[string]string{
		constants.AttributeUserID:   event.UserID,
		constants.AttributeSyncType: event.SyncType,
	}
	if event.RequestID != "" {
		attributes[constants.AttributeRequestID] = event.RequestID
	}

	return attributes
}
