package realtime

import "pushnotify/models"

// Inbound envelope. The only message the session acts on is
// {"type":"auth","userId":N}; everything else is ignored.
type envelope struct {
	Type   string `json:"type"`
	UserID uint   `json:"userId"`
}

type connectionAck struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type authSuccess struct {
	Type   string `json:"type"`
	UserID uint   `json:"userId"`
}

type unreadBatch struct {
	Type          string                `json:"type"`
	Count         int                   `json:"count"`
	Notifications []models.Notification `json:"notifications"`
}
