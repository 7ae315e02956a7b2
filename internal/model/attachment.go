package model

// Attachment describes a file stored on the backend for an activity.
// The binary content is server-held; the client only uploads, downloads,
// and deletes.
type Attachment struct {
	ID         int64  `json:"id"`
	ActivityID int64  `json:"activity_id"`
	Filename   string `json:"filename"`
	Filesize   int64  `json:"filesize"`
}
