package dto

type CreateNotificationRequest struct {
	Message string `json:"message" example:"Saved"`
	Type    string `json:"type" example:"success"`
	// Duration in milliseconds; omitted means the default, 0 or less disables auto-removal.
	Duration *int64 `json:"duration,omitempty" example:"3000"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Duration  int64  `json:"duration"`
	CreatedAt string `json:"createdAt"`
}
