package models

// ErrorResponse represents an error response body
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid request"`
}

// MessageResponse represents a success message response
type MessageResponse struct {
	Message string `json:"message" example:"Operation completed successfully"`
}

// TokenResponse represents a login response with JWT token
type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// SendNotificationRequest represents the request body for sending a notification
type SendNotificationRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Title    string `json:"title" example:"Welcome"`
	Body     string `json:"body" example:"Welcome to our platform!"`
	Category string `json:"category" example:"info" enums:"info,warning,error"`
}

// SendResponse reports how a dispatched notification was delivered.
// Delivery is "realtime" when the recipient had a live connection and the push
// succeeded, "saved_for_later" otherwise.
type SendResponse struct {
	Success      bool         `json:"success"`
	Notification Notification `json:"notification"`
	Delivery     string       `json:"delivery" enums:"realtime,saved_for_later"`
}

// SendRoleRequest represents the request body for a role broadcast
type SendRoleRequest struct {
	Role     string `json:"role" example:"admin"`
	Title    string `json:"title" example:"Maintenance window"`
	Body     string `json:"body" example:"The system goes down at midnight."`
	Category string `json:"category" example:"warning"`
}

// SendRoleResponse reports how many recipients a role broadcast reached
type SendRoleResponse struct {
	Success bool `json:"success"`
	Sent    int  `json:"sent"`
}

// NotificationsResponse wraps a notification listing
type NotificationsResponse struct {
	Success       bool           `json:"success"`
	Notifications []Notification `json:"notifications"`
}

// RegisterUserRequest represents the request body for registering a user
type RegisterUserRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Role     string `json:"role" example:"user"`
	Password string `json:"password" example:"s3cret"`
}

// ExistsRequest represents the request body for an existence check
type ExistsRequest struct {
	Email string `json:"email" example:"user@example.com"`
}

// ExistsResponse reports whether a user exists
type ExistsResponse struct {
	Exists bool  `json:"exists"`
	User   *User `json:"user,omitempty"`
}

// UsersResponse wraps a user listing
type UsersResponse struct {
	Success bool   `json:"success"`
	Users   []User `json:"users"`
}
