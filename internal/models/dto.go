package models

import "time"

type UserResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      UserRole `json:"role"`
	AvatarURL *string  `json:"avatarUrl"`
}

func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
	}
}

type LoginResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Role    UserRole `json:"role"`
}

// SessionResponse is the client-facing shape of a Session.
type SessionResponse struct {
	ID                 string        `json:"id"`
	TeacherID          string        `json:"teacherId"`
	TeacherName        string        `json:"teacherName"`
	LearnerIDs         []string      `json:"learnerIds"`
	LearnerNames       []string      `json:"learnerNames"`
	Start              time.Time     `json:"start"`
	End                time.Time     `json:"end"`
	Status             SessionStatus `json:"status"`
	CreatedAt          time.Time     `json:"createdAt"`
	CancellationReason *string       `json:"cancellationReason"`
	RequiresVehicle    bool          `json:"requiresVehicle"`
	VehicleID          *string       `json:"vehicleId"`
	Type               SessionType   `json:"type"`
	Capacity           *int          `json:"capacity"`
}
