package models

import "time"

type User struct {
	ID                int64      `json:"id"`
	Username          string     `json:"username"`
	Password          string     `json:"-"`
	CreatedAt         time.Time  `json:"created_at"`
	CurrentStreak     int        `json:"current_streak"`
	LastStudyDate     *time.Time `json:"last_study_date,omitempty"`
	TotalStudyMinutes int        `json:"total_study_minutes"`
	Points            int        `json:"points"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
