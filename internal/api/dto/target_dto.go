package dto

import "time"

// CreateTargetRequest payload for POST /api/targets.
type CreateTargetRequest struct {
	Date    string `json:"date"`
	Message string `json:"message"`
}

// TargetResponse is a target annotated with countdown values.
type TargetResponse struct {
	ID                 int64     `json:"id"`
	Date               time.Time `json:"date"`
	CreatedAt          time.Time `json:"created_at"`
	Message            string    `json:"message"`
	Months             int       `json:"months"`
	Days               int       `json:"days"`
	Hours              int       `json:"hours"`
	Minutes            int       `json:"minutes"`
	ProgressPercentage int       `json:"progressPercentage"`
}
