package dto

import "github.com/noah-isme/abitur-api/internal/models"

// EvaluateRequest captures POST /evaluations and POST /evaluations/export payloads.
type EvaluateRequest struct {
	Title    string           `json:"title" validate:"max=128"`
	Subjects []models.Subject `json:"subjects" validate:"max=64,dive"`
}
