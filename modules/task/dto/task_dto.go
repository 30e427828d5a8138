package dto

import (
	"honeydew-api/modules/task/entity"
	"time"
)

// ===================== Request DTOs =====================

type CreateTaskRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type UpdateTaskRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// EstimateRequest asks for cost/time/difficulty estimates for a task idea.
type EstimateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// ===================== Response DTOs =====================

type TaskResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Location         string    `json:"location,omitempty"`
	MaterialEstimate string    `json:"material_estimate,omitempty"`
	TimeEstimate     string    `json:"time_estimate,omitempty"`
	Difficulty       string    `json:"difficulty,omitempty"`
	Completed        bool      `json:"completed"`
	CreatedAt        time.Time `json:"created_at"`
}

type EstimateResponse struct {
	MaterialEstimate string `json:"material_estimate"`
	TimeEstimate     string `json:"time_estimate"`
	Difficulty       string `json:"difficulty"`
}

// ===================== Mapper Functions =====================

func ToTaskResponse(t *entity.Task) *TaskResponse {
	resp := &TaskResponse{
		ID:        t.ID.String(),
		UserID:    t.UserID.String(),
		Name:      t.Name,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
	}

	if t.Description != nil {
		resp.Description = *t.Description
	}
	if t.Location != nil {
		resp.Location = *t.Location
	}
	if t.MaterialEstimate != nil {
		resp.MaterialEstimate = *t.MaterialEstimate
	}
	if t.TimeEstimate != nil {
		resp.TimeEstimate = *t.TimeEstimate
	}
	if t.Difficulty != nil {
		resp.Difficulty = *t.Difficulty
	}

	return resp
}

func ToTaskResponses(tasks []entity.Task) []TaskResponse {
	result := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		result = append(result, *ToTaskResponse(&tasks[i]))
	}
	return result
}
