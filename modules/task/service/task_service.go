package service

import (
	"context"
	"honeydew-api/core/errors"
	"honeydew-api/core/queue"
	"honeydew-api/modules/task/dto"
	"honeydew-api/modules/task/entity"
	"honeydew-api/modules/task/repository"
	"strings"

	"github.com/google/uuid"
)

// TaskService handles task business logic
type TaskService struct {
	repo      repository.TaskRepositoryInterface
	estimator *Estimator
	queue     *queue.Queue
}

// TaskServiceInterface defines the service contract
type TaskServiceInterface interface {
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, *errors.AppError)
	GetMyTasks(ctx context.Context, userID uuid.UUID) ([]dto.TaskResponse, *errors.AppError)
	GetTaskByID(ctx context.Context, userID, taskID uuid.UUID) (*dto.TaskResponse, *errors.AppError)
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, *errors.AppError)
	CompleteTask(ctx context.Context, userID, taskID uuid.UUID) (*dto.TaskResponse, *errors.AppError)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) *errors.AppError
	Estimate(req *dto.EstimateRequest) (*dto.EstimateResponse, *errors.AppError)
}

func NewTaskService(repo repository.TaskRepositoryInterface, q *queue.Queue) TaskServiceInterface {
	return &TaskService{
		repo:      repo,
		estimator: NewEstimator(),
		queue:     q,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, *errors.AppError) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Task name is required", nil)
	}

	task := &entity.Task{
		UserID: userID,
		Name:   name,
	}
	if req.Description != "" {
		task.Description = &req.Description
	}
	if req.Location != "" {
		task.Location = &req.Location
	}

	// Estimates are filled in at creation so the task card renders complete
	est := s.estimator.Estimate(name, req.Description)
	task.MaterialEstimate = &est.MaterialEstimate
	task.TimeEstimate = &est.TimeEstimate
	task.Difficulty = &est.Difficulty

	created, err := s.repo.CreateTask(ctx, task)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create task", err)
	}

	if s.queue != nil {
		s.queue.EnqueueBadgeEvaluate(ctx, userID)
	}

	return dto.ToTaskResponse(created), nil
}

func (s *TaskService) GetMyTasks(ctx context.Context, userID uuid.UUID) ([]dto.TaskResponse, *errors.AppError) {
	tasks, err := s.repo.GetTasksByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get tasks", err)
	}

	return dto.ToTaskResponses(tasks), nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, userID, taskID uuid.UUID) (*dto.TaskResponse, *errors.AppError) {
	task, appErr := s.ownedTask(ctx, userID, taskID)
	if appErr != nil {
		return nil, appErr
	}

	return dto.ToTaskResponse(task), nil
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, *errors.AppError) {
	task, appErr := s.ownedTask(ctx, userID, taskID)
	if appErr != nil {
		return nil, appErr
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		task.Name = name
	}
	if req.Description != "" {
		task.Description = &req.Description
	}
	if req.Location != "" {
		task.Location = &req.Location
	}

	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update task", err)
	}

	return dto.ToTaskResponse(task), nil
}

func (s *TaskService) CompleteTask(ctx context.Context, userID, taskID uuid.UUID) (*dto.TaskResponse, *errors.AppError) {
	task, appErr := s.ownedTask(ctx, userID, taskID)
	if appErr != nil {
		return nil, appErr
	}

	if !task.Completed {
		if err := s.repo.MarkCompleted(ctx, taskID); err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to complete task", err)
		}
		task.Completed = true

		if s.queue != nil {
			s.queue.EnqueueBadgeEvaluate(ctx, userID)
		}
	}

	return dto.ToTaskResponse(task), nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) *errors.AppError {
	if _, appErr := s.ownedTask(ctx, userID, taskID); appErr != nil {
		return appErr
	}

	if err := s.repo.DeleteTask(ctx, taskID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete task", err)
	}

	return nil
}

func (s *TaskService) Estimate(req *dto.EstimateRequest) (*dto.EstimateResponse, *errors.AppError) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Task name is required", nil)
	}

	return s.estimator.Estimate(req.Name, req.Description), nil
}

// ownedTask loads a task and enforces that it belongs to the caller.
func (s *TaskService) ownedTask(ctx context.Context, userID, taskID uuid.UUID) (*entity.Task, *errors.AppError) {
	task, err := s.repo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get task", err)
	}
	if task == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Task not found", nil)
	}
	if task.UserID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not your task", nil)
	}

	return task, nil
}
