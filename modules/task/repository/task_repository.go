package repository

import (
	"context"
	"database/sql"
	"honeydew-api/core/database"
	"honeydew-api/core/logger"
	"honeydew-api/modules/task/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TaskRepository handles task database operations
type TaskRepository struct {
	DB database.Database
}

func NewTaskRepository(db database.Database) *TaskRepository {
	return &TaskRepository{DB: db}
}

// TaskRepositoryInterface defines the repository contract
type TaskRepositoryInterface interface {
	CreateTask(ctx context.Context, task *entity.Task) (*entity.Task, error)
	GetTaskByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	GetTasksByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Task, error)
	GetTasksByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]entity.Task, error)
	UpdateTask(ctx context.Context, task *entity.Task) error
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

func (r *TaskRepository) CreateTask(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	query := `
		INSERT INTO tasks (user_id, name, description, location, material_estimate, time_estimate, difficulty)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, name, description, location, material_estimate, time_estimate,
		          difficulty, completed, created_at, updated_at
	`

	var created entity.Task
	err := r.DB.GetContext(ctx, &created, query,
		task.UserID, task.Name, task.Description, task.Location,
		task.MaterialEstimate, task.TimeEstimate, task.Difficulty)
	if err != nil {
		logger.Error("TaskRepository:CreateTask", err)
		return nil, err
	}

	return &created, nil
}

func (r *TaskRepository) GetTaskByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	query := `
		SELECT id, user_id, name, description, location, material_estimate, time_estimate,
		       difficulty, completed, created_at, updated_at
		FROM tasks WHERE id = $1
	`

	var task entity.Task
	err := r.DB.GetContext(ctx, &task, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TaskRepository:GetTaskByID", err)
		return nil, err
	}

	return &task, nil
}

func (r *TaskRepository) GetTasksByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Task, error) {
	query := `
		SELECT id, user_id, name, description, location, material_estimate, time_estimate,
		       difficulty, completed, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var tasks []entity.Task
	err := r.DB.SelectContext(ctx, &tasks, query, userID)
	if err != nil {
		logger.Error("TaskRepository:GetTasksByUserID", err)
		return nil, err
	}

	return tasks, nil
}

func (r *TaskRepository) GetTasksByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]entity.Task, error) {
	if len(userIDs) == 0 {
		return []entity.Task{}, nil
	}

	query := `
		SELECT id, user_id, name, description, location, material_estimate, time_estimate,
		       difficulty, completed, created_at, updated_at
		FROM tasks
		WHERE user_id = ANY($1::uuid[])
		ORDER BY created_at DESC
	`

	ids := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		ids = append(ids, id.String())
	}

	var tasks []entity.Task
	err := r.DB.SelectContext(ctx, &tasks, query, pq.Array(ids))
	if err != nil {
		logger.Error("TaskRepository:GetTasksByUserIDs", err)
		return nil, err
	}

	return tasks, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, task *entity.Task) error {
	query := `
		UPDATE tasks
		SET name = $2, description = $3, location = $4, updated_at = NOW()
		WHERE id = $1
	`
	if err := r.DB.ExecContext(ctx, query, task.ID, task.Name, task.Description, task.Location); err != nil {
		logger.Error("TaskRepository:UpdateTask", err)
		return err
	}
	return nil
}

func (r *TaskRepository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE tasks
		SET completed = TRUE, updated_at = NOW()
		WHERE id = $1
	`
	if err := r.DB.ExecContext(ctx, query, id); err != nil {
		logger.Error("TaskRepository:MarkCompleted", err)
		return err
	}
	return nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM tasks WHERE id = $1
	`
	if err := r.DB.ExecContext(ctx, query, id); err != nil {
		logger.Error("TaskRepository:DeleteTask", err)
		return err
	}
	return nil
}
