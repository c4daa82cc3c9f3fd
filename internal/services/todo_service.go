package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/repository"
)

var (
	ErrTodoNotFound  = errors.New("todo not found")
	ErrTitleRequired = errors.New("title is required")
)

// TodoService handles todo business logic. All operations are scoped to
// the calling user.
type TodoService struct {
	todoRepo repository.TodoRepository
}

// NewTodoService creates a new TodoService
func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// Search returns a page of the user's todos and the total count
func (s *TodoService) Search(ctx context.Context, userID uint64, limit, offset int) ([]models.Todo, int64, error) {
	todos, total, err := s.todoRepo.Search(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search todos: %w", err)
	}
	return todos, total, nil
}

// GetByID returns the todo if userID owns it
func (s *TodoService) GetByID(ctx context.Context, id, userID uint64) (*models.Todo, error) {
	todo, err := s.todoRepo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}
	return todo, nil
}

// Create creates a new, not yet completed todo
func (s *TodoService) Create(ctx context.Context, title string, userID uint64) (*models.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}

	todo := &models.Todo{
		Title:     title,
		Completed: false,
		UserID:    userID,
	}
	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return todo, nil
}

// Update sets the completed flag of an owned todo
func (s *TodoService) Update(ctx context.Context, id, userID uint64, completed bool) (*models.Todo, error) {
	todo, err := s.todoRepo.UpdateCompleted(ctx, id, userID, completed)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}
	return todo, nil
}

// Delete removes an owned todo. It reports false when there was nothing to delete.
func (s *TodoService) Delete(ctx context.Context, id, userID uint64) (bool, error) {
	deleted, err := s.todoRepo.Delete(ctx, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete todo: %w", err)
	}
	return deleted, nil
}
