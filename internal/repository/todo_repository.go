package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/todo-api/internal/database"
	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/utils"
	"gorm.io/gorm"
)

// GormTodoRepository is a GORM implementation of TodoRepository
type GormTodoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &GormTodoRepository{db: db}
}

// owned starts a fresh query restricted to userID's todos.
func (r *GormTodoRepository) owned(ctx context.Context, userID uint64) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Todo{}).Where("user_id = ?", userID)
}

// Search returns one page of the user's todos ordered by id, plus the total count
func (r *GormTodoRepository) Search(ctx context.Context, userID uint64, limit, offset int) ([]models.Todo, int64, error) {
	var total int64
	if err := r.owned(ctx, userID).Count(&total).Error; err != nil {
		return nil, 0, dbError("count todos", err)
	}

	todos := []models.Todo{}
	if total == 0 {
		return todos, 0, nil
	}

	page := utils.PaginationParams{Limit: limit, Offset: offset}
	if err := r.owned(ctx, userID).
		Order("id ASC").
		Scopes(database.Paginate(page)).
		Find(&todos).Error; err != nil {
		return nil, 0, dbError("search todos", err)
	}

	return todos, total, nil
}

// FindByIDAndUserID finds a todo owned by userID
func (r *GormTodoRepository) FindByIDAndUserID(ctx context.Context, id, userID uint64) (*models.Todo, error) {
	var todo models.Todo
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&todo).Error; err != nil {
		return nil, lookupError("find todo", err)
	}
	return &todo, nil
}

// Create creates a new todo
func (r *GormTodoRepository) Create(ctx context.Context, todo *models.Todo) error {
	if err := r.db.WithContext(ctx).Create(todo).Error; err != nil {
		return dbError("create todo", err)
	}
	return nil
}

// UpdateCompleted sets the completed flag of an owned todo and returns it
func (r *GormTodoRepository) UpdateCompleted(ctx context.Context, id, userID uint64, completed bool) (*models.Todo, error) {
	var todo models.Todo
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&todo).Error; err != nil {
			return err
		}
		return tx.Model(&todo).Update("completed", completed).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, dbError("update todo", err)
	}
	return &todo, nil
}

// Delete removes an owned todo, reporting whether a row was removed
func (r *GormTodoRepository) Delete(ctx context.Context, id, userID uint64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Todo{})
	if result.Error != nil {
		return false, dbError("delete todo", result.Error)
	}
	return result.RowsAffected > 0, nil
}
