package repository

import (
	"context"

	"github.com/yukikurage/todo-api/internal/models"
)

// TodoRepository defines the interface for todo data access.
// Every lookup is scoped by the owning user.
type TodoRepository interface {
	// Search returns one page of the user's todos ordered by id, plus the total count
	Search(ctx context.Context, userID uint64, limit, offset int) ([]models.Todo, int64, error)

	// FindByIDAndUserID finds a todo owned by userID
	FindByIDAndUserID(ctx context.Context, id, userID uint64) (*models.Todo, error)

	// Create creates a new todo
	Create(ctx context.Context, todo *models.Todo) error

	// UpdateCompleted sets the completed flag of an owned todo and returns it
	UpdateCompleted(ctx context.Context, id, userID uint64, completed bool) (*models.Todo, error)

	// Delete removes an owned todo, reporting whether a row was removed
	Delete(ctx context.Context, id, userID uint64) (bool, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// List returns all users ordered by ID
	List(ctx context.Context) ([]models.User, error)
}
