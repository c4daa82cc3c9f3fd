package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yukikurage/todo-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedPassword is the plaintext password shared by all seeded users.
const SeedPassword = "password123"

type seedTodo struct {
	title     string
	completed bool
}

type seedUser struct {
	email     string
	firstName string
	lastName  string
	todo      seedTodo
}

var seedData = []seedUser{
	{email: "testuser1@example.com", firstName: "Test", lastName: "User1", todo: seedTodo{title: "Sample Todo 1"}},
	{email: "testuser2@example.com", firstName: "Test", lastName: "User2", todo: seedTodo{title: "Sample Todo 2", completed: true}},
}

// Seed inserts the development fixtures. Running it again is a no-op.
func Seed(ctx context.Context, db *gorm.DB, log *slog.Logger) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range seedData {
			user := models.User{}
			err := tx.Where(models.User{Email: s.email}).
				Attrs(models.User{
					PasswordHash: string(hash),
					FirstName:    stringPtr(s.firstName),
					LastName:     stringPtr(s.lastName),
				}).
				FirstOrCreate(&user).Error
			if err != nil {
				return fmt.Errorf("failed to seed user %s: %w", s.email, err)
			}

			todo := models.Todo{}
			err = tx.Where(models.Todo{Title: s.todo.title, UserID: user.ID}).
				Attrs(models.Todo{Completed: s.todo.completed}).
				FirstOrCreate(&todo).Error
			if err != nil {
				return fmt.Errorf("failed to seed todo %q: %w", s.todo.title, err)
			}

			log.Info("Seeded user", "email", user.Email, "user_id", user.ID, "todo_id", todo.ID)
		}
		return nil
	})
}

func stringPtr(s string) *string {
	return &s
}
