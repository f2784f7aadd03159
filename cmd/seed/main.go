package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/llOrtegall/backend-app-full-stack/config"
	"github.com/llOrtegall/backend-app-full-stack/internal/domain/entity"
	"github.com/llOrtegall/backend-app-full-stack/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@example.com"
	password := "admin12345"
	name := "Administrator"

	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	// Seed through the validating factory so defaults and invariants hold.
	u, err := entity.NewUser(entity.NewUserInput{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		log.Fatalf("failed to build admin user: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (id, name, email, password, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, u.ID, u.Name, u.Email, u.Password, u.Role, u.IsActive, u.CreatedAt, u.UpdatedAt).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}
	fmt.Printf("seeded admin user: id=%s email=%s password=%s\n", id, email, password)
}
