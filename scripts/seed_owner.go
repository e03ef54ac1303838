package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/brianmuthui/portfolio-api/pkg/auth"
)

// Seeds the owner account plus its empty profile row. The profile row must
// exist up front because the dashboard only ever updates it, never inserts.
func main() {
	fmt.Println("adding owner into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	DSN := os.Getenv("DB_DSN")
	OWNER_EMAIL := os.Getenv("OWNER_EMAIL")
	OWNER_PASSWORD := os.Getenv("OWNER_PASSWORD")

	hash, err := auth.HashPassword(OWNER_PASSWORD)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), DSN)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	ownerID := uuid.New()

	query := `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET password_hash = $3
		RETURNING id
	`
	if err := pool.QueryRow(context.Background(), query, ownerID, OWNER_EMAIL, hash).Scan(&ownerID); err != nil {
		log.Fatalf("cannot add user: %v", err)
	}

	profileQuery := `
		INSERT INTO profiles (owner_id, email)
		VALUES ($1, $2)
		ON CONFLICT (owner_id) DO NOTHING
	`
	if _, err := pool.Exec(context.Background(), profileQuery, ownerID, OWNER_EMAIL); err != nil {
		log.Fatalf("cannot add profile: %v", err)
	}

	fmt.Printf("added or updated owner '%s' successfully!\n", OWNER_EMAIL)
}
