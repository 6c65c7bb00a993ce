// seed inserts a handful of demo users into the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/userhive/usersvc/internal/domain"
	"github.com/userhive/usersvc/internal/infrastructure/postgres"
	"github.com/userhive/usersvc/internal/password"
)

type userSpec struct {
	name  string
	email string
	role  domain.Role
}

var users = []userSpec{
	{"John Doe", "john@example.com", domain.RoleUser},
	{"Jane Smith", "jane@example.com", domain.RoleAdmin},
	{"Bob Wilson", "bob@example.com", domain.RoleUser},
	{"Alice Brown", "alice@example.com", domain.RoleUser},
}

// Every seed user gets the same password so manual login testing is easy.
const seedPassword = "Password123!"

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	hash, err := password.Hash(seedPassword)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	repo := postgres.NewUserRepository(pool)

	var inserted, skipped int
	for _, spec := range users {
		_, err := repo.Create(ctx, &domain.User{
			Name:         spec.name,
			Email:        spec.email,
			PasswordHash: hash,
			Role:         spec.role,
		})
		if err != nil {
			// Idempotent re-runs: existing users are skipped.
			if errors.Is(err, domain.ErrDuplicateEmail) {
				skipped++
				continue
			}
			log.Fatalf("insert user %s: %v", spec.email, err)
		}
		inserted++
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  Users created: %d  (skipped %d already existing)\n", inserted, skipped)
	fmt.Printf("  Password:      %s\n", seedPassword)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — log in as a seed user:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/auth/login \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"email\":\"john@example.com\",\"password\":\"%s\"}'\n", seedPassword)
	fmt.Println()
	fmt.Println("  Step 2 — use the token:")
	fmt.Println()
	fmt.Println("    export JWT=eyJ...")
	fmt.Println("    curl -s http://localhost:8080/auth/me -H \"Authorization: Bearer $JWT\"")
	fmt.Println()
	fmt.Println("  Step 3 — browse the users:")
	fmt.Println()
	fmt.Println("    curl -s http://localhost:8080/api/users")
}
