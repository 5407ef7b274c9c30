// seed inserts two users and a pending request between them into the local
// dev database. Re-running is safe.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/nirmalvora/padosee-server/internal/auth"
	"github.com/nirmalvora/padosee-server/internal/domain"
	"github.com/nirmalvora/padosee-server/internal/infrastructure/postgres"
	"github.com/nirmalvora/padosee-server/internal/repository"
)

const seedPassword = "secret1"

var seedUsers = []domain.User{
	{FirstName: "Asha", LastName: "Patel", Email: "asha@test.local", PhoneNumber: "+910000000001"},
	{FirstName: "Ravi", LastName: "Kumar", Email: "ravi@test.local", PhoneNumber: "+910000000002"},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	requests := postgres.NewRequestRepository(pool)
	hasher := auth.NewBcryptHasher(auth.DefaultCost)

	ids := make([]string, 0, len(seedUsers))
	for _, u := range seedUsers {
		id, err := ensureUser(ctx, users, hasher, u)
		if err != nil {
			log.Fatalf("seed user %s: %v", u.Email, err)
		}
		ids = append(ids, id)
	}

	_, err = requests.Create(ctx, &domain.Request{SenderID: ids[0], ReceiverID: ids[1], Status: domain.RequestPending})
	if err != nil && !errors.Is(err, domain.ErrDuplicateRequest) {
		log.Fatalf("seed request: %v", err)
	}

	fmt.Println("Seed complete")
	fmt.Println()
	for i, u := range seedUsers {
		fmt.Printf("  %-18s %s  (password %q)\n", u.Email, ids[i], seedPassword)
	}
	fmt.Println()
	fmt.Println("Log in:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/login \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"email_address\":\"%s\",\"user_password\":\"%s\"}'\n", seedUsers[0].Email, seedPassword)
	fmt.Println()
	fmt.Println("Then list incoming requests for the second user:")
	fmt.Println()
	fmt.Printf("    curl -s http://localhost:8080/requests/receiver/%s -H \"Authorization: Bearer $JWT\"\n", ids[1])
}

func ensureUser(ctx context.Context, users repository.UserRepository, hasher *auth.BcryptHasher, u domain.User) (string, error) {
	existing, err := users.FindByEmail(ctx, u.Email)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	digest, err := hasher.Hash(seedPassword)
	if err != nil {
		return "", err
	}
	u.PasswordHash = digest

	created, err := users.Create(ctx, &u)
	if err != nil {
		return "", err
	}
	return created.ID, nil
}
