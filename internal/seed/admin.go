package seed

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"hoteldesk/m/domain"
	"hoteldesk/m/internal/store"
)

// EnsureAdmin creates the bootstrap admin account unless a user with that email exists.
// Both email and password must be set, otherwise nothing happens.
func EnsureAdmin(ctx context.Context, db *sqlx.DB, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}
	if _, err := store.GetUserByEmail(ctx, db, email); err == nil {
		return nil
	} else if !store.IsNotFound(err) {
		return fmt.Errorf("unable to look up admin: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("unable to secure admin password: %w", err)
	}
	u := domain.User{
		Username:  "admin",
		Email:     email,
		Password:  string(hashed),
		Role:      domain.RoleAdmin,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := store.CreateUser(ctx, db, &u); err != nil {
		return fmt.Errorf("unable to create admin: %w", err)
	}
	log.Printf("created admin account %s", email)
	return nil
}
