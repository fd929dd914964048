package configs

import (
	"context"
	"log"
	"strings"
	"time"

	"foodie/entity"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first back-office account from ADMIN_EMAIL /
// ADMIN_PASSWORD. Does nothing if the account already exists.
func SeedAdmin(ctx context.Context, cfg *Config) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	admins := DB().Collection("admins")

	count, err := admins.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	_, err = admins.InsertOne(ctx, entity.Admin{
		Email:     email,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	})
	return err
}
