package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"foodie/entity"
	"foodie/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// AdminStore is the admin persistence the service needs; satisfied by
// repository.AdminRepository.
type AdminStore interface {
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Admin, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	Insert(ctx context.Context, admin *entity.Admin) error
}

// AdminService handles back-office login and registration.
type AdminService struct {
	admins    AdminStore
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAdminService(admins AdminStore, secret string, ttl time.Duration) *AdminService {
	return &AdminService{admins: admins, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AdminService) Login(ctx context.Context, email, password string) (string, *entity.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(admin.ID.Hex(), utils.RoleAdmin, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

func (s *AdminService) Register(ctx context.Context, email, password string) (*entity.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.admins.CountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	admin := &entity.Admin{
		Email:     email,
		Password:  string(hashed),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.admins.Insert(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}
