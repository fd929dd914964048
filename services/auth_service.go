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

// CustomerStore is the customer persistence the service needs; satisfied
// by repository.CustomerRepository.
type CustomerStore interface {
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Customer, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	Insert(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, id primitive.ObjectID, patch *entity.CustomerPatch) (*entity.Customer, error)
}

// AuthService handles customer registration, login and profile.
type AuthService struct {
	customers CustomerStore
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(customers CustomerStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{customers: customers, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AuthService) Register(ctx context.Context, name, email, password, phone, address string) (string, *entity.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.customers.CountByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if count > 0 {
		return "", nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	customer := &entity.Customer{
		Name:      strings.TrimSpace(name),
		Email:     email,
		Password:  string(hashed),
		Phone:     strings.TrimSpace(phone),
		Address:   strings.TrimSpace(address),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.customers.Insert(ctx, customer); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(customer.ID.Hex(), utils.RoleCustomer, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, customer, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *entity.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	customer, err := s.customers.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(customer.ID.Hex(), utils.RoleCustomer, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, customer, nil
}

func (s *AuthService) GetProfile(ctx context.Context, id primitive.ObjectID) (*entity.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	return customer, err
}

func (s *AuthService) UpdateProfile(ctx context.Context, id primitive.ObjectID, patch *entity.CustomerPatch) (*entity.Customer, error) {
	customer, err := s.customers.Update(ctx, id, patch)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	return customer, err
}
