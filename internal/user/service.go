package user

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 6
	TokenTTL          = 72 * time.Hour
)

var (
	ErrMissingFields = errors.New("email and name are required")
	ErrWeakPassword  = errors.New("password must be at least 6 characters")
)

type Service struct {
	repo   Repository
	secret []byte
	now    func() time.Time
}

func NewService(repo Repository, jwtSecret string) *Service {
	return &Service{repo: repo, secret: []byte(jwtSecret), now: time.Now}
}

func (s *Service) List() ([]User, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

// Register creates a customer account. Emails are compared case-insensitively.
func (s *Service) Register(email, name, password string) (User, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" {
		return User{}, ErrMissingFields
	}
	if len(password) < MinPasswordLength {
		return User{}, ErrWeakPassword
	}
	return s.create(User{Email: email, Name: name, Password: password, Role: RoleCustomer})
}

// EnsureAdmin seeds the admin account when it does not exist yet. A blank
// email disables seeding.
func (s *Service) EnsureAdmin(email, password string) error {
	email = normalizeEmail(email)
	if email == "" {
		return nil
	}
	if _, err := s.repo.GetByEmail(email); err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	if len(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	_, err := s.create(User{Email: email, Name: "Admin", Password: password, Role: RoleAdmin})
	if errors.Is(err, ErrEmailExists) {
		return nil
	}
	return err
}

func (s *Service) create(user User) (User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	user.Password = string(hashed)
	return s.repo.Create(user)
}

func (s *Service) Authenticate(email, password string) (User, error) {
	user, err := s.repo.GetByEmail(normalizeEmail(email))
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken signs an HS256 token carrying user_id, email and role.
func (s *Service) IssueToken(user User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     s.now().Add(TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
