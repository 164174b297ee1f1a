package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"skilz-store/internal/models"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type accountRecord struct {
	account      models.Account
	passwordHash []byte
}

// AccountService simulates registration and login with in-memory accounts
// and session tokens. Like the cart, everything lives for the process only;
// there is no real identity backend behind it.
type AccountService struct {
	mu       sync.RWMutex
	byEmail  map[string]*accountRecord
	sessions map[string]string // token -> email
	logger   *zap.Logger
}

func NewAccountService(logger *zap.Logger) *AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountService{
		byEmail:  make(map[string]*accountRecord),
		sessions: make(map[string]string),
		logger:   logger,
	}
}

// Register creates an account. Emails are case-insensitive and unique.
func (s *AccountService) Register(name, email, password string) (models.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, err
	}

	key := strings.ToLower(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[key]; exists {
		return models.Account{}, ErrEmailTaken
	}
	account := models.Account{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}
	s.byEmail[key] = &accountRecord{
		account:      account,
		passwordHash: hash,
	}
	s.logger.Info("account registered", zap.String("account_id", account.ID))
	return account, nil
}

// Login verifies the credentials and returns a session token.
func (s *AccountService) Login(email, password string) (string, error) {
	key := strings.ToLower(email)

	s.mu.RLock()
	rec, exists := s.byEmail[key]
	s.mu.RUnlock()

	if !exists {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = key
	s.mu.Unlock()

	return token, nil
}

// Logout invalidates a session token. Unknown tokens are a no-op.
func (s *AccountService) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// AccountByToken resolves a session token to its account.
func (s *AccountService) AccountByToken(token string) (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key, exists := s.sessions[token]
	if !exists {
		return models.Account{}, false
	}
	rec, exists := s.byEmail[key]
	if !exists {
		return models.Account{}, false
	}
	return rec.account, true
}
