package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"
	"watchmarket_server/database"
	"watchmarket_server/lib"
	"watchmarket_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

const (
	UserTokenKey = "userToken"
	UserDataKey  = "userData"

	mockUserId        = "1"
	mockUserName      = "John Doe"
	defaultBio        = "Lorem ipsum dolor sit amet, consectetur adipiscing elit."
	minPasswordLength = 6
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// IsValidEmail checks the loose address shape the client accepts
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// NormalizePhone strips spaces, dashes and parentheses and validates the number
func NormalizePhone(phone string) (string, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, phone)
	return cleaned, phonePattern.MatchString(cleaned)
}

// AuthService is the mock session keeper. There is no credential store:
// any well-formed identifier logs in.
type AuthService struct {
	logger *gecho.Logger
	cfg    *structs.AuthConfig
	store  database.Store

	mu      sync.RWMutex
	user    *structs.User
	token   string
	loading bool
}

func NewAuthService(cfg *structs.AuthConfig, logger *gecho.Logger, store database.Store) *AuthService {
	return &AuthService{
		logger:  logger,
		cfg:     cfg,
		store:   store,
		loading: true,
	}
}

// Load restores the stored session. A missing or invalid session leaves the user logged out.
func (as *AuthService) Load(ctx context.Context) {
	defer func() {
		as.mu.Lock()
		as.loading = false
		as.mu.Unlock()
	}()

	token, hasToken, err := as.store.Get(ctx, UserTokenKey)
	if err != nil {
		as.logger.Error("Failed to read stored session token", gecho.Field("error", err))
		return
	}
	data, hasData, err := as.store.Get(ctx, UserDataKey)
	if err != nil {
		as.logger.Error("Failed to read stored user data", gecho.Field("error", err))
		return
	}
	if !hasToken || !hasData {
		return
	}

	var user structs.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		as.logger.Warn("Stored user data is corrupt, ignoring session", gecho.Field("error", err))
		return
	}
	claims, err := lib.ParseToken(token, as.cfg.TokenSecret)
	if err != nil || claims.Sub != user.Id {
		as.logger.Info("Stored session is no longer valid", gecho.Field("error", err))
		return
	}

	as.mu.Lock()
	as.user = &user
	as.token = token
	as.mu.Unlock()
}

// Login accepts an email with a password or a phone number
func (as *AuthService) Login(ctx context.Context, identifier, password string) (*structs.AuthResponse, error) {
	identifier = strings.TrimSpace(identifier)
	user := &structs.User{Id: mockUserId, Name: mockUserName, Bio: defaultBio}

	if strings.Contains(identifier, "@") {
		if !IsValidEmail(identifier) {
			return nil, lib.ErrInvalidEmail
		}
		if password == "" {
			return nil, lib.ErrPasswordRequired
		}
		if len(password) < minPasswordLength {
			return nil, lib.ErrInvalidCredentials
		}
		user.Email = identifier
	} else {
		phone, ok := NormalizePhone(identifier)
		if !ok {
			return nil, lib.ErrInvalidPhone
		}
		user.PhoneNumber = phone
	}

	return as.startSession(ctx, user)
}

// Signup registers a new mock account and logs it in
func (as *AuthService) Signup(ctx context.Context, req *structs.SignupRequest) (*structs.AuthResponse, error) {
	user := &structs.User{
		Id:   uuid.NewString(),
		Name: strings.TrimSpace(req.Name),
		Bio:  defaultBio,
	}

	identifier := strings.TrimSpace(req.Identifier)
	if req.IsPhone {
		phone, ok := NormalizePhone(identifier)
		if !ok {
			return nil, lib.ErrInvalidPhone
		}
		user.PhoneNumber = phone
	} else {
		if !IsValidEmail(identifier) {
			return nil, lib.ErrInvalidEmail
		}
		if req.Password == "" {
			return nil, lib.ErrPasswordRequired
		}
		if len(req.Password) < minPasswordLength {
			return nil, lib.ErrInvalidCredentials
		}
		user.Email = identifier
	}

	return as.startSession(ctx, user)
}

func (as *AuthService) startSession(ctx context.Context, user *structs.User) (*structs.AuthResponse, error) {
	token, _, err := lib.NewSessionToken(user.Id, as.cfg.TokenSecret, as.cfg.TokenExpiry)
	if err != nil {
		return nil, err
	}

	if err := as.saveSession(ctx, token, user); err != nil {
		return nil, err
	}

	as.mu.Lock()
	as.user = user
	as.token = token
	as.mu.Unlock()

	as.logger.Info("User logged in", gecho.Field("user_id", user.Id))

	copied := *user
	return &structs.AuthResponse{User: &copied, Token: token}, nil
}

func (as *AuthService) saveSession(ctx context.Context, token string, user *structs.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := as.store.Set(ctx, UserTokenKey, token); err != nil {
		return fmt.Errorf("%w: %w", lib.ErrPersistence, err)
	}
	if err := as.store.Set(ctx, UserDataKey, string(data)); err != nil {
		return fmt.Errorf("%w: %w", lib.ErrPersistence, err)
	}
	return nil
}

// Logout clears the session. Storage failures are logged; the session ends regardless.
func (as *AuthService) Logout(ctx context.Context) {
	as.mu.Lock()
	as.user = nil
	as.token = ""
	as.mu.Unlock()

	for _, key := range []string{UserTokenKey, UserDataKey} {
		if err := as.store.Remove(ctx, key); err != nil {
			as.logger.Error("Failed to clear stored session", gecho.Field("key", key), gecho.Field("error", err))
		}
	}
}

// UpdateUserProfile applies the given fields to the logged-in user
func (as *AuthService) UpdateUserProfile(ctx context.Context, userId string, req *structs.UpdateProfileRequest) (*structs.User, error) {
	as.mu.RLock()
	if as.user == nil || as.user.Id != userId {
		as.mu.RUnlock()
		return nil, lib.ErrNotLoggedIn
	}
	updated := *as.user
	token := as.token
	as.mu.RUnlock()

	if req.Name != nil {
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		updated.Email = strings.TrimSpace(*req.Email)
	}
	if req.PhoneNumber != nil {
		phone, ok := NormalizePhone(*req.PhoneNumber)
		if !ok {
			return nil, lib.ErrInvalidPhone
		}
		updated.PhoneNumber = phone
	}
	if req.Bio != nil {
		updated.Bio = *req.Bio
	}

	if err := as.saveSession(ctx, token, &updated); err != nil {
		return nil, err
	}

	as.mu.Lock()
	as.user = &updated
	as.mu.Unlock()

	copied := updated
	return &copied, nil
}

// Authenticate resolves a token to the session user. Only the current session token is accepted.
func (as *AuthService) Authenticate(token string) (*structs.User, error) {
	claims, err := lib.ParseToken(token, as.cfg.TokenSecret)
	if err != nil {
		return nil, err
	}

	as.mu.RLock()
	defer as.mu.RUnlock()
	if as.user == nil || as.token != token || as.user.Id != claims.Sub {
		return nil, lib.ErrNotLoggedIn
	}
	copied := *as.user
	return &copied, nil
}

func (as *AuthService) CurrentUser() *structs.User {
	as.mu.RLock()
	defer as.mu.RUnlock()
	if as.user == nil {
		return nil
	}
	copied := *as.user
	return &copied
}

func (as *AuthService) IsLoggedIn() bool {
	as.mu.RLock()
	defer as.mu.RUnlock()
	return as.user != nil
}

func (as *AuthService) IsLoading() bool {
	as.mu.RLock()
	defer as.mu.RUnlock()
	return as.loading
}

func (as *AuthService) TokenExpiry() time.Duration {
	return as.cfg.TokenExpiry
}
