package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmarkovic7/voiphub/internal/domain"
	"github.com/dmarkovic7/voiphub/internal/repository"
)

// WelcomeText opens every newly created support thread.
const WelcomeText = "Welcome to VoIP Expert Support. How can we help you today?"

type AuthService struct {
	convRepo  repository.ConversationRepository
	jwtSecret []byte
}

func NewAuthService(convRepo repository.ConversationRepository, jwtSecret string) *AuthService {
	return &AuthService{
		convRepo:  convRepo,
		jwtSecret: []byte(jwtSecret),
	}
}

type LoginInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	User        *domain.Identity `json:"user"`
	AccessToken string           `json:"access_token"`
}

// Login derives a deterministic identity from the email and issues a
// session token. Login never fails for valid input: there is no password
// and no account registry, so the same email always resolves to the same
// identity and support thread.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	user := &domain.Identity{
		ID:    domain.DeriveID(input.Email),
		Name:  input.Name,
		Email: input.Email,
		Role:  domain.DeriveRole(input.Email),
	}

	if user.Role == domain.RoleUser {
		if err := s.ensureConversation(ctx, user); err != nil {
			return nil, fmt.Errorf("seeding conversation: %w", err)
		}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthResponse{User: user, AccessToken: token}, nil
}

// ensureConversation lazily creates the user's thread with the operator
// welcome message. An existing thread is adopted untouched, so a derived-id
// collision lands in the first login's thread rather than clobbering it.
func (s *AuthService) ensureConversation(ctx context.Context, user *domain.Identity) error {
	existing, err := s.convRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	now := time.Now()
	return s.convRepo.Create(ctx, &domain.Conversation{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		Messages: []domain.Message{{
			ID:        uuid.NewString(),
			Text:      WelcomeText,
			SenderID:  domain.AdminSenderID,
			CreatedAt: now,
		}},
		UnreadCount:   0,
		LastMessageAt: now,
	})
}

// generateToken carries the whole identity in the claims; the server keeps
// no session state, so logout is simply discarding the token client-side.
func (s *AuthService) generateToken(user *domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
