package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"media-share-api/internal/application/ports"
	"media-share-api/internal/domain/session"
	domain "media-share-api/internal/domain/user"
	"media-share-api/internal/infrastructure/mq"
	"media-share-api/internal/infrastructure/token"
	userDTO "media-share-api/internal/interface/api/rest/dto/user"
)

// Deliberately slow adaptive hashing.
const bcryptCost = 10

var (
	// ErrInvalidCredentials covers both "no such user" and "wrong
	// password" so the caller cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

type AuthService struct {
	userRepository    domain.Repository
	sessionRepository session.Repository
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewAuthService(
	userRepository domain.Repository,
	sessionRepository session.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.AuthService {
	return &AuthService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		mq:                mq,
		mCounter:          mCounter,
	}
}

func (as *AuthService) SignUp(ctx context.Context, email, password string) (*domain.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	u, err := as.userRepository.CreateUser(ctx, normalizeEmail(email), string(hash))
	if err != nil {
		return nil, "", err
	}

	tok, err := as.issueSession(ctx, u)
	if err != nil {
		return nil, "", err
	}

	if as.mq != nil {
		as.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Action:  mq.ActionUserSignedUp,
			UserID:  uint64(u.ID),
			Payload: userDTO.ToResponseUser(*u),
		}
	}

	as.mCounter.WithLabelValues("user_signups_total").Inc()

	return u, tok, nil
}

func (as *AuthService) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := as.userRepository.FetchUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := as.issueSession(ctx, u)
	if err != nil {
		return nil, "", err
	}

	as.mCounter.WithLabelValues("user_signins_total").Inc()

	return u, tok, nil
}

// SignOut revokes the token. Revoking an unknown token is a no-op.
func (as *AuthService) SignOut(ctx context.Context, tok string) error {
	return as.sessionRepository.DeleteSession(ctx, tok)
}

func (as *AuthService) Authenticate(ctx context.Context, tok string) (*domain.User, error) {
	s, err := as.sessionRepository.FetchSessionByToken(ctx, tok)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrUnauthorized
	}

	u, err := as.userRepository.FetchUserByID(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		// session points at a user that no longer exists
		return nil, ErrUnauthorized
	}

	return u, nil
}

func (as *AuthService) issueSession(ctx context.Context, u *domain.User) (string, error) {
	tok, err := token.New()
	if err != nil {
		return "", err
	}
	if _, err = as.sessionRepository.CreateSession(ctx, tok, u.ID); err != nil {
		return "", err
	}

	return tok, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
