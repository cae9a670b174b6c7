package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"eventr/internal/domain"
	"eventr/internal/repository"
)

// plausibleEmail reports whether email has a non-empty local part and
// domain around a single @. Deliverability is not checked.
func plausibleEmail(email string) bool {
	local, domainPart, ok := strings.Cut(email, "@")
	return ok && local != "" && domainPart != "" && !strings.Contains(domainPart, "@")
}

type userService struct {
	users        *repository.Collection[*domain.User]
	sessions     *repository.Collection[*domain.Session]
	hasher       domain.PasswordHasher
	tokens       domain.TokenManager
	sessionTTL   time.Duration
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewUserService creates a UserService with the given store and auth ports.
// emailService may be nil, in which case no welcome emails are sent.
func NewUserService(store *repository.Store, hasher domain.PasswordHasher, tokens domain.TokenManager, sessionTTL time.Duration, emailService domain.EmailService, logger *slog.Logger) domain.UserService {
	return &userService{
		users:        store.Users,
		sessions:     store.Sessions,
		hasher:       hasher,
		tokens:       tokens,
		sessionTTL:   sessionTTL,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *userService) Register(ctx context.Context, name, email, password string) (domain.Result[*domain.User], error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	var errs []string
	if name == "" {
		errs = append(errs, "name is required")
	}
	if email == "" {
		errs = append(errs, "email is required")
	} else if !plausibleEmail(email) {
		errs = append(errs, "email must contain @")
	}
	if password == "" {
		errs = append(errs, "password is required")
	}
	if len(errs) > 0 {
		return domain.Fail[*domain.User](domain.InvalidInput(strings.Join(errs, "; "))), nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.Result[*domain.User]{}, err
	}
	user := domain.NewUser(name, email, hash)
	err = s.users.Update(ctx, func(users []*domain.User) ([]*domain.User, error) {
		if findUserByEmail(users, email) != nil {
			return nil, domain.ErrDuplicateEmail
		}
		user.ID = newID()
		return append(users, user), nil
	})
	if err != nil {
		return domain.FromError[*domain.User](err)
	}

	if s.emailService != nil {
		data := &domain.WelcomeMessageEmailData{Email: user.Email, Name: user.Name, UserID: user.ID}
		if err := s.emailService.SendWelcomeMessage(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "welcome email not sent", "user_id", user.ID, "err", err)
		}
	}
	return domain.OK(user.Public()), nil
}

func (s *userService) Login(ctx context.Context, email, password string) (domain.Result[*domain.AuthResponse], error) {
	users, err := s.users.Load(ctx)
	if err != nil {
		return domain.FromError[*domain.AuthResponse](err)
	}
	user := findUserByEmail(users, strings.TrimSpace(email))
	if user == nil {
		return domain.Fail[*domain.AuthResponse](domain.ErrInvalidCredentials), nil
	}
	if err := s.hasher.Compare(user.Password, password); err != nil {
		return domain.Fail[*domain.AuthResponse](domain.ErrInvalidCredentials), nil
	}

	now := time.Now().UTC()
	session := domain.NewSession(user.ID, now, s.sessionTTL)
	session.ID = newID()
	token, err := s.tokens.Issue(user.ID, session.ID, s.sessionTTL)
	if err != nil {
		return domain.Result[*domain.AuthResponse]{}, fmt.Errorf("issue token: %w", err)
	}
	err = s.sessions.Update(ctx, func(sessions []*domain.Session) ([]*domain.Session, error) {
		sessions = slices.DeleteFunc(sessions, func(sess *domain.Session) bool {
			return sess.Expired(now)
		})
		return append(sessions, session), nil
	})
	if err != nil {
		return domain.FromError[*domain.AuthResponse](err)
	}
	return domain.OK(&domain.AuthResponse{User: user.Public(), Token: token}), nil
}

// Logout always succeeds: an unknown or invalid token has nothing to clear.
func (s *userService) Logout(ctx context.Context, token string) (domain.Result[struct{}], error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return domain.OK(struct{}{}), nil
	}
	err = s.sessions.Update(ctx, func(sessions []*domain.Session) ([]*domain.Session, error) {
		return slices.DeleteFunc(sessions, func(sess *domain.Session) bool {
			return sess.ID == claims.SessionID
		}), nil
	})
	if err != nil {
		return domain.FromError[struct{}](err)
	}
	return domain.OK(struct{}{}), nil
}

func (s *userService) CurrentUser(ctx context.Context, token string) (domain.Result[*domain.User], error) {
	user, err := s.resolve(ctx, token)
	if err != nil {
		return domain.FromError[*domain.User](err)
	}
	return domain.OK(user.Public()), nil
}

func (s *userService) resolve(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	sessions, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(sessions, func(sess *domain.Session) bool {
		return sess.ID == claims.SessionID
	})
	if i < 0 {
		return nil, domain.ErrUnauthenticated
	}
	session := sessions[i]
	if session.UserID != claims.UserID || session.Expired(time.Now()) {
		return nil, domain.ErrUnauthenticated
	}
	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	user := findUserByID(users, session.UserID)
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}
