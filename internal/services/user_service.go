package services

import (
	"fmt"
	"slices"

	"userblog/internal/events"
	"userblog/internal/models"
	"userblog/internal/repositories"
)

const resourceUser = "user"

// UserService handles business logic related to users.
type UserService struct {
	repo repositories.UserRepository
	opts options
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository, opts ...Option) *UserService {
	return &UserService{
		repo: repo,
		opts: buildOptions(opts),
	}
}

// ListUsers returns every user in insertion order.
func (s *UserService) ListUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByID returns a single user. The error wraps
// repositories.ErrUserNotFound for unknown IDs.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.repo.GetByID(id)
}

// AddUser validates input and appends it as a new user. A *ValidationError
// means the store is unchanged.
func (s *UserService) AddUser(input models.NewUser) (*models.User, error) {
	fieldErrs, err := firstFailure(s.opts.validate, input)
	if err != nil {
		return nil, err
	}
	if fieldErrs != nil {
		rule := userRuleError(fieldErrs)
		s.opts.metrics.ValidationFailed(resourceUser, rule.Code)
		return nil, rule
	}

	password := input.Password
	if s.opts.hashPasswords {
		hashed, err := hashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		password = hashed
	}

	user := &models.User{
		Username:        input.Username,
		Password:        password,
		Email:           input.Email,
		DisplayName:     input.DisplayName,
		ProfileImageURL: input.ProfileImageURL,
		Roles:           uniqueRoles(input.Roles),
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to add user: %w", err)
	}

	s.opts.metrics.RecordCreated(resourceUser)
	s.opts.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user added")
	s.opts.publish(events.TopicUserCreated, events.UserCreated{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
	return user, nil
}

// uniqueRoles drops repeated role names, keeping the first occurrence.
func uniqueRoles(roles []string) []string {
	if roles == nil {
		return nil
	}
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}
