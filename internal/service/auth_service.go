package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"mamacare/internal/mailer"
	"mamacare/internal/model"
	"mamacare/internal/repository"
	"mamacare/internal/utils"
)

var (
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrInvalidToken       = errors.New("invalid verification token")
)

// AuthService provides registration, login and email verification.
//
// Per-user states: unregistered -> unverified -> verified. Verified is
// terminal; nothing here moves a user back to unverified.
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Verify(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
	GetByID(ctx context.Context, id int) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
	sender   mailer.Sender
	baseURL  string
}

// NewAuthService creates a new AuthService. baseURL is the public backend
// address used to build verification links.
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, sender mailer.Sender, baseURL string) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
		sender:   sender,
		baseURL:  baseURL,
	}
}

// Register creates a new unverified account and dispatches a verification
// link. The unique index on email arbitrates duplicate registrations; there
// is no check-then-insert window.
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := utils.GenerateVerificationToken()
	if err != nil {
		return nil, err
	}

	role := model.RoleMother // Default role
	if req.Role != nil && *req.Role != "" {
		role = *req.Role
	}

	user := &model.User{
		Email:             req.Email,
		Name:              req.Name,
		PasswordHash:      hashedPassword,
		Role:              role,
		FacilityName:      req.FacilityName,
		LicenseNumber:     req.LicenseNumber,
		DueDate:           req.DueDate,
		IsVerified:        false,
		VerificationToken: &token,
		CreatedAt:         time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	s.dispatchVerification(ctx, user.Email, token)
	return user, nil
}

// Login authenticates a verified user and returns a session token.
// Unverified accounts are rejected before the password comparison so the
// client can prompt for a resend; an unknown email and a wrong password
// both yield the same generic error.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials // User not found
	}

	if !user.IsVerified {
		return nil, "", ErrEmailNotVerified
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials // Password mismatch
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Verify consumes a verification token. The token is cleared in the same
// update that sets is_verified, so replaying it fails.
func (s *authService) Verify(ctx context.Context, token string) error {
	user, err := s.userRepo.FindByVerificationToken(ctx, token)
	if err != nil {
		return fmt.Errorf("error finding user by token: %w", err)
	}
	if user == nil {
		return ErrInvalidToken
	}

	if err := s.userRepo.MarkVerified(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}
	return nil
}

// ResendVerification rotates the user's token and dispatches a fresh link.
// It never touches is_verified.
func (s *authService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	token, err := utils.GenerateVerificationToken()
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdateVerificationToken(ctx, user.ID, token); err != nil {
		return fmt.Errorf("failed to rotate verification token: %w", err)
	}

	s.dispatchVerification(ctx, user.Email, token)
	return nil
}

// GetByID returns a user profile for an authenticated session.
func (s *authService) GetByID(ctx context.Context, id int) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error finding user by id: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// dispatchVerification sends the verification link. Delivery is best-effort:
// a transport failure is logged and never fails the enclosing request, the
// user can always self-serve via resend.
func (s *authService) dispatchVerification(ctx context.Context, email, token string) {
	link := fmt.Sprintf("%s/api/auth/verify?token=%s", s.baseURL, token)
	if err := s.sender.SendVerification(ctx, email, link); err != nil {
		log.Printf("ERROR: failed to send verification mail to %s: %v (link: %s)", email, err, link)
	}
}
