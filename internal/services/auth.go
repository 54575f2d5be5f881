// Identity service client for the Streamix /auth endpoints
package services

import (
	"context"
	"fmt"

	"github.com/streamix/streamix-cli/internal/models"
	"github.com/streamix/streamix-cli/internal/shared"
)

// AuthService implements [Authenticator] against the identity service.
type AuthService struct {
	client *Client
}

var _ Authenticator = (*AuthService)(nil)

// NewAuthService creates an identity service client rooted at baseURL
// (e.g. http://localhost:8081/auth).
func NewAuthService(baseURL string, opts ClientOpts) *AuthService {
	return &AuthService{client: NewClient(baseURL, opts)}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Email        string `json:"email"`
	UserID       string `json:"userId"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type verifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

// Register creates a new account. The identity service mails a verification
// code which must be confirmed via VerifyEmail before login succeeds.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", shared.ErrInvalidInput)
	}
	return s.client.Post(ctx, "/register", registerRequest{Name: name, Email: email, Password: password}, nil)
}

// VerifyEmail confirms the registration code mailed to the user.
func (s *AuthService) VerifyEmail(ctx context.Context, email, code string) error {
	return s.client.Post(ctx, "/verify-email", verifyCodeRequest{Email: email, Code: code}, nil)
}

// Login exchanges credentials for tokens. The returned session has Remember
// unset; the caller decides the storage scope.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	var resp loginResponse
	if err := s.client.Post(ctx, "/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("%w: no token in response", shared.ErrAuthFailed)
	}

	return &models.Session{
		UserID:       resp.UserID,
		Email:        resp.Email,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// Logout revokes the refresh token. Local session cleanup is the caller's
// responsibility and happens even when revocation fails.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.client.Post(ctx, "/logout", map[string]string{"refreshToken": refreshToken}, nil)
}

// ForgotPassword starts the reset flow by mailing a 6-digit code.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", shared.ErrInvalidInput)
	}
	return s.client.Post(ctx, "/forgot-password", emailRequest{Email: email}, nil)
}

// VerifyCode checks a reset code before the password step, so an invalid code
// fails fast instead of at submission.
func (s *AuthService) VerifyCode(ctx context.Context, email, code string) error {
	return s.client.Post(ctx, "/verify-code", verifyCodeRequest{Email: email, Code: code}, nil)
}

// ResetPassword sets a new password after a verified code.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	return s.client.Post(ctx, "/reset-password", resetPasswordRequest{Email: email, Code: code, NewPassword: newPassword}, nil)
}
