package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/streamix/streamix-cli/internal/shared"
	"github.com/urfave/cli/v3"
)

const passwordSpecials = "@#$%^&+=!"

// validatePassword enforces the account password rule: at least 8 characters
// with a digit, a lowercase letter, an uppercase letter, one of @#$%^&+=!,
// and no whitespace.
func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", shared.ErrInvalidInput)
	}

	var hasDigit, hasLower, hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			return fmt.Errorf("%w: password must not contain whitespace", shared.ErrInvalidInput)
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}

	switch {
	case !hasDigit:
		return fmt.Errorf("%w: password must contain a digit", shared.ErrInvalidInput)
	case !hasLower:
		return fmt.Errorf("%w: password must contain a lowercase letter", shared.ErrInvalidInput)
	case !hasUpper:
		return fmt.Errorf("%w: password must contain an uppercase letter", shared.ErrInvalidInput)
	case !hasSpecial:
		return fmt.Errorf("%w: password must contain one of %s", shared.ErrInvalidInput, passwordSpecials)
	}
	return nil
}

// prompt reads one line of input after printing the label.
func (r *Runner) prompt(label string) (string, error) {
	if err := r.writePlain("%s: ", label); err != nil {
		return "", err
	}
	reader := bufio.NewReader(r.input)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// flagOrPrompt returns the flag value when set, otherwise prompts for it.
func (r *Runner) flagOrPrompt(cmd *cli.Command, flag, label string) (string, error) {
	if value := cmd.String(flag); value != "" {
		return value, nil
	}
	return r.prompt(label)
}

// AuthLogin signs in and stores the session. With --remember the session is
// persisted to disk and restored on the next run.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email, err := r.flagOrPrompt(cmd, "email", "Email")
	if err != nil {
		return err
	}
	password, err := r.flagOrPrompt(cmd, "password", "Password")
	if err != nil {
		return err
	}

	session, err := r.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	session.Remember = cmd.Bool("remember")

	if err := r.sessions.Save(*session); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	r.logger.Info("logged in", "email", session.Email)
	return r.writePlain("✓ Logged in as %s\n", session.Email)
}

// AuthRegister creates a new account and points the user at verification.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	name, err := r.flagOrPrompt(cmd, "name", "Name")
	if err != nil {
		return err
	}
	email, err := r.flagOrPrompt(cmd, "email", "Email")
	if err != nil {
		return err
	}
	password, err := r.flagOrPrompt(cmd, "password", "Password")
	if err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	if err := r.auth.Register(ctx, name, email, password); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	r.writePlain("✓ Account created\n")
	r.writePlainln("A verification code was mailed to %s.", email)
	return r.writePlain("Run 'streamix auth verify-email --email %s --code <code>' to activate it.\n", email)
}

// AuthVerifyEmail confirms the registration code.
func (r *Runner) AuthVerifyEmail(ctx context.Context, cmd *cli.Command) error {
	email, err := r.flagOrPrompt(cmd, "email", "Email")
	if err != nil {
		return err
	}
	code, err := r.flagOrPrompt(cmd, "code", "Verification code")
	if err != nil {
		return err
	}

	if err := r.auth.VerifyEmail(ctx, email, code); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	return r.writePlain("✓ Email verified, you can log in now\n")
}

// AuthLogout revokes the refresh token and clears the stored session. Local
// cleanup happens even when revocation fails.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	session, ok := r.sessions.Current()
	if !ok {
		return r.writePlain("No active session\n")
	}

	if err := r.auth.Logout(ctx, session.RefreshToken); err != nil {
		r.logger.Warn("token revocation failed", "err", err)
	}

	if err := r.sessions.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	r.logger.Info("logged out", "email", session.Email)
	return r.writePlain("✓ Logged out\n")
}

// AuthForgotPassword runs the three-step reset wizard: request a code, verify
// it, then submit the new password. The code is checked before the password
// step so a typo fails fast.
func (r *Runner) AuthForgotPassword(ctx context.Context, cmd *cli.Command) error {
	email, err := r.flagOrPrompt(cmd, "email", "Email")
	if err != nil {
		return err
	}

	if err := r.auth.ForgotPassword(ctx, email); err != nil {
		return fmt.Errorf("failed to request reset code: %w", err)
	}
	r.writePlain("A 6-digit reset code was mailed to %s.\n", email)

	code, err := r.prompt("Reset code")
	if err != nil {
		return err
	}
	if err := r.auth.VerifyCode(ctx, email, code); err != nil {
		return fmt.Errorf("code verification failed: %w", err)
	}
	r.writePlain("✓ Code verified\n")

	password, err := r.prompt("New password")
	if err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	if err := r.auth.ResetPassword(ctx, email, code, password); err != nil {
		return fmt.Errorf("password reset failed: %w", err)
	}
	return r.writePlain("✓ Password updated, log in with the new password\n")
}

// AuthWhoami shows the active session.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	session, ok := r.sessions.Current()
	if !ok {
		return r.writePlain("Not logged in\n")
	}

	r.writePlain("Email: %s\n", session.Email)
	r.writePlain("User ID: %s\n", session.UserID)
	if session.Remember {
		r.writePlain("Session: persisted\n")
	} else {
		r.writePlain("Session: this process only\n")
	}
	return nil
}
