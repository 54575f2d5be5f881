package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/streamix/streamix-cli/internal/shared"
)

func TestAuthService(t *testing.T) {
	t.Run("Login", func(t *testing.T) {
		t.Run("returns a session on success", func(t *testing.T) {
			var gotPath string
			var gotBody map[string]string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				json.NewDecoder(r.Body).Decode(&gotBody)
				json.NewEncoder(w).Encode(map[string]string{
					"accessToken":  "access",
					"refreshToken": "refresh",
					"email":        "user@example.com",
					"userId":       "u1",
				})
			}))
			defer server.Close()

			auth := NewAuthService(server.URL, ClientOpts{})
			session, err := auth.Login(context.Background(), "user@example.com", "Passw0rd!")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if gotPath != "/login" {
				t.Errorf("expected POST /login, got %s", gotPath)
			}
			if gotBody["email"] != "user@example.com" || gotBody["password"] != "Passw0rd!" {
				t.Errorf("unexpected credentials payload: %+v", gotBody)
			}
			if session.UserID != "u1" || session.AccessToken != "access" || session.RefreshToken != "refresh" {
				t.Errorf("unexpected session: %+v", session)
			}
			if session.Remember {
				t.Error("login must not decide the storage scope")
			}
		})

		t.Run("rejects a response without a token", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"userId":"u1"}`))
			}))
			defer server.Close()

			auth := NewAuthService(server.URL, ClientOpts{})
			if _, err := auth.Login(context.Background(), "a@b.c", "pw"); !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed, got %v", err)
			}
		})

		t.Run("wraps rejected credentials", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"message":"invalid credentials"}`))
			}))
			defer server.Close()

			auth := NewAuthService(server.URL, ClientOpts{})
			if _, err := auth.Login(context.Background(), "a@b.c", "wrong"); !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed, got %v", err)
			}
		})
	})

	t.Run("Register", func(t *testing.T) {
		t.Run("requires email and password", func(t *testing.T) {
			auth := NewAuthService("http://unused", ClientOpts{})
			if err := auth.Register(context.Background(), "Name", "", "pw"); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})

		t.Run("posts the account payload", func(t *testing.T) {
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			auth := NewAuthService(server.URL, ClientOpts{})
			if err := auth.Register(context.Background(), "Name", "a@b.c", "Passw0rd!"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if gotPath != "/register" {
				t.Errorf("expected POST /register, got %s", gotPath)
			}
		})
	})

	t.Run("password reset flow", func(t *testing.T) {
		var paths []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		auth := NewAuthService(server.URL, ClientOpts{})
		ctx := context.Background()

		if err := auth.ForgotPassword(ctx, "a@b.c"); err != nil {
			t.Fatalf("forgot password: %v", err)
		}
		if err := auth.VerifyCode(ctx, "a@b.c", "123456"); err != nil {
			t.Fatalf("verify code: %v", err)
		}
		if err := auth.ResetPassword(ctx, "a@b.c", "123456", "NewPassw0rd!"); err != nil {
			t.Fatalf("reset password: %v", err)
		}

		want := []string{"/forgot-password", "/verify-code", "/reset-password"}
		if len(paths) != len(want) {
			t.Fatalf("expected %d calls, got %v", len(want), paths)
		}
		for i, path := range want {
			if paths[i] != path {
				t.Errorf("call %d: expected %s, got %s", i, path, paths[i])
			}
		}
	})

	t.Run("ForgotPassword requires an email", func(t *testing.T) {
		auth := NewAuthService("http://unused", ClientOpts{})
		if err := auth.ForgotPassword(context.Background(), ""); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("Logout posts the refresh token", func(t *testing.T) {
		var gotBody map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		auth := NewAuthService(server.URL, ClientOpts{})
		if err := auth.Logout(context.Background(), "refresh-token"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotBody["refreshToken"] != "refresh-token" {
			t.Errorf("unexpected logout payload: %+v", gotBody)
		}
	})
}
