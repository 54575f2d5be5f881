package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/streamix/streamix-cli/internal/models"
	"github.com/streamix/streamix-cli/internal/shared"
	tu "github.com/streamix/streamix-cli/internal/testing"
)

func TestClient(t *testing.T) {
	t.Run("Do", func(t *testing.T) {
		t.Run("attaches the bearer token", func(t *testing.T) {
			var gotAuth string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, ClientOpts{Tokens: tu.StaticTokens("abc123")})
			if err := client.Get(context.Background(), "/all", nil); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if gotAuth != "Bearer abc123" {
				t.Errorf("expected bearer header, got %q", gotAuth)
			}
		})

		t.Run("omits the header without a token", func(t *testing.T) {
			var gotAuth string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, ClientOpts{Tokens: tu.StaticTokens("")})
			client.Get(context.Background(), "/all", nil)

			if gotAuth != "" {
				t.Errorf("expected no auth header, got %q", gotAuth)
			}
		})

		t.Run("decodes the response body", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[{"id":"m1","title":"Arrival"}]`))
			}))
			defer server.Close()

			client := NewClient(server.URL, ClientOpts{})
			var items []models.ContentItem
			if err := client.Get(context.Background(), "/all", &items); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(items) != 1 || items[0].Title != "Arrival" {
				t.Errorf("unexpected decode result: %+v", items)
			}
		})

		t.Run("encodes the request body", func(t *testing.T) {
			var gotBody string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				data, _ := io.ReadAll(r.Body)
				gotBody = string(data)
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, ClientOpts{})
			client.Post(context.Background(), "/watchlist/add", map[string]string{"movieId": "m1"}, nil)

			if gotBody != `{"movieId":"m1"}` {
				t.Errorf("unexpected request body: %s", gotBody)
			}
		})

		t.Run("wraps transport failures", func(t *testing.T) {
			client := NewClient("http://127.0.0.1:1", ClientOpts{})
			err := client.Get(context.Background(), "/all", nil)
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})
	})

	t.Run("unauthorized responses", func(t *testing.T) {
		t.Run("return session expired and fire the hook", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer server.Close()

			var calls atomic.Int32
			client := NewClient(server.URL, ClientOpts{OnUnauthorized: func() { calls.Add(1) }})

			err := client.Get(context.Background(), "/watchlist/u1", nil)
			if !errors.Is(err, shared.ErrSessionExpired) {
				t.Fatalf("expected ErrSessionExpired, got %v", err)
			}
			if calls.Load() != 1 {
				t.Errorf("expected one hook invocation, got %d", calls.Load())
			}
		})

		t.Run("concurrent 401s clear the session exactly once each, idempotently", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer server.Close()

			path := filepath.Join(t.TempDir(), "session.json")
			store := shared.NewSessionStore(path)
			store.Save(models.Session{UserID: "u1", AccessToken: "tok", Remember: true})

			client := NewClient(server.URL, ClientOpts{
				Tokens: store,
				OnUnauthorized: func() {
					if err := store.Clear(); err != nil {
						t.Errorf("clear failed: %v", err)
					}
				},
			})

			var wg sync.WaitGroup
			for i := 0; i < 5; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					err := client.Get(context.Background(), "/history/u1", nil)
					if !errors.Is(err, shared.ErrSessionExpired) {
						t.Errorf("expected ErrSessionExpired, got %v", err)
					}
				}()
			}
			wg.Wait()

			if _, ok := store.Current(); ok {
				t.Error("expected the session to be cleared")
			}
			if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
				t.Error("expected the session file to be removed")
			}
		})
	})

	t.Run("error payload flattening", func(t *testing.T) {
		serve := func(status int, body string) *Client {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				w.Write([]byte(body))
			}))
			t.Cleanup(server.Close)
			return NewClient(server.URL, ClientOpts{})
		}

		assertMessages := func(t *testing.T, err error, want ...string) {
			t.Helper()
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %v", err)
			}
			if len(apiErr.Messages) != len(want) {
				t.Fatalf("expected %d messages, got %+v", len(want), apiErr.Messages)
			}
			for i, msg := range want {
				if apiErr.Messages[i] != msg {
					t.Errorf("message %d: expected %q, got %q", i, msg, apiErr.Messages[i])
				}
			}
		}

		t.Run("single message object", func(t *testing.T) {
			client := serve(500, `{"message":"something broke"}`)
			err := client.Get(context.Background(), "/", nil)
			assertMessages(t, err, "something broke")
		})

		t.Run("message list object", func(t *testing.T) {
			client := serve(400, `{"messages":["bad email","bad password"]}`)
			err := client.Get(context.Background(), "/", nil)
			assertMessages(t, err, "bad email", "bad password")
		})

		t.Run("error field object", func(t *testing.T) {
			client := serve(404, `{"error":"not found"}`)
			err := client.Get(context.Background(), "/", nil)
			assertMessages(t, err, "not found")
		})

		t.Run("bare string list", func(t *testing.T) {
			client := serve(400, `["first","second"]`)
			err := client.Get(context.Background(), "/", nil)
			assertMessages(t, err, "first", "second")
		})

		t.Run("bare string", func(t *testing.T) {
			client := serve(503, `"maintenance"`)
			err := client.Get(context.Background(), "/", nil)
			assertMessages(t, err, "maintenance")
		})

		t.Run("empty body keeps the status", func(t *testing.T) {
			client := serve(502, ``)
			err := client.Get(context.Background(), "/", nil)
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %v", err)
			}
			if apiErr.StatusCode != 502 || len(apiErr.Messages) != 0 {
				t.Errorf("unexpected error: %+v", apiErr)
			}
		})
	})
}
