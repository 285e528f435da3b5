//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	tempmail "github.com/tempmailhq/client-go"
)

var (
	apiKey  string
	baseURL string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("TEMPMAIL_API_KEY")
	baseURL = os.Getenv("TEMPMAIL_URL")

	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: TEMPMAIL_API_KEY not set\n")
		os.Exit(0)
	}

	os.Exit(m.Run())
}

func newClient(t *testing.T) *tempmail.Client {
	t.Helper()

	opts := []tempmail.Option{
		tempmail.WithTimeout(30 * time.Second),
	}
	if baseURL != "" {
		opts = append(opts, tempmail.WithBaseURL(baseURL))
	}

	client, err := tempmail.New(apiKey, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestIntegration_CreateAndDeleteEmail(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	email, err := client.CreateEmail(ctx)
	if err != nil {
		t.Fatalf("CreateEmail() error = %v", err)
	}

	t.Logf("Created mailbox: %s (ttl %ds)", email.Email, email.TTL)

	if email.Email == "" {
		t.Error("Email is empty")
	}
	if email.TTL <= 0 {
		t.Errorf("TTL = %d, want positive", email.TTL)
	}

	if err := client.DeleteEmail(ctx, email.Email); err != nil {
		t.Errorf("DeleteEmail() error = %v", err)
	}
}

func TestIntegration_ListDomains(t *testing.T) {
	client := newClient(t)

	domains, err := client.ListDomains(context.Background())
	if err != nil {
		t.Fatalf("ListDomains() error = %v", err)
	}

	if len(domains) == 0 {
		t.Fatal("ListDomains() returned no domains")
	}

	for _, d := range domains {
		if d.Name == "" {
			t.Error("domain has empty name")
		}
	}
}

func TestIntegration_ListMessages_EmptyMailbox(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	email, err := client.CreateEmail(ctx)
	if err != nil {
		t.Fatalf("CreateEmail() error = %v", err)
	}
	defer client.DeleteEmail(ctx, email.Email)

	messages, err := client.ListMessages(ctx, email.Email)
	if err != nil {
		t.Fatalf("ListMessages() error = %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("new mailbox has %d message(s), want 0", len(messages))
	}
}

func TestIntegration_RateLimit(t *testing.T) {
	client := newClient(t)

	rl, err := client.GetRateLimit(context.Background())
	if err != nil {
		t.Fatalf("GetRateLimit() error = %v", err)
	}

	t.Logf("Rate limit: %d/%d used, resets at %d", rl.Used, rl.Limit, rl.Reset)

	if rl.Limit <= 0 {
		t.Errorf("Limit = %d, want positive", rl.Limit)
	}

	stored, ok := client.LastRateLimit()
	if !ok {
		t.Fatal("LastRateLimit() absent after GetRateLimit()")
	}
	if stored != *rl {
		t.Errorf("stored snapshot %+v != fetched %+v", stored, *rl)
	}
}
