package config

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shamank/adwords-sdk-go/pkg/model"
)

// TestConfigValidate_AppliesDefaults verifies that Validate applies default
// values for Server, Version, CacheDir and Services when they are not set.
func TestConfigValidate_AppliesDefaults(t *testing.T) {
	cfg := &Config{}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}

	if cfg.Server != "https://adwords.google.com" {
		t.Fatalf("unexpected Server: %s", cfg.Server)
	}
	if cfg.Version != "v11" {
		t.Fatalf("unexpected Version: %s", cfg.Version)
	}
	if cfg.CacheDir != "/tmp" {
		t.Fatalf("unexpected CacheDir: %s", cfg.CacheDir)
	}
	if diff := cmp.Diff(DefaultServices, cfg.Services); diff != "" {
		t.Fatalf("Services mismatch (-want +got):\n%s", diff)
	}
}

// TestConfigValidate_KeepsExplicitValues verifies that explicit values survive Validate.
func TestConfigValidate_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Server:   "http://localhost:8080",
		Version:  "v13",
		CacheDir: "/tmp/x",
		Services: []string{"Campaign"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if cfg.Server != "http://localhost:8080" || cfg.Version != "v13" || cfg.CacheDir != "/tmp/x" {
		t.Fatalf("explicit values overwritten: %+v", cfg)
	}
	if len(cfg.Services) != 1 || cfg.Services[0] != "Campaign" {
		t.Fatalf("unexpected Services: %v", cfg.Services)
	}
}

func TestConfigValidate_RejectsBadServer(t *testing.T) {
	tests := []string{"adwords.google.com", "ftp://host", "http://", "://bad"}
	for _, server := range tests {
		t.Run(server, func(t *testing.T) {
			cfg := &Config{Server: server}
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected error for server %q", server)
			}
		})
	}
}

func TestConfigDescriptors(t *testing.T) {
	cfg := &Config{Server: "https://s", Version: "v11", Services: []string{"Campaign", "Ad"}}
	want := []model.ServiceDescriptor{
		{Name: "CampaignService", Version: "v11", BaseURL: "https://s"},
		{Name: "AdService", Version: "v11", BaseURL: "https://s"},
	}
	if diff := cmp.Diff(want, cfg.Descriptors()); diff != "" {
		t.Fatalf("Descriptors mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigCredentialsRoundTrip(t *testing.T) {
	creds := model.Credentials{
		Email:            "a@b.com",
		Password:         "pw",
		DeveloperToken:   "dev",
		ApplicationToken: "app",
		UserAgent:        "ua",
		ClientEmail:      "client@b.com",
	}
	cfg := &Config{}
	cfg.SetCredentials(creds)
	if diff := cmp.Diff(creds, cfg.Credentials()); diff != "" {
		t.Fatalf("credentials mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Email: "a", Services: []string{"Ad"}}
	cc := cfg.Clone()
	cc.Services[0] = "Campaign"
	cc.Email = "b"
	if cfg.Services[0] != "Ad" || cfg.Email != "a" {
		t.Fatalf("Clone shares state with original: %+v", cfg)
	}
}

// TestTimeoutsWithDefaults verifies that WithDefaults preserves explicitly set
// timeout values and fills in defaults for zero values.
func TestTimeoutsWithDefaults(t *testing.T) {
	out := Timeouts{Call: time.Second}.WithDefaults()

	if out.Call != time.Second {
		t.Fatalf("Call overwritten: got %v", out.Call)
	}
	if out.Fetch != 30*time.Second {
		t.Fatalf("Fetch default mismatch: %v", out.Fetch)
	}
	if got := (Timeouts{}).WithDefaults().Call; got != 60*time.Second {
		t.Fatalf("Call default mismatch: %v", got)
	}
}

// TestExtractPrefixed checks that only prefixed keys are extracted, with the
// prefix stripped.
func TestExtractPrefixed(t *testing.T) {
	conf := map[string]string{"adwords.email": "a@b.com", "other.key": "x"}
	got := ExtractPrefixed(conf, "adwords.")
	want := map[string]string{"email": "a@b.com"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ExtractPrefixed mismatch (-want +got):\n%s", diff)
	}
}

func TestFromMap(t *testing.T) {
	conf := map[string]string{
		"adwords.email":          "a@b.com",
		"adwords.password":       "pw",
		"adwords.services":       "Campaign, AdGroup,",
		"adwords.debug":          "true",
		"adwords.timeouts.fetch": "5s",
		"adwords.client_email":   "old@b.com",
		"other.key":              "x",
	}
	cfg, err := FromMap(conf, DefaultPrefix, map[string]string{"client_email": "new@b.com"})
	if err != nil {
		t.Fatalf("FromMap returned error: %v", err)
	}

	want := &Config{
		Email:       "a@b.com",
		Password:    "pw",
		ClientEmail: "new@b.com",
		Services:    []string{"Campaign", "AdGroup"},
		Debug:       true,
		Timeouts:    Timeouts{Fetch: 5 * time.Second},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("FromMap mismatch (-want +got):\n%s", diff)
	}
}

func TestFromMap_Errors(t *testing.T) {
	tests := []struct {
		name    string
		conf    map[string]string
		wantErr string
	}{
		{name: "unknown option", conf: map[string]string{"adwords.colour": "red"}, wantErr: "unknown configuration option"},
		{name: "bad bool", conf: map[string]string{"adwords.debug": "maybe"}, wantErr: `option "debug"`},
		{name: "bad duration", conf: map[string]string{"adwords.timeouts.call": "soon"}, wantErr: `option "timeouts.call"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromMap(tt.conf, DefaultPrefix, nil)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("FromMap error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
