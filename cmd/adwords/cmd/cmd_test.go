package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shamank/adwords-sdk-go/internal/testutil/soaptest"
	"github.com/shamank/adwords-sdk-go/pkg/config"
)

func TestParseArgs(t *testing.T) {
	got, err := parseArgs([]string{"ids=1", "status=Active", "ids=2", "ids=3", "note=a=b"})
	if err != nil {
		t.Fatalf("parseArgs returned error: %v", err)
	}
	want := map[string]any{
		"ids":    []string{"1", "2", "3"},
		"status": "Active",
		"note":   "a=b",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parseArgs mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"novalue", "=x"} {
		if _, err := parseArgs([]string{bad}); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func writeConfig(t *testing.T, srv *soaptest.Server) string {
	t.Helper()
	dir := t.TempDir()
	body := "adwords:\n" +
		"  email: a@b.com\n" +
		"  developer_token: dev\n" +
		"  server: " + srv.URL + "\n" +
		"  cache_dir: " + filepath.Join(dir, "cache") + "\n" +
		"  services: [Campaign]\n"
	path := filepath.Join(dir, "adwords.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile, prefix, clientEmail, verbose = "", config.DefaultPrefix, "", false
	showHeaders, refresh = false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	srv := soaptest.NewServer()
	defer srv.Close()
	srv.AddService("CampaignService", soaptest.WSDL("CampaignService",
		soaptest.Op{Name: "getCampaign", Params: []string{"id"}},
		soaptest.Op{Name: "getCampaignList", Params: []string{"ids"}, Plural: true},
	))
	srv.Handle("getCampaignList", soaptest.OK(soaptest.Response("getCampaignList", "<id>5</id>")))
	cfg := writeConfig(t, srv)

	t.Run("operations", func(t *testing.T) {
		out, err := execute(t, "operations", "--config", cfg)
		if err != nil {
			t.Fatalf("operations failed: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(out), "\n")
		if len(lines) != 3 {
			t.Fatalf("unexpected output:\n%s", out)
		}
		if !strings.HasPrefix(lines[2], "getCampaignList") || !strings.Contains(lines[2], "plural") {
			t.Fatalf("unexpected listing line %q", lines[2])
		}
	})

	t.Run("call", func(t *testing.T) {
		out, err := execute(t, "call", "getCampaignList", "ids=5", "--config", cfg, "--client-email", "c@b.com")
		if err != nil {
			t.Fatalf("call failed: %v", err)
		}
		var got []map[string]any
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, out)
		}
		if diff := cmp.Diff([]map[string]any{{"id": "5"}}, got); diff != "" {
			t.Fatalf("call output mismatch (-want +got):\n%s", diff)
		}
		if hdr := srv.Last().Header; hdr["clientEmail"] != "c@b.com" || hdr["email"] != "a@b.com" {
			t.Fatalf("unexpected headers %v", hdr)
		}
	})

	t.Run("call unknown operation", func(t *testing.T) {
		if _, err := execute(t, "call", "nope", "--config", cfg); err == nil {
			t.Fatal("expected error for unknown operation")
		}
	})

	t.Run("wsdl refresh", func(t *testing.T) {
		before := srv.Fetches("CampaignService")
		out, err := execute(t, "wsdl", "--refresh", "--config", cfg)
		if err != nil {
			t.Fatalf("wsdl failed: %v", err)
		}
		if !strings.HasSuffix(strings.TrimSpace(out), filepath.Join("api", "adwords", "v11", "CampaignService?wsdl")) {
			t.Fatalf("unexpected output %q", out)
		}
		if srv.Fetches("CampaignService") != before+1 {
			t.Fatal("expected --refresh to download the description again")
		}
	})
}
