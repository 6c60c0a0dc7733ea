package cmd

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/talent-alchemy/internal/screen"
	"github.com/spigell/talent-alchemy/internal/talent"
)

type backendStub struct {
	mu    sync.Mutex
	paths []string
	sent  string
}

func (b *backendStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.paths = append(b.paths, r.Method+" "+r.URL.Path+"?"+r.URL.RawQuery)
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case strings.HasSuffix(r.URL.Path, "/search/search/"):
		_, _ = io.WriteString(w, `{"matches":[
			{"id":"1","name":"Ada","skills":["React"],"experience":"6 years","similarity_score":0.9},
			{"id":"2","name":"Bob","skills":["Python"],"experience":"2 years","similarity_score":0.5}
		],"analysis":"ok"}`)
	case strings.HasSuffix(r.URL.Path, "/generate-email"):
		_, _ = io.WriteString(w, `{"subject":"Hi","body":"Template `+r.URL.Query().Get("template")+`"}`)
	case strings.HasSuffix(r.URL.Path, "/send-email"):
		b.mu.Lock()
		b.sent = string(body)
		b.mu.Unlock()
		_, _ = io.WriteString(w, `{"status":"sent"}`)
	case strings.HasSuffix(r.URL.Path, "/screening-questions"):
		_, _ = io.WriteString(w, `{"questions":["Q1"]}`)
	default:
		_, _ = io.WriteString(w, `{"basic_info":{"full_name":"Ada"},"contact_info":{"email":"ada@example.com"}}`)
	}
}

func testSession(t *testing.T, config *Config) (*session, *backendStub) {
	t.Helper()

	stub := &backendStub{}
	server := httptest.NewServer(stub)
	t.Cleanup(server.Close)

	client := talent.New(nil)
	client.APIURL = server.URL
	client.HTTPClient = server.Client()

	if config == nil {
		config = &Config{}
	}
	return &session{config: config, logger: zap.NewNop(), client: client}, stub
}

func testCommand(t *testing.T, setFlags func(*cobra.Command)) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("layout", "", "")
	cmd.Flags().StringSlice("filter", nil, "")
	cmd.Flags().String("tab", string(screen.TabProfile), "")
	cmd.Flags().String("template", "", "")
	cmd.Flags().Bool("send", false, "")
	if setFlags != nil {
		setFlags(cmd)
	}
	return cmd
}

func TestPlainSearchAppliesFlags(t *testing.T) {
	s, stub := testSession(t, nil)
	cmd := testCommand(t, func(c *cobra.Command) {
		_ = c.Flags().Set("layout", "table")
		_ = c.Flags().Set("filter", "pyhton")
	})

	search, err := plainSearch(context.Background(), cmd, s, "python people")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stub.paths) != 1 {
		t.Fatalf("expected one request, got %v", stub.paths)
	}
	if search.Layout() != screen.LayoutTable {
		t.Fatalf("expected table layout, got %s", search.Layout())
	}
	visible := search.Visible()
	if len(visible) != 1 || visible[0].Name != "Bob" {
		t.Fatalf("expected only Bob after the Python filter, got %+v", visible)
	}
}

func TestPlainSearchFallsBackToConfig(t *testing.T) {
	config := &Config{}
	config.Search = &struct {
		Layout  string   `mapstructure:"layout"`
		Filters []string `mapstructure:"filters"`
	}{Layout: "table", Filters: []string{"react"}}
	s, _ := testSession(t, config)

	search, err := plainSearch(context.Background(), testCommand(t, nil), s, "anyone")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if search.Layout() != screen.LayoutTable {
		t.Fatalf("expected table layout from config")
	}
	if got := search.Filters().Labels(); len(got) != 1 || got[0] != "React" {
		t.Fatalf("expected React filter from config, got %v", got)
	}
}

func TestPlainSearchRejectsUnknownInput(t *testing.T) {
	s, stub := testSession(t, nil)

	for name, set := range map[string]func(*cobra.Command){
		"layout": func(c *cobra.Command) { _ = c.Flags().Set("layout", "cards") },
		"filter": func(c *cobra.Command) { _ = c.Flags().Set("filter", "Haskell") },
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := plainSearch(context.Background(), testCommand(t, set), s, "x"); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}

	if len(stub.paths) != 0 {
		t.Fatalf("expected no requests, got %v", stub.paths)
	}
}

func TestProfileOptions(t *testing.T) {
	tests := []struct {
		name     string
		flags    map[string]string
		config   *Config
		wantErr  bool
		tab      screen.Tab
		template talent.Template
	}{
		{name: "defaults", tab: screen.TabProfile, template: talent.TemplateInitialOutreach},
		{
			name:     "template by label",
			flags:    map[string]string{"tab": "outreach", "template": "Congratulations"},
			tab:      screen.TabOutreach,
			template: talent.TemplateCongratulations,
		},
		{
			name: "template from config",
			config: &Config{Outreach: &struct {
				Template string `mapstructure:"template"`
			}{Template: "regret"}},
			tab:      screen.TabProfile,
			template: talent.TemplateRegret,
		},
		{name: "unknown tab", flags: map[string]string{"tab": "notes"}, wantErr: true},
		{name: "unknown template", flags: map[string]string{"template": "hello"}, wantErr: true},
		{name: "send outside outreach", flags: map[string]string{"send": "true"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := testCommand(t, func(c *cobra.Command) {
				for k, v := range tt.flags {
					_ = c.Flags().Set(k, v)
				}
			})
			config := tt.config
			if config == nil {
				config = &Config{}
			}

			opts, err := profileOptions(cmd, config)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if opts.tab != tt.tab || opts.template != tt.template {
				t.Fatalf("got tab %s template %s", opts.tab, opts.template)
			}
		})
	}
}

func TestPlainProfileFetchesChosenTemplateOnce(t *testing.T) {
	s, stub := testSession(t, nil)

	p := plainProfile(context.Background(), s, "42", plainProfileOptions{
		tab:      screen.TabOutreach,
		template: talent.TemplateRegret,
		send:     true,
	})

	want := []string{
		"GET /api/search/resume/42?",
		"POST /api/search/resume/42/generate-email?template=regret",
		"POST /api/search/resume/42/send-email?",
	}
	if strings.Join(stub.paths, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected requests:\n%s", strings.Join(stub.paths, "\n"))
	}
	if p.SendStatus() != screen.SendSucceeded {
		t.Fatalf("expected send to succeed, got %q", p.SendStatus())
	}
	if !strings.Contains(stub.sent, `"to":"ada@example.com"`) || !strings.Contains(stub.sent, "Template regret") {
		t.Fatalf("unexpected send body %s", stub.sent)
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)

	if got := out.String(); got != app+" version: unknown\n" {
		t.Fatalf("unexpected version output %q", got)
	}
}
