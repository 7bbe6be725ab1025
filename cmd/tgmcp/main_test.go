package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/flemzord/tgmcp/internal/catalog"
	"github.com/flemzord/tgmcp/internal/config"
)

const testToken = "123456:test-token"

// run executes the root command with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := rootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), err
}

// writeTestConfig writes a config pointing the transport at apiURL.
func writeTestConfig(t *testing.T, apiURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tgmcp.yaml")
	content := fmt.Sprintf(`version: "1"
telegram:
  token: %s
  api_url: %s
  timeout: 5s
  max_retries: 1
log:
  level: error
`, testToken, apiURL)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// botAPI serves Bot API requests, recording the last method and body.
type botAPI struct {
	*httptest.Server

	mu     sync.Mutex
	method string
	body   map[string]any
}

func (a *botAPI) last() (string, map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.method, a.body
}

func newBotAPI(t *testing.T, result string) *botAPI {
	t.Helper()
	api := &botAPI{}
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		prefix := "/bot" + testToken + "/"
		if !strings.HasPrefix(r.URL.Path, prefix) {
			http.NotFound(w, r)
			return
		}
		data, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(data, &body)

		api.mu.Lock()
		api.method = strings.TrimPrefix(r.URL.Path, prefix)
		api.body = body
		api.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"ok":true,"result":%s}`, result)
	}))
	t.Cleanup(api.Close)
	return api
}

func TestVersion(t *testing.T) {
	t.Parallel()
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.HasPrefix(out, "tgmcp dev") {
		t.Errorf("output = %q", out)
	}
}

func TestToolsList(t *testing.T) {
	t.Parallel()
	out, err := run(t, "", "tools", "list")
	if err != nil {
		t.Fatalf("tools list error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 22 {
		t.Fatalf("got %d lines, want 22:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], catalog.SendMessage+" ") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[21], catalog.SendChatAction+" ") {
		t.Errorf("last line = %q", lines[21])
	}
}

func TestToolsListJSON(t *testing.T) {
	t.Parallel()
	out, err := run(t, "", "tools", "list", "--json")
	if err != nil {
		t.Fatalf("tools list --json error: %v", err)
	}
	var tools []struct {
		Name        string          `json:"name"`
		InputSchema json.RawMessage `json:"inputSchema"`
	}
	if err := json.Unmarshal([]byte(out), &tools); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if len(tools) != 22 || tools[0].Name != catalog.SendMessage {
		t.Errorf("got %d tools, first %q", len(tools), tools[0].Name)
	}
	for _, tool := range tools {
		if len(tool.InputSchema) == 0 {
			t.Errorf("%s: empty inputSchema", tool.Name)
		}
	}
}

func TestToolsShow(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "tools", "show", catalog.SendDice)
	if err != nil {
		t.Fatalf("tools show error: %v", err)
	}
	if !strings.Contains(out, `"name": "sendDice"`) {
		t.Errorf("output missing name:\n%s", out)
	}

	if _, err := run(t, "", "tools", "show", "sendTelepathy"); !errors.Is(err, catalog.ErrToolNotFound) {
		t.Errorf("expected ErrToolNotFound, got %v", err)
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()
	cfg := writeTestConfig(t, "https://api.telegram.org")

	out, err := run(t, "", "sanitize", "--config", cfg, "Hello[1]  world 【4:0†source】")
	if err != nil {
		t.Fatalf("sanitize error: %v", err)
	}
	if out != "Hello world\n" {
		t.Errorf("output = %q", out)
	}

	out, err = run(t, "  from [2] stdin  \n", "sanitize", "--config", cfg)
	if err != nil {
		t.Fatalf("sanitize stdin error: %v", err)
	}
	if out != "from stdin\n" {
		t.Errorf("stdin output = %q", out)
	}
}

func TestCallSendMessage(t *testing.T) {
	t.Parallel()
	api := newBotAPI(t, `{"message_id":10,"text":"Paris"}`)
	cfg := writeTestConfig(t, api.URL)

	out, err := run(t, "", "call", "--config", cfg, catalog.SendMessage,
		"--args", `{"chat_id":-1001234567890123,"text":"Paris[1]  "}`)
	if err != nil {
		t.Fatalf("call error: %v", err)
	}

	method, body := api.last()
	if method != catalog.SendMessage {
		t.Errorf("method = %q", method)
	}
	if body["text"] != "Paris" {
		t.Errorf("forwarded text = %v", body["text"])
	}
	want := "{\n  \"message_id\": 10,\n  \"text\": \"Paris\"\n}\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestCallArgsFromStdin(t *testing.T) {
	t.Parallel()
	api := newBotAPI(t, `true`)
	cfg := writeTestConfig(t, api.URL)

	out, err := run(t, `{"chat_id":123,"action":"typing"}`, "call", "--config", cfg, catalog.SendChatAction, "--args", "-")
	if err != nil {
		t.Fatalf("call error: %v", err)
	}
	if out != "true\n" {
		t.Errorf("output = %q", out)
	}
	if _, body := api.last(); body["action"] != "typing" {
		t.Errorf("forwarded body = %v", body)
	}
}

func TestCallStrictRejectsUnknownField(t *testing.T) {
	t.Parallel()
	api := newBotAPI(t, `true`)
	cfg := writeTestConfig(t, api.URL)

	_, err := run(t, "", "call", "--config", cfg, catalog.SendDice, "--strict", "--args", `{"chat_id":1,"dice":"x"}`)
	if err == nil {
		t.Fatal("expected strict decode error")
	}
	if method, _ := api.last(); method != "" {
		t.Errorf("request sent despite strict failure: %s", method)
	}
}

func TestCallInvalidArgs(t *testing.T) {
	t.Parallel()
	cfg := writeTestConfig(t, "https://api.telegram.org")

	if _, err := run(t, "", "call", "--config", cfg, catalog.SendDice, "--args", `[1,2]`); err == nil {
		t.Fatal("expected error for non-object args")
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()
	api := newBotAPI(t, `{"id":123456,"is_bot":true,"first_name":"Test","username":"test_bot"}`)
	cfg := writeTestConfig(t, api.URL)

	out, err := run(t, "", "check", "--config", cfg)
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	if !strings.Contains(out, "@test_bot (id 123456)") {
		t.Errorf("output = %q", out)
	}
	if strings.Contains(out, testToken) {
		t.Errorf("token printed: %q", out)
	}
}

func TestInitAnswersWriteLoadableConfig(t *testing.T) {
	t.Parallel()

	a := defaultAnswers()
	a.LogLevel = "debug"
	path := filepath.Join(t.TempDir(), "nested", "tgmcp.yaml")
	if err := writeConfig(path, a.config()); err != nil {
		t.Fatalf("writeConfig() error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), tokenRef) {
		t.Errorf("empty token should be written as %s:\n%s", tokenRef, raw)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("mode = %o, want 600", perm)
	}

	cfg, err := config.Parse(bytes.ReplaceAll(raw, []byte(tokenRef), []byte(testToken)))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}
