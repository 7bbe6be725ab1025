package dispatch_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/flemzord/tgmcp/internal/botapi"
	"github.com/flemzord/tgmcp/internal/catalog"
	"github.com/flemzord/tgmcp/internal/dispatch"
	"github.com/flemzord/tgmcp/internal/dispatch/dispatchtest"
	"github.com/flemzord/tgmcp/internal/sanitize"
	"github.com/mark3labs/mcp-go/mcp"
)

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(data)
}

func TestDispatchChatActionForwardsUnchanged(t *testing.T) {
	t.Parallel()

	transport := dispatchtest.Returning(`true`)
	d := dispatch.New(transport)

	args := map[string]any{"chat_id": 123, "action": "typing"}
	res, err := d.Dispatch(context.Background(), catalog.SendChatAction, args)
	if err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}

	calls := transport.Calls()
	if len(calls) != 1 {
		t.Fatalf("len(calls) = %d, want 1", len(calls))
	}
	if calls[0].Method != catalog.SendChatAction {
		t.Errorf("method = %q, want %q", calls[0].Method, catalog.SendChatAction)
	}
	if !reflect.DeepEqual(calls[0].Args, args) {
		t.Errorf("args = %v, want %v", calls[0].Args, args)
	}
	if res.IsError {
		t.Error("IsError = true, want false")
	}
	if got := dispatch.ResultText(res); got != "true" {
		t.Errorf("result text = %q, want %q", got, "true")
	}
}

func TestDispatchNonTextToolsPassThrough(t *testing.T) {
	t.Parallel()

	c, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New() error: %v", err)
	}

	for _, name := range c.Names() {
		if name == catalog.SendMessage {
			continue
		}
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			transport := dispatchtest.Returning(`{"message_id":1}`)
			d := dispatch.New(transport)

			args := map[string]any{
				"chat_id": "@channel",
				"text":    "  keep [1] this  ",
				"caption": "also [2] kept",
			}
			before := mustJSON(t, args)

			if _, err := d.Dispatch(context.Background(), name, args); err != nil {
				t.Fatalf("Dispatch() error: %v", err)
			}
			if got := mustJSON(t, transport.Calls()[0].Args); got != before {
				t.Errorf("forwarded args = %s, want %s", got, before)
			}
			if got := mustJSON(t, args); got != before {
				t.Errorf("caller args mutated: %s", got)
			}
		})
	}
}

func TestDispatchSanitizesSendMessageText(t *testing.T) {
	t.Parallel()

	transport := dispatchtest.Returning(`{"message_id":7}`)
	d := dispatch.New(transport)

	input := "Paris is the capital of France[1]. It has a population of 2.1 million  people."
	args := map[string]any{"chat_id": 42, "text": input, "parse_mode": "HTML"}

	if _, err := d.Dispatch(context.Background(), catalog.SendMessage, args); err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}

	got := transport.Calls()[0].Args
	want := "Paris is the capital of France. It has a population of 2.1 million people."
	if got["text"] != want {
		t.Errorf("forwarded text = %q, want %q", got["text"], want)
	}
	if got["parse_mode"] != "HTML" || got["chat_id"] != 42 {
		t.Errorf("other args changed: %v", got)
	}
	if args["text"] != input {
		t.Errorf("caller args mutated: text = %q", args["text"])
	}
}

func TestDispatchSendMessageWithoutTextualText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args map[string]any
	}{
		{"absent", map[string]any{"chat_id": 1}},
		{"number", map[string]any{"chat_id": 1, "text": 12}},
		{"object", map[string]any{"chat_id": 1, "text": map[string]any{"body": "x [1]"}}},
		{"null", map[string]any{"chat_id": 1, "text": nil}},
		{"nil args", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			transport := dispatchtest.Returning(`true`)
			d := dispatch.New(transport)

			before := mustJSON(t, tt.args)
			if _, err := d.Dispatch(context.Background(), catalog.SendMessage, tt.args); err != nil {
				t.Fatalf("Dispatch() error: %v", err)
			}
			if got := mustJSON(t, transport.Calls()[0].Args); got != before {
				t.Errorf("forwarded args = %s, want %s", got, before)
			}
		})
	}
}

func TestDispatchPropagatesTransportError(t *testing.T) {
	t.Parallel()

	apiErr := &botapi.APIError{Code: 400, Description: "Bad Request: chat not found"}
	d := dispatch.New(dispatchtest.Failing(apiErr))

	res, err := d.Dispatch(context.Background(), catalog.SendMessage, map[string]any{"chat_id": 1, "text": "x"})
	if res != nil {
		t.Errorf("result = %v, want nil", res)
	}
	if err != apiErr {
		t.Fatalf("error = %v (%T), want the transport error unchanged", err, err)
	}
}

func TestDispatchForwardsUnknownTool(t *testing.T) {
	t.Parallel()

	notFound := errors.New("telegram: 404 Not Found")
	transport := &dispatchtest.MockTransport{
		CallFunc: func(_ context.Context, method string, _ map[string]any) (json.RawMessage, error) {
			if method == "sendTelepathy" {
				return nil, notFound
			}
			return json.RawMessage(`true`), nil
		},
	}
	d := dispatch.New(transport)

	_, err := d.Dispatch(context.Background(), "sendTelepathy", map[string]any{"chat_id": 1})
	if !errors.Is(err, notFound) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if got := transport.Calls()[0].Method; got != "sendTelepathy" {
		t.Errorf("method = %q, want sendTelepathy", got)
	}
}

func TestInvoke(t *testing.T) {
	t.Parallel()

	transport := dispatchtest.Returning(`{"message_id":5,"text":"hi"}`)
	d := dispatch.New(transport)

	req := mcp.CallToolRequest{}
	req.Params.Name = catalog.SendMessage
	req.Params.Arguments = map[string]any{"chat_id": 9, "text": " hi [3] "}

	res, err := d.Invoke(context.Background(), req)
	if err != nil {
		t.Fatalf("Invoke() error: %v", err)
	}
	if got := transport.Calls()[0].Args["text"]; got != "hi" {
		t.Errorf("forwarded text = %q, want %q", got, "hi")
	}
	want := "{\n  \"message_id\": 5,\n  \"text\": \"hi\"\n}"
	if got := dispatch.ResultText(res); got != want {
		t.Errorf("result text = %q, want %q", got, want)
	}
}

func TestWithSanitizer(t *testing.T) {
	t.Parallel()

	s, err := sanitize.New(sanitize.Delimiters{
		BracketOpen: "<<", BracketClose: ">>",
		CiteOpen: "{{", CiteClose: "}}",
	})
	if err != nil {
		t.Fatalf("sanitize.New() error: %v", err)
	}

	transport := dispatchtest.Returning(`true`)
	d := dispatch.New(transport, dispatch.WithSanitizer(s))

	if _, err := d.Dispatch(context.Background(), catalog.SendMessage, map[string]any{"text": "a <<src>> b"}); err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}
	if got := transport.Calls()[0].Args["text"]; got != "a b" {
		t.Errorf("forwarded text = %q, want %q", got, "a b")
	}
}

func TestDispatchConcurrent(t *testing.T) {
	t.Parallel()

	transport := &dispatchtest.MockTransport{
		CallFunc: func(_ context.Context, _ string, args map[string]any) (json.RawMessage, error) {
			return json.Marshal(args["text"])
		},
	}
	d := dispatch.New(transport)

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			text := fmt.Sprintf("msg %d[%d]", i, i)
			res, err := d.Dispatch(context.Background(), catalog.SendMessage, map[string]any{"text": text})
			if err != nil {
				errs <- err
				return
			}
			if got, want := dispatch.ResultText(res), fmt.Sprintf("%q", fmt.Sprintf("msg %d", i)); got != want {
				errs <- fmt.Errorf("result = %s, want %s", got, want)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
	if got := len(transport.Calls()); got != n {
		t.Errorf("calls = %d, want %d", got, n)
	}
}

func TestNewResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  json.RawMessage
		want string
	}{
		{"object", json.RawMessage(`{"ok":true,"ids":[1,2]}`), "{\n  \"ok\": true,\n  \"ids\": [\n    1,\n    2\n  ]\n}"},
		{"bool", json.RawMessage(`true`), "true"},
		{"empty", nil, "null"},
		{"invalid", json.RawMessage(`not json`), "not json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := dispatch.NewResult(tt.raw)
			if len(res.Content) != 1 {
				t.Fatalf("len(Content) = %d, want 1", len(res.Content))
			}
			if got := dispatch.ResultText(res); got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
		})
	}
}
