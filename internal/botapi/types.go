package botapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ChatID identifies a chat either by numeric ID or by public username
// (@channelusername). It marshals to a JSON integer or string accordingly.
type ChatID struct {
	ID       int64
	Username string
}

// ChatIDInt returns a ChatID for a numeric chat identifier.
func ChatIDInt(id int64) ChatID {
	return ChatID{ID: id}
}

// ChatUsername returns a ChatID for a public username. A missing leading "@"
// is added.
func ChatUsername(name string) ChatID {
	if !strings.HasPrefix(name, "@") {
		name = "@" + name
	}
	return ChatID{Username: name}
}

// IsZero reports whether neither an ID nor a username is set.
func (c ChatID) IsZero() bool {
	return c.ID == 0 && c.Username == ""
}

// String returns the username when set, the decimal ID otherwise.
func (c ChatID) String() string {
	if c.Username != "" {
		return c.Username
	}
	return strconv.FormatInt(c.ID, 10)
}

// MarshalJSON implements json.Marshaler.
func (c ChatID) MarshalJSON() ([]byte, error) {
	if c.Username != "" {
		return json.Marshal(c.Username)
	}
	return strconv.AppendInt(nil, c.ID, 10), nil
}

// UnmarshalJSON implements json.Unmarshaler. Quoted numeric IDs are accepted
// the same way the Bot API accepts them.
func (c *ChatID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("botapi: chat id: %w", err)
		}
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			*c = ChatID{ID: id}
			return nil
		}
		if s == "" {
			return fmt.Errorf("botapi: chat id: empty username")
		}
		*c = ChatID{Username: s}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("botapi: chat id: %w", err)
	}
	id, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return fmt.Errorf("botapi: chat id %s is not an integer", n)
	}
	*c = ChatID{ID: id}
	return nil
}

// User represents a Telegram user or bot.
type User struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// MessageEntity represents a special entity in a text (e.g., hashtags, URLs, bot commands).
type MessageEntity struct {
	Type          string `json:"type"`
	Offset        int    `json:"offset"`
	Length        int    `json:"length"`
	URL           string `json:"url,omitempty"`
	User          *User  `json:"user,omitempty"`
	Language      string `json:"language,omitempty"`
	CustomEmojiID string `json:"custom_emoji_id,omitempty"`
}

// LinkPreviewOptions controls link preview generation for a text message.
type LinkPreviewOptions struct {
	IsDisabled       bool   `json:"is_disabled,omitempty"`
	URL              string `json:"url,omitempty"`
	PreferSmallMedia bool   `json:"prefer_small_media,omitempty"`
	PreferLargeMedia bool   `json:"prefer_large_media,omitempty"`
	ShowAboveText    bool   `json:"show_above_text,omitempty"`
}

// ReplyParameters describes the message being replied to.
type ReplyParameters struct {
	MessageID                int             `json:"message_id"`
	ChatID                   *ChatID         `json:"chat_id,omitempty"`
	AllowSendingWithoutReply bool            `json:"allow_sending_without_reply,omitempty"`
	Quote                    string          `json:"quote,omitempty"`
	QuoteParseMode           string          `json:"quote_parse_mode,omitempty"`
	QuoteEntities            []MessageEntity `json:"quote_entities,omitempty"`
	QuotePosition            int             `json:"quote_position,omitempty"`
}

// InputPollOption is one answer option of a poll being sent.
type InputPollOption struct {
	Text          string          `json:"text"`
	TextParseMode string          `json:"text_parse_mode,omitempty"`
	TextEntities  []MessageEntity `json:"text_entities,omitempty"`
}

// InputChecklist is the checklist sent by sendChecklist.
type InputChecklist struct {
	Title string               `json:"title,omitempty"`
	Tasks []InputChecklistTask `json:"tasks,omitempty"`
}

// InputChecklistTask is a single task of an InputChecklist.
type InputChecklistTask struct {
	Text        string `json:"text"`
	IsCompleted bool   `json:"is_completed,omitempty"`
}

// DraftMessage is the partial content streamed by sendMessageDraft.
type DraftMessage struct {
	Text      string          `json:"text,omitempty"`
	ParseMode string          `json:"parse_mode,omitempty"`
	Entities  []MessageEntity `json:"entities,omitempty"`
}

// APIResponse is the generic wrapper returned by the Telegram Bot API.
type APIResponse[T any] struct {
	OK          bool                `json:"ok"`
	Result      T                   `json:"result"`
	Description string              `json:"description,omitempty"`
	ErrorCode   int                 `json:"error_code,omitempty"`
	Parameters  *ResponseParameters `json:"parameters,omitempty"`
}

// ResponseParameters contains information about why a request was unsuccessful.
type ResponseParameters struct {
	MigrateToChatID int64 `json:"migrate_to_chat_id,omitempty"`
	RetryAfter      int   `json:"retry_after,omitempty"`
}

// APIError represents an error returned by the Telegram Bot API.
type APIError struct {
	Code            int    `json:"error_code"`
	Description     string `json:"description"`
	RetryAfter      int    `json:"retry_after,omitempty"`
	MigrateToChatID int64  `json:"migrate_to_chat_id,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("telegram: %d %s (retry after %ds)", e.Code, e.Description, e.RetryAfter)
	}
	return fmt.Sprintf("telegram: %d %s", e.Code, e.Description)
}
