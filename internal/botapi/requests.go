package botapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Request is a typed Bot API request body. Each implementation names the
// method it is sent to.
type Request interface {
	Method() string
}

// SendMessageRequest is the request body for the sendMessage method.
type SendMessageRequest struct {
	BusinessConnectionID    string              `json:"business_connection_id,omitempty"`
	ChatID                  ChatID              `json:"chat_id"`
	MessageThreadID         int                 `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID   int                 `json:"direct_messages_topic_id,omitempty"`
	Text                    string              `json:"text"`
	ParseMode               string              `json:"parse_mode,omitempty"`
	Entities                []MessageEntity     `json:"entities,omitempty"`
	LinkPreviewOptions      *LinkPreviewOptions `json:"link_preview_options,omitempty"`
	DisableNotification     bool                `json:"disable_notification,omitempty"`
	ProtectContent          bool                `json:"protect_content,omitempty"`
	AllowPaidBroadcast      bool                `json:"allow_paid_broadcast,omitempty"`
	MessageEffectID         string              `json:"message_effect_id,omitempty"`
	SuggestedPostParameters json.RawMessage     `json:"suggested_post_parameters,omitempty"`
	ReplyParameters         *ReplyParameters    `json:"reply_parameters,omitempty"`
	ReplyMarkup             json.RawMessage     `json:"reply_markup,omitempty"`
}

// Method implements Request.
func (SendMessageRequest) Method() string { return "sendMessage" }

// ForwardMessageRequest is the request body for the forwardMessage method.
type ForwardMessageRequest struct {
	ChatID                  ChatID          `json:"chat_id"`
	MessageThreadID         int             `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID   int             `json:"direct_messages_topic_id,omitempty"`
	FromChatID              ChatID          `json:"from_chat_id"`
	MessageID               int             `json:"message_id"`
	VideoStartTimestamp     int             `json:"video_start_timestamp,omitempty"`
	DisableNotification     bool            `json:"disable_notification,omitempty"`
	ProtectContent          bool            `json:"protect_content,omitempty"`
	MessageEffectID         string          `json:"message_effect_id,omitempty"`
	SuggestedPostParameters json.RawMessage `json:"suggested_post_parameters,omitempty"`
}

// Method implements Request.
func (ForwardMessageRequest) Method() string { return "forwardMessage" }

// ForwardMessagesRequest is the request body for the forwardMessages method.
type ForwardMessagesRequest struct {
	ChatID                ChatID `json:"chat_id"`
	MessageThreadID       int    `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID int    `json:"direct_messages_topic_id,omitempty"`
	FromChatID            ChatID `json:"from_chat_id"`
	MessageIDs            []int  `json:"message_ids"`
	DisableNotification   bool   `json:"disable_notification,omitempty"`
	ProtectContent        bool   `json:"protect_content,omitempty"`
}

// Method implements Request.
func (ForwardMessagesRequest) Method() string { return "forwardMessages" }

// CopyMessageRequest is the request body for the copyMessage method.
type CopyMessageRequest struct {
	ChatID                  ChatID           `json:"chat_id"`
	MessageThreadID         int              `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID   int              `json:"direct_messages_topic_id,omitempty"`
	FromChatID              ChatID           `json:"from_chat_id"`
	MessageID               int              `json:"message_id"`
	VideoStartTimestamp     int              `json:"video_start_timestamp,omitempty"`
	Caption                 string           `json:"caption,omitempty"`
	ParseMode               string           `json:"parse_mode,omitempty"`
	CaptionEntities         []MessageEntity  `json:"caption_entities,omitempty"`
	ShowCaptionAboveMedia   bool             `json:"show_caption_above_media,omitempty"`
	DisableNotification     bool             `json:"disable_notification,omitempty"`
	ProtectContent          bool             `json:"protect_content,omitempty"`
	AllowPaidBroadcast      bool             `json:"allow_paid_broadcast,omitempty"`
	MessageEffectID         string           `json:"message_effect_id,omitempty"`
	SuggestedPostParameters json.RawMessage  `json:"suggested_post_parameters,omitempty"`
	ReplyParameters         *ReplyParameters `json:"reply_parameters,omitempty"`
	ReplyMarkup             json.RawMessage  `json:"reply_markup,omitempty"`
}

// Method implements Request.
func (CopyMessageRequest) Method() string { return "copyMessage" }

// CopyMessagesRequest is the request body for the copyMessages method.
type CopyMessagesRequest struct {
	ChatID                ChatID `json:"chat_id"`
	MessageThreadID       int    `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID int    `json:"direct_messages_topic_id,omitempty"`
	FromChatID            ChatID `json:"from_chat_id"`
	MessageIDs            []int  `json:"message_ids"`
	DisableNotification   bool   `json:"disable_notification,omitempty"`
	ProtectContent        bool   `json:"protect_content,omitempty"`
	RemoveCaption         bool   `json:"remove_caption,omitempty"`
}

// Method implements Request.
func (CopyMessagesRequest) Method() string { return "copyMessages" }

// SendPhotoRequest is the request body for the sendPhoto method.
type SendPhotoRequest struct {
	BusinessConnectionID    string           `json:"business_connection_id,omitempty"`
	ChatID                  ChatID           `json:"chat_id"`
	MessageThreadID         int              `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID   int              `json:"direct_messages_topic_id,omitempty"`
	Photo                   string           `json:"photo"`
	Caption                 string           `json:"caption,omitempty"`
	ParseMode               string           `json:"parse_mode,omitempty"`
	CaptionEntities         []MessageEntity  `json:"caption_entities,omitempty"`
	ShowCaptionAboveMedia   bool             `json:"show_caption_above_media,omitempty"`
	HasSpoiler              bool             `json:"has_spoiler,omitempty"`
	DisableNotification     bool             `json:"disable_notification,omitempty"`
	ProtectContent          bool             `json:"protect_content,omitempty"`
	AllowPaidBroadcast      bool             `json:"allow_paid_broadcast,omitempty"`
	MessageEffectID         string           `json:"message_effect_id,omitempty"`
	SuggestedPostParameters json.RawMessage  `json:"suggested_post_parameters,omitempty"`
	ReplyParameters         *ReplyParameters `json:"reply_parameters,omitempty"`
	ReplyMarkup             json.RawMessage  `json:"reply_markup,omitempty"`
}

// Method implements Request.
func (SendPhotoRequest) Method() string { return "sendPhoto" }

// SendAudioRequest is the request body for the sendAudio method.
type SendAudioRequest struct {
	BusinessConnectionID    string           `json:"business_connection_id,omitempty"`
	ChatID                  ChatID           `json:"chat_id"`
	MessageThreadID         int              `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID   int              `json:"direct_messages_topic_id,omitempty"`
	Audio                   string           `json:"audio"`
	Caption                 string           `json:"caption,omitempty"`
	ParseMode               string           `json:"parse_mode,omitempty"`
	CaptionEntities         []MessageEntity  `json:"caption_entities,omitempty"`
	Duration                int              `json:"duration,omitempty"`
	Performer               string           `json:"performer,omitempty"`
	Title                   string           `json:"title,omitempty"`
	Thumbnail               string           `json:"thumbnail,omitempty"`
	DisableNotification     bool             `json:"disable_notification,omitempty"`
	ProtectContent          bool             `json:"protect_content,omitempty"`
	AllowPaidBroadcast      bool             `json:"allow_paid_broadcast,omitempty"`
	MessageEffectID         string           `json:"message_effect_id,omitempty"`
	SuggestedPostParameters json.RawMessage  `json:"suggested_post_parameters,omitempty"`
	ReplyParameters         *ReplyParameters `json:"reply_parameters,omitempty"`
	ReplyMarkup             json.RawMessage  `json:"reply_markup,omitempty"`
}

// Method implements Request.
func (SendAudioRequest) Method() string { return "sendAudio" }

// SendDocumentRequest is the request body for the sendDocument method.
type SendDocumentRequest struct {
	BusinessConnectionID        string           `json:"business_connection_id,omitempty"`
	ChatID                      ChatID           `json:"chat_id"`
	MessageThreadID             int              `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID       int              `json:"direct_messages_topic_id,omitempty"`
	Document                    string           `json:"document"`
	Thumbnail                   string           `json:"thumbnail,omitempty"`
	Caption                     string           `json:"caption,omitempty"`
	ParseMode                   string           `json:"parse_mode,omitempty"`
	CaptionEntities             []MessageEntity  `json:"caption_entities,omitempty"`
	DisableContentTypeDetection bool             `json:"disable_content_type_detection,omitempty"`
	DisableNotification         bool             `json:"disable_notification,omitempty"`
	ProtectContent              bool             `json:"protect_content,omitempty"`
	AllowPaidBroadcast          bool             `json:"allow_paid_broadcast,omitempty"`
	MessageEffectID             string           `json:"message_effect_id,omitempty"`
	SuggestedPostParameters     json.RawMessage  `json:"suggested_post_parameters,omitempty"`
	ReplyParameters             *ReplyParameters `json:"reply_parameters,omitempty"`
	ReplyMarkup                 json.RawMessage  `json:"reply_markup,omitempty"`
}

// Method implements Request.
func (SendDocumentRequest) Method() string { return "sendDocument" }

// SendVideoRequest is the request body for the sendVideo method.
type SendVideoRequest struct {
	BusinessConnectionID    string           `json:"business_connection_id,omitempty"`
	ChatID                  ChatID           `json:"chat_id"`
	MessageThreadID         int              `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID   int              `json:"direct_messages_topic_id,omitempty"`
	Video                   string           `json:"video"`
	Duration                int              `json:"duration,omitempty"`
	Width                   int              `json:"width,omitempty"`
	Height                  int              `json:"height,omitempty"`
	Thumbnail               string           `json:"thumbnail,omitempty"`
	Cover                   string           `json:"cover,omitempty"`
	StartTimestamp          int              `json:"start_timestamp,omitempty"`
	Caption                 string           `json:"caption,omitempty"`
	ParseMode               string           `json:"parse_mode,omitempty"`
	CaptionEntities         []MessageEntity  `json:"caption_entities,omitempty"`
	ShowCaptionAboveMedia   bool             `json:"show_caption_above_media,omitempty"`
	HasSpoiler              bool             `json:"has_spoiler,omitempty"`
	SupportsStreaming       bool             `json:"supports_streaming,omitempty"`
	DisableNotification     bool             `json:"disable_notification,omitempty"`
	ProtectContent          bool             `json:"protect_content,omitempty"`
	AllowPaidBroadcast      bool             `json:"allow_paid_broadcast,omitempty"`
	MessageEffectID         string           `json:"message_effect_id,omitempty"`
	SuggestedPostParameters json.RawMessage  `json:"suggested_post_parameters,omitempty"`
	ReplyParameters         *ReplyParameters `json:"reply_parameters,omitempty"`
	ReplyMarkup             json.RawMessage  `json:"reply_markup,omitempty"`
}

// Method implements Request.
func (SendVideoRequest) Method() string { return "sendVideo" }

// SendAnimationRequest is the request body for the sendAnimation method.
type SendAnimationRequest struct {
	BusinessConnectionID    string           `json:"business_connection_id,omitempty"`
	ChatID                  ChatID           `json:"chat_id"`
	MessageThreadID         int              `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID   int              `json:"direct_messages_topic_id,omitempty"`
	Animation               string           `json:"animation"`
	Duration                int              `json:"duration,omitempty"`
	Width                   int              `json:"width,omitempty"`
	Height                  int              `json:"height,omitempty"`
	Thumbnail               string           `json:"thumbnail,omitempty"`
	Caption                 string           `json:"caption,omitempty"`
	ParseMode               string           `json:"parse_mode,omitempty"`
	CaptionEntities         []MessageEntity  `json:"caption_entities,omitempty"`
	ShowCaptionAboveMedia   bool             `json:"show_caption_above_media,omitempty"`
	HasSpoiler              bool             `json:"has_spoiler,omitempty"`
	DisableNotification     bool             `json:"disable_notification,omitempty"`
	ProtectContent          bool             `json:"protect_content,omitempty"`
	AllowPaidBroadcast      bool             `json:"allow_paid_broadcast,omitempty"`
	MessageEffectID         string           `json:"message_effect_id,omitempty"`
	SuggestedPostParameters json.RawMessage  `json:"suggested_post_parameters,omitempty"`
	ReplyParameters         *ReplyParameters `json:"reply_parameters,omitempty"`
	ReplyMarkup             json.RawMessage  `json:"reply_markup,omitempty"`
}

// Method implements Request.
func (SendAnimationRequest) Method() string { return "sendAnimation" }

// SendVoiceRequest is the request body for the sendVoice method.
type SendVoiceRequest struct {
	BusinessConnectionID    string           `json:"business_connection_id,omitempty"`
	ChatID                  ChatID           `json:"chat_id"`
	MessageThreadID         int              `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID   int              `json:"direct_messages_topic_id,omitempty"`
	Voice                   string           `json:"voice"`
	Caption                 string           `json:"caption,omitempty"`
	ParseMode               string           `json:"parse_mode,omitempty"`
	CaptionEntities         []MessageEntity  `json:"caption_entities,omitempty"`
	Duration                int              `json:"duration,omitempty"`
	DisableNotification     bool             `json:"disable_notification,omitempty"`
	ProtectContent          bool             `json:"protect_content,omitempty"`
	AllowPaidBroadcast      bool             `json:"allow_paid_broadcast,omitempty"`
	MessageEffectID         string           `json:"message_effect_id,omitempty"`
	SuggestedPostParameters json.RawMessage  `json:"suggested_post_parameters,omitempty"`
	ReplyParameters         *ReplyParameters `json:"reply_parameters,omitempty"`
	ReplyMarkup             json.RawMessage  `json:"reply_markup,omitempty"`
}

// Method implements Request.
func (SendVoiceRequest) Method() string { return "sendVoice" }

// SendVideoNoteRequest is the request body for the sendVideoNote method.
type SendVideoNoteRequest struct {
	BusinessConnectionID    string           `json:"business_connection_id,omitempty"`
	ChatID                  ChatID           `json:"chat_id"`
	MessageThreadID         int              `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID   int              `json:"direct_messages_topic_id,omitempty"`
	VideoNote               string           `json:"video_note"`
	Duration                int              `json:"duration,omitempty"`
	Length                  int              `json:"length,omitempty"`
	Thumbnail               string           `json:"thumbnail,omitempty"`
	DisableNotification     bool             `json:"disable_notification,omitempty"`
	ProtectContent          bool             `json:"protect_content,omitempty"`
	AllowPaidBroadcast      bool             `json:"allow_paid_broadcast,omitempty"`
	MessageEffectID         string           `json:"message_effect_id,omitempty"`
	SuggestedPostParameters json.RawMessage  `json:"suggested_post_parameters,omitempty"`
	ReplyParameters         *ReplyParameters `json:"reply_parameters,omitempty"`
	ReplyMarkup             json.RawMessage  `json:"reply_markup,omitempty"`
}

// Method implements Request.
func (SendVideoNoteRequest) Method() string { return "sendVideoNote" }

// SendPaidMediaRequest is the request body for the sendPaidMedia method.
type SendPaidMediaRequest struct {
	BusinessConnectionID    string            `json:"business_connection_id,omitempty"`
	ChatID                  ChatID            `json:"chat_id"`
	MessageThreadID         int               `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID   int               `json:"direct_messages_topic_id,omitempty"`
	StarCount               int64             `json:"star_count"`
	Media                   []json.RawMessage `json:"media"`
	Payload                 string            `json:"payload,omitempty"`
	Caption                 string            `json:"caption,omitempty"`
	ParseMode               string            `json:"parse_mode,omitempty"`
	CaptionEntities         []MessageEntity   `json:"caption_entities,omitempty"`
	ShowCaptionAboveMedia   bool              `json:"show_caption_above_media,omitempty"`
	DisableNotification     bool              `json:"disable_notification,omitempty"`
	ProtectContent          bool              `json:"protect_content,omitempty"`
	AllowPaidBroadcast      bool              `json:"allow_paid_broadcast,omitempty"`
	SuggestedPostParameters json.RawMessage   `json:"suggested_post_parameters,omitempty"`
	ReplyParameters         *ReplyParameters  `json:"reply_parameters,omitempty"`
	ReplyMarkup             json.RawMessage   `json:"reply_markup,omitempty"`
}

// Method implements Request.
func (SendPaidMediaRequest) Method() string { return "sendPaidMedia" }

// SendMediaGroupRequest is the request body for the sendMediaGroup method.
type SendMediaGroupRequest struct {
	BusinessConnectionID  string            `json:"business_connection_id,omitempty"`
	ChatID                ChatID            `json:"chat_id"`
	MessageThreadID       int               `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID int               `json:"direct_messages_topic_id,omitempty"`
	Media                 []json.RawMessage `json:"media"`
	DisableNotification   bool              `json:"disable_notification,omitempty"`
	ProtectContent        bool              `json:"protect_content,omitempty"`
	AllowPaidBroadcast    bool              `json:"allow_paid_broadcast,omitempty"`
	MessageEffectID       string            `json:"message_effect_id,omitempty"`
	ReplyParameters       *ReplyParameters  `json:"reply_parameters,omitempty"`
}

// Method implements Request.
func (SendMediaGroupRequest) Method() string { return "sendMediaGroup" }

// SendLocationRequest is the request body for the sendLocation method.
type SendLocationRequest struct {
	BusinessConnectionID    string           `json:"business_connection_id,omitempty"`
	ChatID                  ChatID           `json:"chat_id"`
	MessageThreadID         int              `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID   int              `json:"direct_messages_topic_id,omitempty"`
	Latitude                float64          `json:"latitude"`
	Longitude               float64          `json:"longitude"`
	HorizontalAccuracy      float64          `json:"horizontal_accuracy,omitempty"`
	LivePeriod              int              `json:"live_period,omitempty"`
	Heading                 int              `json:"heading,omitempty"`
	ProximityAlertRadius    int              `json:"proximity_alert_radius,omitempty"`
	DisableNotification     bool             `json:"disable_notification,omitempty"`
	ProtectContent          bool             `json:"protect_content,omitempty"`
	AllowPaidBroadcast      bool             `json:"allow_paid_broadcast,omitempty"`
	MessageEffectID         string           `json:"message_effect_id,omitempty"`
	SuggestedPostParameters json.RawMessage  `json:"suggested_post_parameters,omitempty"`
	ReplyParameters         *ReplyParameters `json:"reply_parameters,omitempty"`
	ReplyMarkup             json.RawMessage  `json:"reply_markup,omitempty"`
}

// Method implements Request.
func (SendLocationRequest) Method() string { return "sendLocation" }

// SendVenueRequest is the request body for the sendVenue method.
type SendVenueRequest struct {
	BusinessConnectionID    string           `json:"business_connection_id,omitempty"`
	ChatID                  ChatID           `json:"chat_id"`
	MessageThreadID         int              `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID   int              `json:"direct_messages_topic_id,omitempty"`
	Latitude                float64          `json:"latitude"`
	Longitude               float64          `json:"longitude"`
	Title                   string           `json:"title"`
	Address                 string           `json:"address"`
	FoursquareID            string           `json:"foursquare_id,omitempty"`
	FoursquareType          string           `json:"foursquare_type,omitempty"`
	GooglePlaceID           string           `json:"google_place_id,omitempty"`
	GooglePlaceType         string           `json:"google_place_type,omitempty"`
	DisableNotification     bool             `json:"disable_notification,omitempty"`
	ProtectContent          bool             `json:"protect_content,omitempty"`
	AllowPaidBroadcast      bool             `json:"allow_paid_broadcast,omitempty"`
	MessageEffectID         string           `json:"message_effect_id,omitempty"`
	SuggestedPostParameters json.RawMessage  `json:"suggested_post_parameters,omitempty"`
	ReplyParameters         *ReplyParameters `json:"reply_parameters,omitempty"`
	ReplyMarkup             json.RawMessage  `json:"reply_markup,omitempty"`
}

// Method implements Request.
func (SendVenueRequest) Method() string { return "sendVenue" }

// SendContactRequest is the request body for the sendContact method.
type SendContactRequest struct {
	BusinessConnectionID    string           `json:"business_connection_id,omitempty"`
	ChatID                  ChatID           `json:"chat_id"`
	MessageThreadID         int              `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID   int              `json:"direct_messages_topic_id,omitempty"`
	PhoneNumber             string           `json:"phone_number"`
	FirstName               string           `json:"first_name"`
	LastName                string           `json:"last_name,omitempty"`
	Vcard                   string           `json:"vcard,omitempty"`
	DisableNotification     bool             `json:"disable_notification,omitempty"`
	ProtectContent          bool             `json:"protect_content,omitempty"`
	AllowPaidBroadcast      bool             `json:"allow_paid_broadcast,omitempty"`
	MessageEffectID         string           `json:"message_effect_id,omitempty"`
	SuggestedPostParameters json.RawMessage  `json:"suggested_post_parameters,omitempty"`
	ReplyParameters         *ReplyParameters `json:"reply_parameters,omitempty"`
	ReplyMarkup             json.RawMessage  `json:"reply_markup,omitempty"`
}

// Method implements Request.
func (SendContactRequest) Method() string { return "sendContact" }

// SendPollRequest is the request body for the sendPoll method.
type SendPollRequest struct {
	BusinessConnectionID  string            `json:"business_connection_id,omitempty"`
	ChatID                ChatID            `json:"chat_id"`
	MessageThreadID       int               `json:"message_thread_id,omitempty"`
	Question              string            `json:"question"`
	QuestionParseMode     string            `json:"question_parse_mode,omitempty"`
	QuestionEntities      []MessageEntity   `json:"question_entities,omitempty"`
	Options               []InputPollOption `json:"options"`
	IsAnonymous           *bool             `json:"is_anonymous,omitempty"`
	Type                  string            `json:"type,omitempty"`
	AllowsMultipleAnswers bool              `json:"allows_multiple_answers,omitempty"`
	CorrectOptionID       *int              `json:"correct_option_id,omitempty"`
	Explanation           string            `json:"explanation,omitempty"`
	ExplanationParseMode  string            `json:"explanation_parse_mode,omitempty"`
	ExplanationEntities   []MessageEntity   `json:"explanation_entities,omitempty"`
	OpenPeriod            int               `json:"open_period,omitempty"`
	CloseDate             int               `json:"close_date,omitempty"`
	IsClosed              bool              `json:"is_closed,omitempty"`
	DisableNotification   bool              `json:"disable_notification,omitempty"`
	ProtectContent        bool              `json:"protect_content,omitempty"`
	AllowPaidBroadcast    bool              `json:"allow_paid_broadcast,omitempty"`
	MessageEffectID       string            `json:"message_effect_id,omitempty"`
	ReplyParameters       *ReplyParameters  `json:"reply_parameters,omitempty"`
	ReplyMarkup           json.RawMessage   `json:"reply_markup,omitempty"`
}

// Method implements Request.
func (SendPollRequest) Method() string { return "sendPoll" }

// SendChecklistRequest is the request body for the sendChecklist method.
type SendChecklistRequest struct {
	BusinessConnectionID  string           `json:"business_connection_id"`
	ChatID                ChatID           `json:"chat_id"`
	MessageThreadID       int              `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID int              `json:"direct_messages_topic_id,omitempty"`
	Checklist             InputChecklist   `json:"checklist"`
	DisableNotification   bool             `json:"disable_notification,omitempty"`
	ProtectContent        bool             `json:"protect_content,omitempty"`
	MessageEffectID       string           `json:"message_effect_id,omitempty"`
	ReplyParameters       *ReplyParameters `json:"reply_parameters,omitempty"`
	ReplyMarkup           json.RawMessage  `json:"reply_markup,omitempty"`
}

// Method implements Request.
func (SendChecklistRequest) Method() string { return "sendChecklist" }

// SendDiceRequest is the request body for the sendDice method.
type SendDiceRequest struct {
	BusinessConnectionID    string           `json:"business_connection_id,omitempty"`
	ChatID                  ChatID           `json:"chat_id"`
	MessageThreadID         int              `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID   int              `json:"direct_messages_topic_id,omitempty"`
	Emoji                   string           `json:"emoji,omitempty"`
	DisableNotification     bool             `json:"disable_notification,omitempty"`
	ProtectContent          bool             `json:"protect_content,omitempty"`
	AllowPaidBroadcast      bool             `json:"allow_paid_broadcast,omitempty"`
	MessageEffectID         string           `json:"message_effect_id,omitempty"`
	SuggestedPostParameters json.RawMessage  `json:"suggested_post_parameters,omitempty"`
	ReplyParameters         *ReplyParameters `json:"reply_parameters,omitempty"`
	ReplyMarkup             json.RawMessage  `json:"reply_markup,omitempty"`
}

// Method implements Request.
func (SendDiceRequest) Method() string { return "sendDice" }

// SendMessageDraftRequest is the request body for the sendMessageDraft method.
type SendMessageDraftRequest struct {
	BusinessConnectionID  string           `json:"business_connection_id,omitempty"`
	ChatID                ChatID           `json:"chat_id"`
	MessageThreadID       int              `json:"message_thread_id,omitempty"`
	DirectMessagesTopicID int              `json:"direct_messages_topic_id,omitempty"`
	DraftMessage          DraftMessage     `json:"draft_message"`
	ReplyParameters       *ReplyParameters `json:"reply_parameters,omitempty"`
}

// Method implements Request.
func (SendMessageDraftRequest) Method() string { return "sendMessageDraft" }

// SendChatActionRequest is the request body for the sendChatAction method.
type SendChatActionRequest struct {
	BusinessConnectionID string `json:"business_connection_id,omitempty"`
	ChatID               ChatID `json:"chat_id"`
	MessageThreadID      int    `json:"message_thread_id,omitempty"`
	Action               string `json:"action"`
}

// Method implements Request.
func (SendChatActionRequest) Method() string { return "sendChatAction" }

var requestTypes = map[string]func() Request{
	"sendMessage":      func() Request { return &SendMessageRequest{} },
	"forwardMessage":   func() Request { return &ForwardMessageRequest{} },
	"forwardMessages":  func() Request { return &ForwardMessagesRequest{} },
	"copyMessage":      func() Request { return &CopyMessageRequest{} },
	"copyMessages":     func() Request { return &CopyMessagesRequest{} },
	"sendPhoto":        func() Request { return &SendPhotoRequest{} },
	"sendAudio":        func() Request { return &SendAudioRequest{} },
	"sendDocument":     func() Request { return &SendDocumentRequest{} },
	"sendVideo":        func() Request { return &SendVideoRequest{} },
	"sendAnimation":    func() Request { return &SendAnimationRequest{} },
	"sendVoice":        func() Request { return &SendVoiceRequest{} },
	"sendVideoNote":    func() Request { return &SendVideoNoteRequest{} },
	"sendPaidMedia":    func() Request { return &SendPaidMediaRequest{} },
	"sendMediaGroup":   func() Request { return &SendMediaGroupRequest{} },
	"sendLocation":     func() Request { return &SendLocationRequest{} },
	"sendVenue":        func() Request { return &SendVenueRequest{} },
	"sendContact":      func() Request { return &SendContactRequest{} },
	"sendPoll":         func() Request { return &SendPollRequest{} },
	"sendChecklist":    func() Request { return &SendChecklistRequest{} },
	"sendDice":         func() Request { return &SendDiceRequest{} },
	"sendMessageDraft": func() Request { return &SendMessageDraftRequest{} },
	"sendChatAction":   func() Request { return &SendChatActionRequest{} },
}

// NewRequest returns a zero-valued typed request for method.
func NewRequest(method string) (Request, bool) {
	fn, ok := requestTypes[method]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// Methods returns the methods that have a typed request, sorted.
func Methods() []string {
	methods := make([]string, 0, len(requestTypes))
	for m := range requestTypes {
		methods = append(methods, m)
	}
	slices.Sort(methods)
	return methods
}

// Decode converts a loosely-typed argument mapping into the typed request for
// method. Unknown fields and mistyped values are rejected.
func Decode(method string, args map[string]any) (Request, error) {
	req, ok := NewRequest(method)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}

	data, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("botapi: marshal %s arguments: %w", method, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		return nil, fmt.Errorf("botapi: decode %s arguments: %w", method, err)
	}
	return req, nil
}
