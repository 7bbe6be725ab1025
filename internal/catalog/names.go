package catalog

// Tool names, identical to the Bot API method each tool forwards to.
const (
	SendMessage      = "sendMessage"
	ForwardMessage   = "forwardMessage"
	ForwardMessages  = "forwardMessages"
	CopyMessage      = "copyMessage"
	CopyMessages     = "copyMessages"
	SendPhoto        = "sendPhoto"
	SendAudio        = "sendAudio"
	SendDocument     = "sendDocument"
	SendVideo        = "sendVideo"
	SendAnimation    = "sendAnimation"
	SendVoice        = "sendVoice"
	SendVideoNote    = "sendVideoNote"
	SendPaidMedia    = "sendPaidMedia"
	SendMediaGroup   = "sendMediaGroup"
	SendLocation     = "sendLocation"
	SendVenue        = "sendVenue"
	SendContact      = "sendContact"
	SendPoll         = "sendPoll"
	SendChecklist    = "sendChecklist"
	SendDice         = "sendDice"
	SendMessageDraft = "sendMessageDraft"
	SendChatAction   = "sendChatAction"
)
