package lineutil

// LINE API limits (rune counts unless noted).
// References: https://developers.line.biz/en/reference/messaging-api/
const (
	MaxTextMessageLength  = 5000 // Text message max content length
	MaxMessageActionText  = 300  // Text sent by a message action
	MaxMessagesPerReply   = 5    // Messages in one reply request
	MaxEventsPerWebhook   = 100  // Events delivered in one webhook call (application cap)
	MinReplyTokenLength   = 10   // Shorter tokens are rejected without calling the API
	MaxImageURLLength     = 2000 // Image message URLs, in bytes
	MaxQuickReplyItems    = 13   // Items in a quick reply
	MaxQuickReplyLabelLen = 20   // Quick reply action label
)
