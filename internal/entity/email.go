package entity

// InboundEmail is the webhook ingestion payload handed to the engine by the
// HTTP layer. Field names follow the webhook provider's JSON.
type InboundEmail struct {
	Headers     EmailHeaders  `json:"headers"`
	Envelope    EmailEnvelope `json:"envelope"`
	Plain       string        `json:"plain"`
	HTML        string        `json:"html"`
	Attachments []Attachment  `json:"attachments,omitempty"`
}

// EmailHeaders are the parsed RFC 5322 headers of the inbound message.
type EmailHeaders struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Subject    string `json:"subject"`
	Date       string `json:"date"`
	MessageID  string `json:"message_id"`
	References string `json:"references,omitempty"`
	InReplyTo  string `json:"in_reply_to,omitempty"`
}

// EmailEnvelope is the SMTP envelope, which survives forwarding better than
// the From header but worse than body content.
type EmailEnvelope struct {
	From string   `json:"from"`
	To   []string `json:"to"`
}

// Attachment is one decoded attachment from the webhook payload.
type Attachment struct {
	ContentType string `json:"content_type"`
	FileName    string `json:"file_name"`
	Size        int    `json:"size"`
	Content     []byte `json:"content"` // base64 in transit, decoded here
}
