package api

// EmailAddress represents the POST /v1/emails response.
type EmailAddress struct {
	Email string `json:"email"`
	TTL   int    `json:"ttl"`
}

// Domain represents a single entry in the GET /v1/domains response.
type Domain struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// DomainsResponse represents the GET /v1/domains response.
type DomainsResponse struct {
	Domains []Domain `json:"domains"`
}

// Attachment represents an attachment entry inside a message.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size int    `json:"size"`
}

// Message represents a message as returned by the API.
//
// Required fields are pointers so the caller can distinguish a missing
// field from an empty value when validating the payload.
type Message struct {
	ID          *string      `json:"id"`
	From        *string      `json:"from"`
	To          *string      `json:"to"`
	Cc          []string     `json:"cc"`
	Subject     *string      `json:"subject"`
	BodyText    *string      `json:"body_text"`
	BodyHTML    string       `json:"body_html"`
	CreatedAt   string       `json:"created_at"`
	Attachments []Attachment `json:"attachments"`
}

// MessagesResponse represents the GET /v1/emails/{email}/messages response.
type MessagesResponse struct {
	Messages []Message `json:"messages"`
}

// MessageSourceResponse represents the GET /v1/messages/{id}/source_code response.
type MessageSourceResponse struct {
	Data string `json:"data"`
}

// RateLimit is a snapshot of the caller's API quota, taken either from
// response headers or from the GET /v1/rate_limit body.
type RateLimit struct {
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
	Used      int `json:"used"`
	Reset     int `json:"reset"`
}
