package tempmail

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/tempmailhq/client-go/internal/api"
)

// Message is a read-only projection of a message held by the server.
// Deleting it server-side invalidates the ID for subsequent calls.
type Message struct {
	ID          string
	From        string
	To          string
	Cc          []string
	Subject     string
	BodyText    string
	BodyHTML    string
	CreatedAt   time.Time
	Attachments []Attachment
}

// Attachment describes a file attached to a message. Use
// Client.DownloadAttachment to fetch its content.
type Attachment struct {
	ID   string
	Name string
	Size int
}

// ListMessages returns the messages received at the given address, in
// server order. An empty email fails locally with a ValidationError
// before any network call.
func (c *Client) ListMessages(ctx context.Context, email string, opts ...ListMessagesOption) ([]Message, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, &ValidationError{Detail: "email address is required"}
	}

	query := url.Values{}
	for _, opt := range opts {
		opt(query)
	}

	resp, err := c.api.ListMessages(ctx, email, query)
	if err != nil {
		return nil, wrapError(err)
	}

	messages := make([]Message, 0, len(resp))
	for i := range resp {
		msg, err := messageFromWire(&resp[i])
		if err != nil {
			return nil, err
		}
		messages = append(messages, *msg)
	}
	return messages, nil
}

// GetMessage retrieves a single message by ID.
func (c *Client) GetMessage(ctx context.Context, id string) (*Message, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, &ValidationError{Detail: "message ID is required"}
	}

	resp, err := c.api.GetMessage(ctx, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return messageFromWire(resp)
}

// DeleteMessage deletes a message by ID. Success is signalled by a nil
// error.
func (c *Client) DeleteMessage(ctx context.Context, id string) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	if id == "" {
		return &ValidationError{Detail: "message ID is required"}
	}
	return wrapError(c.api.DeleteMessage(ctx, id))
}

// GetMessageSource returns the raw RFC 822 source of a message.
func (c *Client) GetMessageSource(ctx context.Context, id string) (string, error) {
	if err := c.checkClosed(); err != nil {
		return "", err
	}
	if id == "" {
		return "", &ValidationError{Detail: "message ID is required"}
	}

	source, err := c.api.GetMessageSource(ctx, id)
	if err != nil {
		return "", wrapError(err)
	}
	return source, nil
}

// DownloadAttachment returns the raw bytes of an attachment.
func (c *Client) DownloadAttachment(ctx context.Context, id string) ([]byte, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, &ValidationError{Detail: "attachment ID is required"}
	}

	data, err := c.api.DownloadAttachment(ctx, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return data, nil
}

// messageFromWire converts a wire message into a Message. Missing
// required fields and malformed timestamps fail with a ValidationError;
// optional fields (cc, body_html, attachments, created_at) default to
// empty values.
func messageFromWire(w *api.Message) (*Message, error) {
	required := []struct {
		name  string
		value *string
	}{
		{"id", w.ID},
		{"from", w.From},
		{"to", w.To},
		{"subject", w.Subject},
		{"body_text", w.BodyText},
	}
	for _, f := range required {
		if f.value == nil {
			return nil, &ValidationError{
				Detail: fmt.Sprintf("message is missing required field %q", f.name),
			}
		}
	}

	var createdAt time.Time
	if w.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339, w.CreatedAt)
		if err != nil {
			return nil, &ValidationError{
				Detail: fmt.Sprintf("message has malformed created_at %q", w.CreatedAt),
			}
		}
		createdAt = t
	}

	cc := w.Cc
	if cc == nil {
		cc = []string{}
	}

	attachments := make([]Attachment, 0, len(w.Attachments))
	for _, a := range w.Attachments {
		attachments = append(attachments, Attachment{
			ID:   a.ID,
			Name: a.Name,
			Size: a.Size,
		})
	}

	return &Message{
		ID:          *w.ID,
		From:        *w.From,
		To:          *w.To,
		Cc:          cc,
		Subject:     *w.Subject,
		BodyText:    *w.BodyText,
		BodyHTML:    w.BodyHTML,
		CreatedAt:   createdAt,
		Attachments: attachments,
	}, nil
}
