package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateEmail provisions a new temporary email address. All query
// parameters (email, domain, domain_type) are optional; the server
// assigns whatever is left unspecified.
func (c *Client) CreateEmail(ctx context.Context, query url.Values) (*EmailAddress, error) {
	var result EmailAddress
	if err := c.Do(ctx, http.MethodPost, "/v1/emails", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListDomains lists the available email domains in server order.
func (c *Client) ListDomains(ctx context.Context) ([]Domain, error) {
	var result DomainsResponse
	if err := c.Do(ctx, http.MethodGet, "/v1/domains", nil, nil, &result); err != nil {
		return nil, err
	}
	return result.Domains, nil
}

// ListMessages lists the messages received at an email address.
func (c *Client) ListMessages(ctx context.Context, email string, query url.Values) ([]Message, error) {
	path := fmt.Sprintf("/v1/emails/%s/messages", url.PathEscape(email))
	var result MessagesResponse
	if err := c.Do(ctx, http.MethodGet, path, query, nil, &result); err != nil {
		return nil, err
	}
	return result.Messages, nil
}

// GetMessage retrieves a single message.
func (c *Client) GetMessage(ctx context.Context, id string) (*Message, error) {
	path := fmt.Sprintf("/v1/messages/%s", url.PathEscape(id))
	var result Message
	if err := c.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteMessage deletes a single message.
func (c *Client) DeleteMessage(ctx context.Context, id string) error {
	path := fmt.Sprintf("/v1/messages/%s", url.PathEscape(id))
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// DeleteEmail deletes a mailbox and everything in it.
func (c *Client) DeleteEmail(ctx context.Context, email string) error {
	path := fmt.Sprintf("/v1/emails/%s", url.PathEscape(email))
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// GetMessageSource retrieves the raw RFC 822 source of a message.
func (c *Client) GetMessageSource(ctx context.Context, id string) (string, error) {
	path := fmt.Sprintf("/v1/messages/%s/source_code", url.PathEscape(id))
	var result MessageSourceResponse
	if err := c.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return "", err
	}
	return result.Data, nil
}

// DownloadAttachment retrieves the raw bytes of an attachment.
func (c *Client) DownloadAttachment(ctx context.Context, id string) ([]byte, error) {
	path := fmt.Sprintf("/v1/attachments/%s", url.PathEscape(id))
	return c.DoRaw(ctx, http.MethodGet, path, nil)
}
