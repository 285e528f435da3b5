package tempmail

import (
	"context"
	"net/url"
)

// EmailAddress is a temporary mailbox provisioned by the service.
// The address expires server-side after TTL seconds; the client does not
// track expiry locally.
type EmailAddress struct {
	Email string
	TTL   int
}

// CreateEmail creates a new temporary email address. With no options the
// server picks both the local part and the domain. WithEmail, WithDomain
// and WithDomainType narrow the choice.
func (c *Client) CreateEmail(ctx context.Context, opts ...CreateEmailOption) (*EmailAddress, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	query := url.Values{}
	for _, opt := range opts {
		opt(query)
	}

	resp, err := c.api.CreateEmail(ctx, query)
	if err != nil {
		return nil, wrapError(err)
	}

	return &EmailAddress{
		Email: resp.Email,
		TTL:   resp.TTL,
	}, nil
}

// DeleteEmail deletes a mailbox and all messages in it. Success is
// signalled by a nil error.
func (c *Client) DeleteEmail(ctx context.Context, email string) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	if email == "" {
		return &ValidationError{Detail: "email address is required"}
	}
	return wrapError(c.api.DeleteEmail(ctx, email))
}
