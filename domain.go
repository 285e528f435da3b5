package tempmail

import "context"

// DomainType classifies an email domain.
type DomainType string

const (
	// DomainTypePublic domains are shared and free to use.
	DomainTypePublic DomainType = "public"
	// DomainTypeCustom domains are registered by the account owner.
	DomainTypeCustom DomainType = "custom"
	// DomainTypePremium domains are reserved for paid plans.
	DomainTypePremium DomainType = "premium"
)

// Domain is an email domain available for mailbox creation.
// Type values the client does not know about pass through unchanged.
type Domain struct {
	Name string
	Type DomainType
}

// ListDomains returns the available email domains exactly as returned by
// the server: no client-side sorting or deduplication.
func (c *Client) ListDomains(ctx context.Context) ([]Domain, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	resp, err := c.api.ListDomains(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	domains := make([]Domain, 0, len(resp))
	for _, d := range resp {
		domains = append(domains, Domain{
			Name: d.Name,
			Type: DomainType(d.Type),
		})
	}
	return domains, nil
}
