package tempmail

import "context"

// RateLimit is a snapshot of the API quota: how many requests the plan
// allows per window, how many remain, when the window resets (epoch
// seconds) and how many have been used. Snapshots are replaced wholesale
// on each observation, never merged field by field.
type RateLimit struct {
	Limit     int
	Remaining int
	Reset     int
	Used      int
}

// GetRateLimit queries the dedicated rate-limit endpoint and returns the
// quota decoded from the JSON body. The stored snapshot is overwritten
// with this value even when the response headers are absent or
// malformed.
func (c *Client) GetRateLimit(ctx context.Context) (*RateLimit, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	rl, err := c.api.GetRateLimit(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	return &RateLimit{
		Limit:     rl.Limit,
		Remaining: rl.Remaining,
		Reset:     rl.Reset,
		Used:      rl.Used,
	}, nil
}

// LastRateLimit returns the most recently observed rate-limit snapshot.
// ok is false until any response has carried rate-limit information.
func (c *Client) LastRateLimit() (RateLimit, bool) {
	rl, ok := c.api.LastRateLimit()
	if !ok {
		return RateLimit{}, false
	}
	return RateLimit{
		Limit:     rl.Limit,
		Remaining: rl.Remaining,
		Reset:     rl.Reset,
		Used:      rl.Used,
	}, true
}
