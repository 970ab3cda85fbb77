package mail

import (
	"context"
)

// Mailer delivers one-time codes to users. Delivery failures propagate to the
// caller and abort the flow that requested the send.
type Mailer interface {
	SendOTP(ctx context.Context, to, code string) error
}
