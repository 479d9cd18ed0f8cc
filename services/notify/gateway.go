package notify

import "context"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/shesafe/services/notify SMSGW

// SMSGW sends a text message and returns the provider's message id
type SMSGW interface {
	SendSMS(ctx context.Context, to, body string) (string, error)
}
