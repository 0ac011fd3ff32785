package fcmclient

import (
	"context"

	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"

	"github.com/kaiseldev-sudo/budget-buddy/internal/dto"
	"github.com/kaiseldev-sudo/budget-buddy/internal/errs"
)

type Adapter struct {
	client *messaging.Client
}

func NewAdapter(client *messaging.Client) *Adapter {
	return &Adapter{client: client}
}

func (a *Adapter) Send(ctx context.Context, token string, push dto.PushMessage) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: push.Title,
			Body:  push.Body,
		},
		Data: push.Data,
	}

	_, err := a.client.Send(ctx, msg)
	if err != nil {
		transient := errorutils.IsUnavailable(err) || errorutils.IsInternal(err)
		return errs.NewExternalServiceError("fcm", "failed to send push notification", transient, err)
	}
	return nil
}
