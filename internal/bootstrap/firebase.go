package bootstrap

import (
	"context"

	firebase "firebase.google.com/go/v4"
)

func InitFirebase(ctx context.Context) (*firebase.App, error) {
	return firebase.NewApp(ctx, nil)
}
