package services

import (
	"context"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// firebaseCredentialsPath resolves the service account file, defaulting to
// the file next to the binary when FIREBASE_CREDENTIALS_PATH is unset
func firebaseCredentialsPath() string {
	if p := os.Getenv("FIREBASE_CREDENTIALS_PATH"); p != "" {
		return p
	}
	return "./firebase-service-account.json"
}

// InitFirebase initializes the Firebase Admin SDK and returns an auth client
func InitFirebase() (*auth.Client, error) {
	opt := option.WithCredentialsFile(firebaseCredentialsPath())
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return nil, err
	}
	return app.Auth(context.Background())
}
