// Package firebase リモートストア(Cloud Firestore)とIDプロバイダ(Firebase Auth)のクライアント
package firebase

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Client Firebaseクライアント
type Client struct {
	app  *firebase.App
	fs   *firestore.Client
	auth *auth.Client
}

// NewClient サービスアカウントのクレデンシャルファイルからクライアントを生成します
func NewClient(ctx context.Context, credFile string) (*Client, error) {
	var opts []option.ClientOption
	if credFile != "" {
		opts = append(opts, option.WithCredentialsFile(credFile))
	}
	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, err
	}
	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, err
	}
	ac, err := app.Auth(ctx)
	if err != nil {
		_ = fs.Close()
		return nil, err
	}
	return &Client{app: app, fs: fs, auth: ac}, nil
}

// Close クライアントを閉じます
func (c *Client) Close() error {
	return c.fs.Close()
}

// Add 指定したコレクションに新規ドキュメントを追加します
func (c *Client) Add(ctx context.Context, collection string, doc map[string]any) error {
	_, _, err := c.fs.Collection(collection).Add(ctx, doc)
	return err
}

// FetchAll 指定したコレクションの全ドキュメントを取得します
func (c *Client) FetchAll(ctx context.Context, collection string) ([]map[string]any, error) {
	iter := c.fs.Collection(collection).Documents(ctx)
	defer iter.Stop()

	var docs []map[string]any
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, snap.Data())
	}
	return docs, nil
}

// VerifyIDToken Firebase AuthのIDトークンを検証し、ユーザーIDを返します
func (c *Client) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := c.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", err
	}
	return token.UID, nil
}
