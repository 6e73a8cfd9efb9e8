package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// secretKey holds the JWT signing secret alongside the store snapshots.
const secretKey = "vinc-jwt-secret"

// JWTSecret retrieves the JWT secret from storage. If no secret exists yet,
// it generates one, stores it, and returns it, so tokens survive restarts.
func JWTSecret(ctx context.Context, kv KV) (string, error) {
	value, found, err := kv.Load(ctx, secretKey)
	if err != nil {
		return "", fmt.Errorf("loading jwt secret: %w", err)
	}
	if found {
		return string(value), nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating jwt secret: %w", err)
	}
	secret := hex.EncodeToString(buf)

	if err := kv.Save(ctx, secretKey, []byte(secret)); err != nil {
		return "", fmt.Errorf("storing jwt secret: %w", err)
	}
	return secret, nil
}
