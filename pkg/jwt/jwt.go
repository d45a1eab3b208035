// Package jwt firma y valida los tokens de descarga que usa el almacenamiento local.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DownloadClaims claims estándar JWT más la key del objeto que autoriza descargar.
type DownloadClaims struct {
	jwt.RegisteredClaims
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

// GenerateDownload firma un token HS256 que autoriza descargar key hasta now+ttl.
func GenerateDownload(secret, issuer, bucket, key string, now time.Time, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if key == "" {
		return "", fmt.Errorf("jwt: key vacía")
	}
	claims := DownloadClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   key,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Bucket: bucket,
		Key:    key,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseDownload valida el token y devuelve bucket y key.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func ParseDownload(secret, tokenString string) (bucket, key string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &DownloadClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*DownloadClaims)
	if !ok || !token.Valid || claims.Key == "" {
		return "", "", fmt.Errorf("claims inválidos")
	}
	return claims.Bucket, claims.Key, nil
}
