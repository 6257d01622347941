package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret")

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(map[string]interface{}{"email": "student@hostel.edu"}, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("ParseJWT failed: %v", err)
	}
	if claims["email"] != "student@hostel.edu" {
		t.Errorf("Expected email claim, got %v", claims["email"])
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("Expected exp claim, got %v (%v)", exp, err)
	}
	if d := time.Until(exp.Time); d <= 0 || d > time.Hour {
		t.Errorf("Expected expiry within an hour, got %v", d)
	}
}

func TestGenerateJWT_ServerControlsExpiry(t *testing.T) {
	payload := map[string]interface{}{"email": "a@b.c", "exp": float64(1)}
	token, err := GenerateJWT(payload, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	if _, err := ParseJWT(token, testSecret); err != nil {
		t.Errorf("Client-supplied exp should be overridden, got %v", err)
	}
}

func TestParseJWT_Rejects(t *testing.T) {
	valid, _ := GenerateJWT(map[string]interface{}{"email": "a@b.c"}, testSecret, time.Hour)
	expired, _ := GenerateJWT(map[string]interface{}{"email": "a@b.c"}, testSecret, -time.Minute)
	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "a@b.c"}).SignedString(testSecret)
	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email": "a@b.c",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	parts := strings.Split(valid, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	tests := []struct {
		name   string
		token  string
		secret []byte
	}{
		{"tampered signature", tampered, testSecret},
		{"wrong secret", valid, []byte("other-secret")},
		{"expired", expired, testSecret},
		{"missing exp", noExp, testSecret},
		{"none algorithm", none, testSecret},
		{"malformed", "not.a.jwt", testSecret},
		{"empty", "", testSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseJWT(tt.token, tt.secret); err == nil {
				t.Error("Expected verification error")
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bearer   abc", "abc", false},
		{"Token xyz extra", "xyz", false},
		{"Bearer", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := BearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrMissingBearer) {
					t.Errorf("Expected ErrMissingBearer, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("BearerToken(%q) = %q, %v; want %q", tt.header, got, err, tt.want)
			}
		})
	}
}
