package utils

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("507f1f77bcf86cd799439011", RoleUser)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.ID != "507f1f77bcf86cd799439011" {
		t.Errorf("claims.ID = %q, want 507f1f77bcf86cd799439011", claims.ID)
	}
	if claims.Role != RoleUser {
		t.Errorf("claims.Role = %q, want %q", claims.Role, RoleUser)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token"); err == nil {
		t.Error("ParseToken accepted a malformed token")
	}
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	orig := JwtKey
	defer func() { JwtKey = orig }()

	JwtKey = []byte("key-one")
	token, err := GenerateToken("abc", RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	JwtKey = []byte("key-two")
	if _, err := ParseToken(token); err == nil {
		t.Error("ParseToken accepted a token signed with a different key")
	}
}
