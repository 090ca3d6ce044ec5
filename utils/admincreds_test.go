package utils

import "testing"

func TestAdminStore(t *testing.T) {
	store := NewAdminStore()
	if err := store.Add("admin@sdpjss.org", "s3cret"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{"correct credentials", "admin@sdpjss.org", "s3cret", true},
		{"wrong password", "admin@sdpjss.org", "wrong", false},
		{"unknown email", "nobody@sdpjss.org", "s3cret", false},
		{"empty password", "admin@sdpjss.org", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := store.Check(tt.email, tt.password); got != tt.want {
				t.Errorf("Check(%q, %q) = %v, want %v", tt.email, tt.password, got, tt.want)
			}
		})
	}
}

func TestAdminStoreAddRequiresCredentials(t *testing.T) {
	store := NewAdminStore()
	if err := store.Add("", "pw"); err == nil {
		t.Error("Add accepted an empty email")
	}
	if err := store.Add("a@b.c", ""); err == nil {
		t.Error("Add accepted an empty password")
	}
}
