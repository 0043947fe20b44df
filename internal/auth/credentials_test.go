package auth

import (
	"testing"

	"gudanglab-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

type mockUsers struct {
	list []models.UserAccount
}

func (m *mockUsers) FindUserByUsername(username string) (models.UserAccount, bool) {
	for _, u := range m.list {
		if u.Username == "admin" && (username == "admin" || username == "ADMIN" || username == "Admin") {
			return u, true
		}
		if u.Username == username {
			return u, true
		}
	}
	return models.UserAccount{}, false
}

func TestPasswordMatches(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	tests := []struct {
		name   string
		stored string
		given  string
		want   bool
	}{
		{"plain cocok", "123", "123", true},
		{"plain peka kapital", "Abc", "abc", false},
		{"plain salah", "123", "124", false},
		{"bcrypt cocok", string(hash), "rahasia", true},
		{"bcrypt salah", string(hash), "Rahasia", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PasswordMatches(tt.stored, tt.given); got != tt.want {
				t.Errorf("PasswordMatches(%q, %q) = %v, mau %v", tt.stored, tt.given, got, tt.want)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	users := &mockUsers{list: []models.UserAccount{
		{ID: "u1", Username: "admin", Password: "123", Role: models.RoleStaff},
	}}

	tests := []struct {
		name     string
		username string
		password string
		wantOK   bool
	}{
		{"login normal", "admin", "123", true},
		{"username beda kapital tetap masuk", "ADMIN", "123", true},
		{"PIN dengan spasi pinggir di-trim", "admin", " 123 ", true},
		{"PIN salah", "admin", "999", false},
		{"user tak dikenal", "ghost", "123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, ok := Authenticate(users, tt.username, tt.password)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, mau %v", ok, tt.wantOK)
			}
			if ok && user.ID != "u1" {
				t.Errorf("user = %v", user)
			}
		})
	}
}
