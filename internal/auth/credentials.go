package auth

import (
	"strings"

	"gudanglab-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// PasswordMatches membandingkan PIN yang diketik dengan yang tersimpan.
// Nilai tersimpan berawalan "$2" dianggap hash bcrypt (akun yang dibuat
// admin lewat API); selain itu dibandingkan apa adanya, peka kapital,
// seperti data user lama di remote store.
func PasswordMatches(stored, given string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return stored == given
}

// Authenticate mencari user: username tidak peka kapital, PIN peka.
type UserFinder interface {
	FindUserByUsername(username string) (models.UserAccount, bool)
}

func Authenticate(users UserFinder, username, password string) (models.UserAccount, bool) {
	user, ok := users.FindUserByUsername(username)
	if !ok {
		return models.UserAccount{}, false
	}
	if !PasswordMatches(user.Password, strings.TrimSpace(password)) {
		return models.UserAccount{}, false
	}
	return user, true
}
