package models

type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleStaff UserRole = "STAFF"
)

// UserAccount: akun login. Role hanya membatasi navigasi/menu,
// bukan batas otorisasi data.
type UserAccount struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	FullName string   `json:"fullName"`
	Role     UserRole `json:"role"`
	Room     Room     `json:"room"`
}

func (u UserAccount) GetID() string { return u.ID }

// DefaultUsers: akun bawaan supaya selalu ada yang bisa login
// walau remote store kosong atau belum pernah sync.
func DefaultUsers() []UserAccount {
	return []UserAccount{
		{
			ID:       "u1",
			Username: "admin",
			Password: "123",
			FullName: "Staff Gudang",
			Role:     RoleStaff,
			Room:     RoomGudang,
		},
	}
}
