package models

// Role pengguna yang dikenal sistem.
const (
	RoleSuperuser = "superuser"
	RoleAdmin     = "admin"
)

// User mendefinisikan struktur untuk akun pengguna panel.
// Password disimpan apa adanya; kelemahan ini diketahui dan diterima.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	IsOnline bool   `json:"isOnline"`
}

// DefaultUsers adalah akun bawaan yang ditanam saat dokumen pengguna
// masih kosong. Password bawaannya diketahui semua orang.
func DefaultUsers() []User {
	return []User{
		{Username: "super", Password: "123", Role: RoleSuperuser},
		{Username: "admin", Password: "123", Role: RoleAdmin},
	}
}

// LoginRequest mendefinisikan struktur untuk permintaan login.
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// AddUserRequest mendefinisikan struktur untuk penambahan pengguna.
type AddUserRequest struct {
	NewUser string `json:"newUser" binding:"required"`
	NewPass string `json:"newPass" binding:"required"`
	NewRole string `json:"newRole" binding:"required"`
}

// DeleteUserRequest mendefinisikan struktur untuk penghapusan pengguna.
type DeleteUserRequest struct {
	TargetUser string `json:"targetUser" binding:"required"`
}
