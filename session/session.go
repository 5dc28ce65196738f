// Package session membungkus cookie sesi panel sebagai token Paseto v2.
// Token membawa username, role, dan waktu kedaluwarsa; isinya terenkripsi
// sehingga cookie tetap buram bagi browser.
package session

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/o1egl/paseto"
)

// CookieName adalah nama cookie sesi di browser.
const CookieName = "panel_session"

const tokenFooter = "payment-projek"

// Session adalah identitas pengguna yang sedang masuk.
type Session struct {
	Username string
	Role     string
}

// Manager menerbitkan dan memverifikasi cookie sesi.
type Manager struct {
	key    []byte
	maxAge int // detik
}

// NewManager membuat Manager dengan kunci simetris 32 byte.
func NewManager(key []byte, maxAge int) *Manager {
	return &Manager{key: key, maxAge: maxAge}
}

// Issue memasang cookie sesi untuk pengguna yang baru masuk.
func (m *Manager) Issue(c *gin.Context, username, role string) error {
	now := time.Now()
	token := paseto.JSONToken{
		Subject:    username,
		IssuedAt:   now,
		Expiration: now.Add(time.Duration(m.maxAge) * time.Second),
	}
	token.Set("role", role)

	encrypted, err := paseto.NewV2().Encrypt(m.key, token, tokenFooter)
	if err != nil {
		return err
	}
	c.SetCookie(CookieName, encrypted, m.maxAge, "/", "", false, true)
	return nil
}

// Current membaca sesi dari cookie permintaan. ok bernilai false untuk
// pengunjung anonim, token rusak, atau token yang sudah kedaluwarsa.
func (m *Manager) Current(c *gin.Context) (Session, bool) {
	raw, err := c.Cookie(CookieName)
	if err != nil {
		return Session{}, false
	}

	var token paseto.JSONToken
	var footer string
	if err := paseto.NewV2().Decrypt(raw, m.key, &token, &footer); err != nil {
		return Session{}, false
	}
	if err := token.Validate(); err != nil {
		return Session{}, false
	}
	return Session{Username: token.Subject, Role: token.Get("role")}, true
}

// Clear menghapus cookie sesi dari browser.
func (m *Manager) Clear(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}
