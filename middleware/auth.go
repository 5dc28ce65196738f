// Package middleware berisi penjaga rute berbasis sesi.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qwerty0999999/payment-projek/models"
	"github.com/qwerty0999999/payment-projek/session"
)

// RequireLogin menolak permintaan tanpa sesi aktif. Halaman admin
// dialihkan ke halaman login; rute API dijawab 403 tanpa isi.
func RequireLogin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessions.Current(c)
		if !ok {
			if c.Request.URL.Path == "/admin.html" {
				c.Redirect(http.StatusFound, "/login.html")
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{})
			return
		}
		c.Set("username", sess.Username)
		c.Set("role", sess.Role)
		c.Next()
	}
}

// RequireSuper membatasi rute hanya untuk role superuser.
func RequireSuper(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessions.Current(c)
		if !ok || sess.Role != models.RoleSuperuser {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false})
			return
		}
		c.Set("username", sess.Username)
		c.Set("role", sess.Role)
		c.Next()
	}
}
