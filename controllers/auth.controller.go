package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/qwerty0999999/payment-projek/models"
	"github.com/qwerty0999999/payment-projek/storage"
)

// Login menangani proses masuk pengguna panel. Dokumen pengguna yang masih
// kosong ditanami akun bawaan lebih dulu, baru kredensial dicocokkan.
func (ctrl *Controller) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Username dan password wajib diisi"})
		return
	}

	var users []models.User
	matched := -1
	err := ctrl.Store.Update(storage.DocUsers, &users, func() (any, error) {
		seeded := false
		if len(users) == 0 {
			users = models.DefaultUsers()
			seeded = true
		}
		for i := range users {
			if users[i].Username == req.Username && users[i].Password == req.Password {
				matched = i
				users[i].IsOnline = true
				break
			}
		}
		// Tanpa kecocokan dan tanpa akun baru, tidak ada yang perlu ditulis
		if matched == -1 && !seeded {
			return nil, errNotFound
		}
		return users, nil
	})
	if err != nil && err != errNotFound {
		logrus.WithError(err).Error("Gagal menyimpan dokumen pengguna saat login")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	if matched == -1 {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	user := users[matched]
	if err := ctrl.Sessions.Issue(c, user.Username, user.Role); err != nil {
		logrus.WithError(err).Error("Gagal menerbitkan cookie sesi")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	ctrl.Activity.Record(user.Username, "Login", "Masuk ke sistem")
	logrus.WithFields(logrus.Fields{
		"username": user.Username,
		"role":     user.Role,
	}).Info("Login berhasil")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout menutup sesi aktif lalu mengembalikan pengguna ke halaman login.
func (ctrl *Controller) Logout(c *gin.Context) {
	if sess, ok := ctrl.Sessions.Current(c); ok {
		var users []models.User
		err := ctrl.Store.Update(storage.DocUsers, &users, func() (any, error) {
			for i := range users {
				if users[i].Username == sess.Username {
					users[i].IsOnline = false
					break
				}
			}
			return users, nil
		})
		if err != nil {
			logrus.WithError(err).Warn("Gagal memperbarui status online saat logout")
		}
		ctrl.Activity.Record(sess.Username, "Logout", "Keluar dari sistem")
	}

	ctrl.Sessions.Clear(c)
	c.Redirect(http.StatusFound, "/login.html")
}

// Me mengembalikan identitas sesi yang sedang aktif.
func (ctrl *Controller) Me(c *gin.Context) {
	sess, ok := ctrl.Sessions.Current(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": sess.Username, "role": sess.Role})
}
