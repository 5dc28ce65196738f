package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qwerty0999999/payment-projek/models"
	"github.com/qwerty0999999/payment-projek/storage"
)

// GetUsers mengembalikan seluruh akun pengguna panel.
func (ctrl *Controller) GetUsers(c *gin.Context) {
	var users []models.User
	ctrl.Store.Load(storage.DocUsers, &users)
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// AddUser menangani penambahan akun baru. Username yang sudah terpakai
// ditolak tanpa mengubah dokumen pengguna.
func (ctrl *Controller) AddUser(c *gin.Context) {
	var req models.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Username, password, dan role wajib diisi"})
		return
	}

	var users []models.User
	err := ctrl.Store.Update(storage.DocUsers, &users, func() (any, error) {
		for _, u := range users {
			if u.Username == req.NewUser {
				return nil, errDuplicate
			}
		}
		users = append(users, models.User{
			Username: req.NewUser,
			Password: req.NewPass,
			Role:     req.NewRole,
		})
		return users, nil
	})
	if errors.Is(err, errDuplicate) {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	ctrl.Activity.Record(actor(c), "Add User", "Menambah user baru: "+req.NewUser)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteUser menghapus akun berdasarkan username.
func (ctrl *Controller) DeleteUser(c *gin.Context) {
	var req models.DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Username target wajib diisi"})
		return
	}

	var users []models.User
	err := ctrl.Store.Update(storage.DocUsers, &users, func() (any, error) {
		filtered := make([]models.User, 0, len(users))
		for _, u := range users {
			if u.Username != req.TargetUser {
				filtered = append(filtered, u)
			}
		}
		return filtered, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	ctrl.Activity.Record(actor(c), "Delete User", "Menghapus user: "+req.TargetUser)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetLogs mengembalikan isi log aktivitas untuk superuser.
func (ctrl *Controller) GetLogs(c *gin.Context) {
	entries := ctrl.Activity.Entries()
	if entries == nil {
		entries = []models.LogEntry{}
	}
	c.JSON(http.StatusOK, entries)
}
