// File: controllers/controller.go
package controllers

import (
	"errors"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"

	"github.com/qwerty0999999/payment-projek/config"
	"github.com/qwerty0999999/payment-projek/session"
	"github.com/qwerty0999999/payment-projek/storage"
)

// Controller menampung dependensi yang akan digunakan oleh semua handler.
// Cld boleh nil; tanpa Cloudinary ikon produk memakai ikon bawaan.
type Controller struct {
	Store    *storage.Store
	Activity *storage.ActivityLog
	Sessions *session.Manager
	Cld      *cloudinary.Cloudinary
	Cfg      *config.AppConfig
}

// Sentinel untuk membatalkan siklus baca-ubah-tulis tanpa menulis apa pun.
var (
	errDuplicate = errors.New("data sudah ada")
	errNotFound  = errors.New("data tidak ditemukan")
)

// actor mengambil username pelaku dari konteks yang diisi middleware sesi.
func actor(c *gin.Context) string {
	return c.GetString("username")
}
