package controllers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/qwerty0999999/payment-projek/models"
	"github.com/qwerty0999999/payment-projek/storage"
)

// MaxUploadSize membatasi ukuran berkas bukti transfer.
const MaxUploadSize = 10 * 1024 * 1024 // 10MB

// CreateOrder menangani pembuatan pesanan baru dari form pembayaran.
// Rute ini publik dan pesanan anonim tidak ditulis ke log aktivitas.
func (ctrl *Controller) CreateOrder(c *gin.Context) {
	file, err := c.FormFile("buktiTransfer")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Bukti transfer wajib diunggah"})
		return
	}
	if file.Size > MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File terlalu besar. Maksimal 10MB (ukuran file: %.1fMB)", float64(file.Size)/(1024*1024)),
		})
		return
	}

	now := time.Now()
	filename := fmt.Sprintf("%d-%s", now.UnixMilli(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(ctrl.Cfg.UploadDir, filename)); err != nil {
		logrus.WithError(err).Error("Gagal menyimpan bukti transfer")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Gagal menyimpan file"})
		return
	}

	order := models.Order{
		ID:        now.UnixMilli(),
		InvoiceID: fmt.Sprintf("INV-%d", rand.Intn(90000)),
		Tanggal:   now.Format("2/1/2006"),
		Nama:      c.PostForm("nama"),
		Produk:    c.PostForm("produk"),
		Harga:     c.PostForm("harga"),
		FileBukti: filename,
		Status:    models.StatusPending,
	}

	var orders []models.Order
	err = ctrl.Store.Update(storage.DocOrders, &orders, func() (any, error) {
		orders = append(orders, order)
		return orders, nil
	})
	if err != nil {
		logrus.WithError(err).Error("Gagal menyimpan pesanan")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	logrus.WithFields(logrus.Fields{
		"invoiceId": order.InvoiceID,
		"produk":    order.Produk,
	}).Info("Pesanan baru diterima")
	c.JSON(http.StatusOK, gin.H{"success": true, "invoiceId": order.InvoiceID})
}

// TrackOrder mencari pesanan berdasarkan nomor invoice. Nomor yang tidak
// dikenal tetap dijawab sukses dengan data kosong.
func (ctrl *Controller) TrackOrder(c *gin.Context) {
	var req models.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	var orders []models.Order
	ctrl.Store.Load(storage.DocOrders, &orders)
	for _, o := range orders {
		if o.InvoiceID == req.InvoiceID {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": o})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": nil})
}

// GetOrders mengembalikan seluruh data pesanan.
func (ctrl *Controller) GetOrders(c *gin.Context) {
	var orders []models.Order
	ctrl.Store.Load(storage.DocOrders, &orders)
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// transition mengubah status satu pesanan lalu mencatatnya ke log
// aktivitas. Log ditulis setelah mutasinya sendiri tersimpan.
func (ctrl *Controller) transition(c *gin.Context, status, actionName string) {
	var req models.OrderActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	var orders []models.Order
	var invoice string
	err := ctrl.Store.Update(storage.DocOrders, &orders, func() (any, error) {
		for i := range orders {
			if orders[i].ID == req.ID {
				orders[i].Status = status
				invoice = orders[i].InvoiceID
				return orders, nil
			}
		}
		return nil, errNotFound
	})
	if errors.Is(err, errNotFound) {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	ctrl.Activity.Record(actor(c), actionName, actionName+" pesanan "+invoice)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AcceptOrder menandai pesanan sebagai Lunas.
func (ctrl *Controller) AcceptOrder(c *gin.Context) {
	ctrl.transition(c, models.StatusLunas, "Terima")
}

// RejectOrder menandai pesanan sebagai Ditolak.
func (ctrl *Controller) RejectOrder(c *gin.Context) {
	ctrl.transition(c, models.StatusDitolak, "Tolak")
}

// DeleteOrder menghapus satu pesanan. Penghapusan dicatat ke log aktivitas
// sebelum datanya dibuang.
func (ctrl *Controller) DeleteOrder(c *gin.Context) {
	var req models.OrderActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	var orders []models.Order
	ctrl.Store.Load(storage.DocOrders, &orders)
	invoice := ""
	for _, o := range orders {
		if o.ID == req.ID {
			invoice = o.InvoiceID
			break
		}
	}
	if invoice == "" {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	ctrl.Activity.Record(actor(c), "Hapus Data", "Menghapus data "+invoice)

	err := ctrl.Store.Update(storage.DocOrders, &orders, func() (any, error) {
		filtered := make([]models.Order, 0, len(orders))
		for _, o := range orders {
			if o.ID != req.ID {
				filtered = append(filtered, o)
			}
		}
		return filtered, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
