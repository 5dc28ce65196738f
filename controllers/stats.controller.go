package controllers

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qwerty0999999/payment-projek/models"
	"github.com/qwerty0999999/payment-projek/storage"
)

// HealthCheck memeriksa status layanan dan direktori data.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	storageStatus := "ready"
	if _, err := os.Stat(ctrl.Cfg.DataDir); err != nil {
		storageStatus = "missing"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"storage":   storageStatus,
		"timestamp": time.Now().Unix(),
	})
}

// GetStats mengambil ringkasan statistik aplikasi. Pendapatan dihitung
// dari pesanan berstatus Lunas saja.
func (ctrl *Controller) GetStats(c *gin.Context) {
	var products []models.Product
	var orders []models.Order
	ctrl.Store.Load(storage.DocProducts, &products)
	ctrl.Store.Load(storage.DocOrders, &orders)

	byStatus := map[string]int{}
	totalRevenue := 0
	for _, o := range orders {
		byStatus[o.Status]++
		if o.Status == models.StatusLunas {
			// Harga tersimpan sebagai string dari form; nilai yang tidak
			// bisa diurai dilewati saja
			if harga, err := strconv.Atoi(o.Harga); err == nil {
				totalRevenue += harga
			}
		}
	}

	stats := models.Stats{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
		ByStatus:      byStatus,
		TotalRevenue:  totalRevenue,
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
