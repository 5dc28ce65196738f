// File: controllers/product.controller.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/qwerty0999999/payment-projek/models"
	"github.com/qwerty0999999/payment-projek/storage"
)

// GetProducts menangani pengambilan semua produk. Katalog bawaan ditanam
// saat dokumen produk belum pernah dibuat.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	if !ctrl.Store.Exists(storage.DocProducts) {
		if err := ctrl.Store.Save(storage.DocProducts, models.DefaultCatalog()); err != nil {
			logrus.WithError(err).Error("Gagal menanam katalog bawaan")
		}
	}

	var products []models.Product
	ctrl.Store.Load(storage.DocProducts, &products)
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// uploadIcon mengunggah gambar produk ke Cloudinary. Tanpa gambar atau
// tanpa konfigurasi Cloudinary hasilnya string kosong, bukan error.
func (ctrl *Controller) uploadIcon(imageBase64 string) (string, error) {
	if imageBase64 == "" || ctrl.Cld == nil {
		return "", nil
	}
	uploadResult, err := ctrl.Cld.Upload.Upload(
		context.Background(),
		imageBase64,
		uploader.UploadParams{Folder: "payment-projek/products"},
	)
	if err != nil {
		return "", err
	}
	return uploadResult.SecureURL, nil
}

// AddProduct menangani pembuatan produk baru. ID baru selalu satu di atas
// ID terbesar yang ada, atau 1 untuk katalog kosong.
func (ctrl *Controller) AddProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Nama produk wajib diisi"})
		return
	}

	icon, err := ctrl.uploadIcon(input.ImageBase64)
	if err != nil {
		logrus.WithError(err).Error("Cloudinary upload error")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Gagal mengunggah gambar"})
		return
	}
	if icon == "" {
		icon = models.DefaultIcon
	}

	var products []models.Product
	err = ctrl.Store.Update(storage.DocProducts, &products, func() (any, error) {
		id := 1
		for _, p := range products {
			if p.ID >= id {
				id = p.ID + 1
			}
		}
		products = append(products, models.Product{
			ID:    id,
			Name:  input.Name,
			Price: input.Price,
			Stock: input.Stock,
			Icon:  icon,
		})
		return products, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	ctrl.Activity.Record(actor(c), "Add Product", "Menambah produk: "+input.Name)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateProduct menangani pembaruan data produk berdasarkan ID.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Nama produk wajib diisi"})
		return
	}

	icon, err := ctrl.uploadIcon(input.ImageBase64)
	if err != nil {
		logrus.WithError(err).Error("Cloudinary upload error")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Gagal mengunggah gambar"})
		return
	}

	var products []models.Product
	err = ctrl.Store.Update(storage.DocProducts, &products, func() (any, error) {
		for i := range products {
			if products[i].ID == input.ID {
				products[i].Name = input.Name
				products[i].Price = input.Price
				products[i].Stock = input.Stock
				if icon != "" {
					products[i].Icon = icon
				}
				return products, nil
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

	ctrl.Activity.Record(actor(c), "Update Product", "Update produk: "+input.Name)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteProduct menangani penghapusan produk berdasarkan ID.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	var req models.DeleteProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID produk wajib diisi"})
		return
	}

	var products []models.Product
	err := ctrl.Store.Update(storage.DocProducts, &products, func() (any, error) {
		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			if p.ID != req.ID {
				filtered = append(filtered, p)
			}
		}
		return filtered, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	ctrl.Activity.Record(actor(c), "Delete Product", "Menghapus produk ID: "+strconv.Itoa(req.ID))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
