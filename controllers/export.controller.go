package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/qwerty0999999/payment-projek/models"
	"github.com/qwerty0999999/payment-projek/storage"
)

// ExportExcel mengalirkan laporan pesanan (invoice + status) sebagai
// berkas xlsx.
func (ctrl *Controller) ExportExcel(c *gin.Context) {
	ctrl.Activity.Record(actor(c), "Export", "Download Laporan Excel")

	var orders []models.Order
	ctrl.Store.Load(storage.DocOrders, &orders)

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Laporan"
	_ = f.SetSheetName("Sheet1", sheet)
	_ = f.SetCellValue(sheet, "A1", "Inv")
	_ = f.SetCellValue(sheet, "B1", "Sts")
	for i, o := range orders {
		row := strconv.Itoa(i + 2)
		_ = f.SetCellValue(sheet, "A"+row, o.InvoiceID)
		_ = f.SetCellValue(sheet, "B"+row, o.Status)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="laporan.xlsx"`)
	if err := f.Write(c.Writer); err != nil {
		logrus.WithError(err).Error("Gagal menulis laporan Excel")
	}
}
