package models

// Status pesanan mengikuti alur Pending -> Lunas / Ditolak.
const (
	StatusPending = "Pending"
	StatusLunas   = "Lunas"
	StatusDitolak = "Ditolak"
)

// Order mendefinisikan struktur untuk pesanan pelanggan.
// ID memakai stempel waktu pembuatan (milidetik) sehingga unik untuk
// pemakaian normal; InvoiceID acak dan tidak dijamin unik.
type Order struct {
	ID        int64  `json:"id"`
	InvoiceID string `json:"invoiceId"`
	Tanggal   string `json:"tanggal"`
	Nama      string `json:"nama"`
	Produk    string `json:"produk"`
	Harga     string `json:"harga"`
	FileBukti string `json:"fileBukti"`
	Status    string `json:"status"`
}

// TrackRequest mendefinisikan struktur untuk pelacakan pesanan.
type TrackRequest struct {
	InvoiceID string `json:"invoiceId" binding:"required"`
}

// OrderActionRequest mendefinisikan struktur untuk aksi admin atas satu
// pesanan (terima, tolak, hapus).
type OrderActionRequest struct {
	ID int64 `json:"id" binding:"required"`
}

// Stats mendefinisikan struktur untuk statistik aplikasi.
type Stats struct {
	TotalProducts int            `json:"total_products"`
	TotalOrders   int            `json:"total_orders"`
	ByStatus      map[string]int `json:"by_status"`
	TotalRevenue  int            `json:"total_revenue"`
}
