package models

// DefaultIcon dipakai untuk produk yang tidak membawa gambar sendiri.
const DefaultIcon = "📦"

// Product mendefinisikan struktur untuk produk katalog.
type Product struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Stock int    `json:"stock"`
	Icon  string `json:"icon"`
}

// DefaultCatalog adalah isi katalog bawaan saat dokumen produk belum ada.
func DefaultCatalog() []Product {
	return []Product{
		{ID: 1, Name: "Paket A", Price: 150000, Stock: 50, Icon: DefaultIcon},
	}
}

// ProductInput mendefinisikan struktur untuk penambahan/pembaruan produk.
// ImageBase64 opsional dan hanya dipakai bila Cloudinary dikonfigurasi.
type ProductInput struct {
	ID          int    `json:"id"`
	Name        string `json:"name" binding:"required"`
	Price       int    `json:"price"`
	Stock       int    `json:"stock"`
	ImageBase64 string `json:"imageBase64"`
}

// DeleteProductRequest mendefinisikan struktur untuk penghapusan produk.
type DeleteProductRequest struct {
	ID int `json:"id" binding:"required"`
}
