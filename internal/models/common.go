// server/internal/models/common.go
package models

// Địa chỉ có cấu trúc cho điểm lấy hàng và giao hàng.
type Location struct {
	FullText  string  `bson:"fullText" json:"fullText"`
	Latitude  float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
}

// Weight định nghĩa đơn vị và giá trị khối lượng của hàng.
type Weight struct {
	Value float64 `bson:"value" json:"value"`
	Unit  string  `bson:"unit" json:"unit"` // e.g., kg, tonnes
}

// MediaPointer đại diện cho một tài liệu media được lưu trữ trên S3.
type MediaPointer struct {
	ID       string `bson:"id" json:"id"`
	URL      string `bson:"url" json:"url"`
	FileName string `bson:"fileName" json:"fileName"`
	FileType string `bson:"fileType" json:"fileType"` // ví dụ: "image/png", "application/pdf"
}
