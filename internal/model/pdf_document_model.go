package model

import "time"

// PdfDocument is a singleton table: uploading a new PDF replaces the
// previous row, so at most one row exists at any time.
type PdfDocument struct {
	Id         int64     `gorm:"primaryKey;autoIncrement"`
	Filename   string    `gorm:"type:text;not null"`
	Content    string    `gorm:"type:text"`
	FilePath   string    `gorm:"type:text;not null"`
	UploadedAt time.Time `gorm:"autoCreateTime"`
}

func (PdfDocument) TableName() string {
	return "pdf_documents"
}
