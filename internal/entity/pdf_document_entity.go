package entity

import "time"

type PdfDocument struct {
	Id         int64
	Filename   string
	Content    string
	FilePath   string
	UploadedAt time.Time
}
