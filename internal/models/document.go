package models

import "time"

type Document struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:255;index"`
	Owner     string    `json:"owner" gorm:"not null;size:255;index"` // uploader's email
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
	Type      string    `json:"type" gorm:"not null;size:10"` // ".pdf" or ".txt"
	Summary   *string   `json:"summary" gorm:"type:text"`
}

func (Document) TableName() string {
	return "documents"
}
