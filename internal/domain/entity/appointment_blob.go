package entity

import "time"

// AppointmentBlob is the single key/value row backing the postgres blob store.
// The whole appointment list is serialized into Data under a fixed key.
type AppointmentBlob struct {
	Key       string    `gorm:"type:varchar(100);primaryKey" json:"key"`
	Data      []byte    `gorm:"type:jsonb;not null" json:"data"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AppointmentBlob) TableName() string {
	return "appointment_blobs"
}
