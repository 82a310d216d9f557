package settings

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("setting not found")

// Setting is one key/value pair of site configuration (header, footer,
// contact details) edited from the back office.
type Setting struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	Key       string    `gorm:"size:64;uniqueIndex:ux_settings_key;column:setting_key" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Setting) TableName() string { return "settings" }
