package models

import "time"

// AppModule is an entry of the static catalog of purchasable modules
type AppModule struct {
	Key         string    `json:"key" gorm:"primaryKey;size:50"`
	Name        string    `json:"name" gorm:"not null;size:100"`
	BasePrice   float64   `json:"base_price" gorm:"type:numeric(10,2);not null;default:0"`
	Description string    `json:"description" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the table name for AppModule
func (AppModule) TableName() string {
	return "app_modules"
}
