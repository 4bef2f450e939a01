package domain

// Chip is one inventory row of the component catalog
type Chip struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Model       string  `gorm:"size:64;uniqueIndex;not null" json:"model"`
	Description string  `gorm:"size:200" json:"description"`
	Stock       int     `gorm:"not null;default:0" json:"stock"`
	Price       float64 `gorm:"not null;default:0" json:"price"`
}

// TableName specifies the table name for Chip
func (Chip) TableName() string {
	return "chips"
}

// SampleChips is the inventory loaded into an empty catalog on first start
func SampleChips() []Chip {
	return []Chip{
		{Model: "STM32F103C8T6", Description: "ARM Cortex-M3 32-bit MCU, 64KB Flash, 20KB RAM", Stock: 150, Price: 12.5},
		{Model: "ATmega328P", Description: "8-bit AVR microcontroller, 32KB Flash, 2KB SRAM", Stock: 300, Price: 3.2},
		{Model: "ESP32-WROOM-32", Description: "Dual-core WiFi + Bluetooth MCU module, 4MB Flash", Stock: 200, Price: 8.9},
		{Model: "Raspberry Pi Pico", Description: "RP2040 dual-core ARM Cortex-M0+ MCU", Stock: 100, Price: 4.0},
		{Model: "MAX232", Description: "RS-232 transceiver for serial communication", Stock: 500, Price: 1.5},
	}
}
