package models

import "time"

// CatalogProduct is the persisted form of one canonical catalog row. List and
// nested fields are JSON text blobs.
type CatalogProduct struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement"`
	SKU      string `gorm:"column:sku;type:text;uniqueIndex;not null"`
	Brand    string `gorm:"column:brand;type:text;not null"`
	Series   string `gorm:"column:series;type:text;not null"`
	Model    string `gorm:"column:model;type:text;not null"`
	Price    int    `gorm:"column:price;not null"`
	Currency string `gorm:"column:currency;type:text;not null"`
	Region   string `gorm:"column:region;type:text;not null"`
	URL      string `gorm:"column:url;type:text;not null"`
	ImageURL string `gorm:"column:image_url;type:text;not null"`

	CPUBrand string `gorm:"column:cpu_brand;type:text;not null"`
	CPUTier  string `gorm:"column:cpu_tier;type:text;not null"`
	CPUModel string `gorm:"column:cpu_model;type:text;not null"`

	RAMGB       int    `gorm:"column:ram_gb;not null"`
	StorageType string `gorm:"column:storage_type;type:text;not null"`
	StorageGB   int    `gorm:"column:storage_gb;not null"`
	GPUType     string `gorm:"column:gpu_type;type:text;not null"`
	GPUModel    string `gorm:"column:gpu_model;type:text;not null"`

	ScreenSize float64 `gorm:"column:screen_size;not null"`
	Resolution string  `gorm:"column:resolution;type:text;not null"`
	RefreshHz  int     `gorm:"column:refresh_hz;not null"`
	Panel      string  `gorm:"column:panel;type:text;not null"`

	WeightKg     float64 `gorm:"column:weight_kg;not null"`
	BatteryHours float64 `gorm:"column:battery_hours;not null"`
	BatteryWh    int     `gorm:"column:battery_wh;not null"`
	BatteryType  string  `gorm:"column:battery_type;type:text;not null"`
	Rating       float64 `gorm:"column:rating;not null"`

	SRGB100         bool `gorm:"column:srgb_100;not null;default:false"`
	DCIP3           bool `gorm:"column:dci_p3;not null;default:false"`
	GoodCooling     bool `gorm:"column:good_cooling;not null;default:false"`
	RAMUpgradable   bool `gorm:"column:ram_upgradable;not null;default:false"`
	ExtraSSDSlot    bool `gorm:"column:extra_ssd_slot;not null;default:false"`
	BacklitKeyboard bool `gorm:"column:backlit_keyboard;not null;default:false"`

	UseCases   string `gorm:"column:use_cases;type:text;not null"`
	Ports      string `gorm:"column:ports;type:text;not null"`
	Specs      string `gorm:"column:specs;type:text;not null"`
	Benchmarks string `gorm:"column:benchmarks;type:text;not null"`
	BuyLinks   string `gorm:"column:buy_links;type:text;not null"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (CatalogProduct) TableName() string { return "catalog_products" }
