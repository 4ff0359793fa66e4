package models

import "time"

type Car struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ModelName   string          `gorm:"not null" json:"modelName"`
	RegNumber   string          `gorm:"not null" json:"regNumber"`
	Engine      string          `gorm:"not null" json:"engine"`
	Information *CarInformation `gorm:"foreignKey:CarID" json:"information,omitempty"`
	Tags        []Tag           `gorm:"many2many:car_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Orders      []Order         `gorm:"foreignKey:CarID" json:"orders,omitempty"`
	Binaries    []Binary        `gorm:"foreignKey:CarID" json:"binaries,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type CarInformation struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CarID             uint      `gorm:"uniqueIndex;not null" json:"carId"`
	VehicleType       string    `gorm:"not null" json:"vehicleType"`
	Manufacturer      string    `gorm:"not null" json:"manufacturer"`
	Model             string    `gorm:"not null" json:"model"`
	Generation        string    `gorm:"not null" json:"generation"`
	Engine            string    `gorm:"not null" json:"engine"`
	Year              time.Time `gorm:"not null" json:"year"`
	Gearbox           string    `gorm:"not null" json:"gearbox"`
	EcuType           string    `gorm:"not null" json:"ecuType"`
	EcuHardwareNumber *string   `json:"ecuHardwareNumber,omitempty"`
	EcuSoftwareNumber *string   `json:"ecuSoftwareNumber,omitempty"`
	Car               *Car      `gorm:"foreignKey:CarID" json:"car,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type Customer struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Tag struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Colour    string    `gorm:"not null" json:"colour"`
	Cars      []Car     `gorm:"many2many:car_tags;constraint:OnDelete:CASCADE" json:"cars,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `gorm:"not null" json:"phone"`
	Admin     bool      `gorm:"not null;default:false" json:"admin"`
	Orders    []Order   `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Order struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CarID          uint      `gorm:"index;not null" json:"carId"`
	UserID         uint      `gorm:"index;not null" json:"userId"`
	ReadTool       string    `gorm:"not null" json:"readTool"`
	RequestedStage string    `gorm:"not null" json:"requestedStage"`
	Car            *Car      `gorm:"foreignKey:CarID" json:"car,omitempty"`
	HandledBy      *User     `gorm:"foreignKey:UserID" json:"handledBy,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Binary struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FileName  string    `gorm:"not null" json:"fileName"`
	FilePath  string    `gorm:"not null" json:"filePath"`
	FileSize  int64     `gorm:"not null" json:"fileSize"`
	CarID     *uint     `gorm:"index" json:"carId,omitempty"`
	Car       *Car      `gorm:"foreignKey:CarID" json:"car,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
