package model

import "time"

type OrderStatus string

const (
	OrderStatusPreparing  OrderStatus = "Préparation"
	OrderStatusDelivering OrderStatus = "Livraison"
	OrderStatusDelivered  OrderStatus = "Livré"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Cash"
	PaymentCard PaymentMethod = "Card"
)

// BookIDs and Quantities are parallel arrays, same length,
// both derived from the cart at submission time.
type Order struct {
	ID            string        `gorm:"type:uuid;primaryKey" json:"id"`
	BookIDs       []string      `gorm:"serializer:json;not null" json:"bookIds"`
	Quantities    []int64       `gorm:"serializer:json;not null" json:"quantities"`
	TotalPrice    float64       `gorm:"not null" json:"totalPrice"`
	CustomerName  string        `gorm:"type:varchar(255);not null" json:"customerName"`
	CustomerEmail string        `gorm:"type:varchar(255)" json:"customerEmail"`
	CustomerPhone string        `gorm:"type:varchar(30);not null" json:"customerPhone"`
	Address       string        `gorm:"type:text;not null" json:"address"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(10);not null;default:'Card'" json:"paymentMethod"`
	Status        OrderStatus   `gorm:"type:varchar(20);not null;default:'Préparation';index" json:"status"`
	CreatedAt     time.Time     `gorm:"not null;autoCreateTime;index" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
