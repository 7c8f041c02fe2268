package models

// AITool is a subscription AI tool available for allocation to employees.
// MonthlyPrice is kept as text end-to-end; the catalog performs no numeric
// validation on it.
type AITool struct {
	Base
	Name         string `gorm:"not null" json:"name"`
	MonthlyPrice string `gorm:"column:monthly_price;size:50;not null" json:"monthlyPrice"`
}
