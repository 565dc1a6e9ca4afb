package models

// Bank is one row of the banks relation. The ID comes from the source file,
// it is never generated.
type Bank struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"column:name;type:text;not null" json:"name"`
}

func (Bank) TableName() string {
	return "banks"
}
