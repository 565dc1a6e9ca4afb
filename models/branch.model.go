package models

// Branch model. Free text columns are nullable; nil means the source cell was blank.
type Branch struct {
	IFSC       string  `gorm:"column:ifsc;type:varchar(20);primaryKey" json:"ifsc"`
	BankID     int64   `gorm:"column:bank_id;index" json:"bank_id"`
	Bank       *Bank   `gorm:"foreignKey:BankID;references:ID" json:"-"`
	BranchName *string `gorm:"column:branch;type:text" json:"branch"`
	Address    *string `gorm:"column:address;type:text" json:"address"`
	City       *string `gorm:"column:city;type:text" json:"city"`
	District   *string `gorm:"column:district;type:text" json:"district"`
	State      *string `gorm:"column:state;type:text" json:"state"`
}

func (Branch) TableName() string {
	return "branches"
}

// BranchDetail is a branch joined with the name of its owning bank
type BranchDetail struct {
	IFSC       string  `gorm:"column:ifsc" json:"ifsc"`
	BranchName *string `gorm:"column:branch" json:"branch"`
	Address    *string `gorm:"column:address" json:"address"`
	City       *string `gorm:"column:city" json:"city"`
	District   *string `gorm:"column:district" json:"district"`
	State      *string `gorm:"column:state" json:"state"`
	BankName   string  `gorm:"column:bank_name" json:"bank_name"`
}
