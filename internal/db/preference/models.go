package preference

import "time"

type Preference struct {
	Name      string    `json:"name" gorm:"primaryKey;column:name"`
	Value     string    `json:"value" gorm:"column:value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Preference) TableName() string {
	return "preferences"
}
