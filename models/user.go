package models

// User is part of the schema but no route reads or writes it yet; the
// admin surface runs unauthenticated.
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Email    string `gorm:"uniqueIndex;not null"`
	Username string `gorm:"size:30;uniqueIndex;not null"`
	Password string `gorm:"size:60;not null"`
	Profile  string
	Level    int `gorm:"not null;default:1"`
}

func (u *User) TableName() string {
	return "users"
}
