package models

// Label tags products independently of categories. Label names live in
// their own namespace, so a label may share a name with a category.
type Label struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:20;uniqueIndex;not null"`
}

func (l *Label) TableName() string {
	return "labels"
}
