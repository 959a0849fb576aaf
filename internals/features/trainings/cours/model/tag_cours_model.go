package model

import "time"

// TagCoursModel lie un tag à un cours.
type TagCoursModel struct {
	ID        uint       `json:"id" gorm:"column:id;primaryKey"`
	CoursID   uint       `json:"coursID" gorm:"column:cours_id;not null;index:tag_cours_coursid_index"`
	TagID     uint       `json:"tagID" gorm:"column:tag_id;not null;index:tag_cours_tagid_index"`
	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" gorm:"column:updated_at"`

	Cours *CoursModel `json:"-" gorm:"foreignKey:CoursID"`
	Tag   *TagModel   `json:"-" gorm:"foreignKey:TagID"`
}

func (TagCoursModel) TableName() string {
	return "tag_cours"
}
