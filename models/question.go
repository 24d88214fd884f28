package models

// QuestionKind enumerates the supported answer input types.
type QuestionKind string

const (
	KindShortText QuestionKind = "short_text"
	KindLongText  QuestionKind = "long_text"
	KindInteger   QuestionKind = "integer"
	KindBoolean   QuestionKind = "boolean"
)

// Valid reports whether k is one of the defined kinds.
func (k QuestionKind) Valid() bool {
	switch k {
	case KindShortText, KindLongText, KindInteger, KindBoolean:
		return true
	}
	return false
}

// Question belongs to exactly one form. Its QuestionAnswers hold the values
// respondents gave across all submissions.
type Question struct {
	BaseModel
	FormID uint         `gorm:"index;not null" json:"form_id"`
	Title  string       `gorm:"type:varchar(255);not null" json:"title"`
	Kind   QuestionKind `gorm:"type:varchar(20);not null" json:"kind"`

	Form            Form             `gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	QuestionAnswers []QuestionAnswer `gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
