package models

// Answer is one submission event against a form. Submissions are anonymous:
// an answer belongs to a form, never to a user.
type Answer struct {
	BaseModel
	FormID uint `gorm:"index;not null" json:"form_id"`

	Form            Form             `gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	QuestionAnswers []QuestionAnswer `gorm:"foreignKey:AnswerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"question_answers"`
}
