package models

// QuestionAnswer is the join entity: one respondent's value for one question
// within one submission. Deleting either side removes it.
type QuestionAnswer struct {
	BaseModel
	QuestionID uint   `gorm:"index;not null" json:"question_id"`
	AnswerID   uint   `gorm:"index;not null" json:"answer_id"`
	Value      string `gorm:"type:text" json:"value"`

	Question Question `gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Answer   Answer   `gorm:"foreignKey:AnswerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
