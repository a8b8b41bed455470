package models

// Question is a validated multiple-choice question. Immutable once produced
// by the generator.
type Question struct {
	Question      string   `bson:"question" json:"question"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer int      `bson:"correct_answer" json:"correct_answer"`
	Explanation   string   `bson:"explanation" json:"explanation"`
}

// IsValid reports whether the question satisfies the generator contract:
// non-empty prompt, exactly 4 options and an in-range correct index.
func (q *Question) IsValid() bool {
	if q.Question == "" || len(q.Options) != 4 {
		return false
	}
	return q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options)
}
