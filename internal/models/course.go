package models

// Course is one recommendation entry.
type Course struct {
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Skills      []string `bson:"skills" json:"skills"`
	Level       string   `bson:"level" json:"level"`
	Reason      string   `bson:"reason" json:"reason"`
}

// UserProfile summarizes what the recommender knows about a learner.
type UserProfile struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	StudiedTopics []string `json:"studied_topics"`
}
