package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lesson is a single unit inside a course. Video lessons carry a media URL,
// quiz lessons carry questions.
type Lesson struct {
	ID        string         `bson:"id" json:"id"`
	Title     string         `bson:"title" json:"title"`
	Type      string         `bson:"type" json:"type"` // "video" or "quiz"
	VideoURL  string         `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Duration  int            `bson:"duration,omitempty" json:"duration,omitempty"` // seconds
	XPReward  int            `bson:"xpReward" json:"xpReward"`
	Questions []QuizQuestion `bson:"questions,omitempty" json:"questions,omitempty"`
}

// QuizQuestion holds one multiple-choice question. Answer is the index of
// the correct option.
type QuizQuestion struct {
	Prompt  string   `bson:"prompt" json:"prompt"`
	Options []string `bson:"options" json:"options"`
	Answer  int      `bson:"answer" json:"-"`
}

// Course groups ordered lessons under a title.
type Course struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Author      string             `bson:"author" json:"author"`
	Category    string             `bson:"category" json:"category"`
	CoverURL    string             `bson:"coverUrl,omitempty" json:"coverUrl,omitempty"`
	Lessons     []Lesson           `bson:"lessons" json:"lessons"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// LessonCompletion marks a lesson as done for a user. The unique pair
// (userId, courseId, lessonId) makes completion XP a one-time grant.
type LessonCompletion struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	CourseID    primitive.ObjectID `bson:"courseId" json:"courseId"`
	LessonID    string             `bson:"lessonId" json:"lessonId"`
	CompletedAt time.Time          `bson:"completedAt" json:"completedAt"`
}

// Certificate is issued once every lesson of a course is completed.
type Certificate struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Serial   string             `bson:"serial" json:"serial"`
	UserID   primitive.ObjectID `bson:"userId" json:"userId"`
	CourseID primitive.ObjectID `bson:"courseId" json:"courseId"`
	Course   string             `bson:"course" json:"course"`
	IssuedAt time.Time          `bson:"issuedAt" json:"issuedAt"`
}
