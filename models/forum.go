package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ForumTopic is a user-authored discussion thread. LikeCount is kept on the
// document so badge predicates can aggregate it without touching Redis.
type ForumTopic struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AuthorID     primitive.ObjectID `bson:"authorId" json:"authorId"`
	AuthorName   string             `bson:"authorName" json:"authorName"`
	Title        string             `bson:"title" json:"title"`
	Body         string             `bson:"body" json:"body"`
	Tags         []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	LikeCount    int                `bson:"likeCount" json:"likeCount"`
	CommentCount int                `bson:"commentCount" json:"commentCount"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ForumComment is a reply on a topic.
type ForumComment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TopicID    primitive.ObjectID `bson:"topicId" json:"topicId"`
	AuthorID   primitive.ObjectID `bson:"authorId" json:"authorId"`
	AuthorName string             `bson:"authorName" json:"authorName"`
	Body       string             `bson:"body" json:"body"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
