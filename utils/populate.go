package utils

import (
	"context"
	"log"
	"time"

	"learnhub/db"
	"learnhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeedDemoData inserts sample users, courses and forum topics when the
// corresponding collections are empty.
func SeedDemoData() {
	ctx := context.Background()
	seedUsers(ctx)
	seedCourses(ctx)
	seedTopics(ctx)
}

func seedUsers(ctx context.Context) {
	collection := db.GetCollection("users")
	if n, err := collection.CountDocuments(ctx, bson.M{}); err != nil || n > 0 {
		return
	}

	// Password for all demo accounts is "learnhub123".
	hash, err := HashPassword("learnhub123")
	if err != nil {
		log.Printf("Failed to hash demo password: %v", err)
		return
	}

	today := time.Now().Format("2006-01-02")
	users := []models.User{
		{
			ID:            primitive.NewObjectID(),
			Email:         "alex@example.com",
			DisplayName:   "Alex Carter",
			PasswordHash:  hash,
			XP:            2500,
			Level:         5,
			Streak:        12,
			LastLoginDate: today,
			Badges:        []string{"night_owl", "topic_starter"},
			EquippedBadge: "night_owl",
			ReferralCode:  "ALEX2024",
			CreatedAt:     time.Now(),
		},
		{
			ID:            primitive.NewObjectID(),
			Email:         "bianca@example.com",
			DisplayName:   "Bianca Reyes",
			PasswordHash:  hash,
			XP:            1100,
			Level:         3,
			Streak:        4,
			LastLoginDate: today,
			Badges:        []string{"topic_starter"},
			ReferralCode:  "BIAN7310",
			CreatedAt:     time.Now(),
		},
		{
			ID:            primitive.NewObjectID(),
			Email:         "chen@example.com",
			DisplayName:   "Chen Wei",
			PasswordHash:  hash,
			XP:            400,
			Level:         2,
			Streak:        1,
			LastLoginDate: today,
			Badges:        []string{},
			ReferralCode:  "CHEN0042",
			CreatedAt:     time.Now(),
		},
	}

	for _, user := range users {
		collection.InsertOne(ctx, user)
	}
	log.Printf("Seeded %d demo users", len(users))
}

func seedCourses(ctx context.Context) {
	collection := db.GetCollection("courses")
	if n, err := collection.CountDocuments(ctx, bson.M{}); err != nil || n > 0 {
		return
	}

	courses := []models.Course{
		{
			ID:          primitive.NewObjectID(),
			Title:       "Go for Web Developers",
			Description: "Build and deploy HTTP services in Go.",
			Author:      "Alex Carter",
			Category:    "Programming",
			Lessons: []models.Lesson{
				{ID: "l1", Title: "Routing and Handlers", Type: "video", VideoURL: "https://cdn.example.com/go-web/1.mp4", Duration: 540, XPReward: 50},
				{ID: "l2", Title: "Middleware Patterns", Type: "video", VideoURL: "https://cdn.example.com/go-web/2.mp4", Duration: 480, XPReward: 50},
				{ID: "l3", Title: "Checkpoint Quiz", Type: "quiz", XPReward: 30, Questions: []models.QuizQuestion{
					{Prompt: "Which package provides the default HTTP mux?", Options: []string{"net/http", "io", "fmt"}, Answer: 0},
					{Prompt: "What does a middleware wrap?", Options: []string{"A database", "A handler", "A template"}, Answer: 1},
				}},
			},
			CreatedAt: time.Now(),
		},
		{
			ID:          primitive.NewObjectID(),
			Title:       "Practical SQL",
			Description: "Query, join and aggregate with confidence.",
			Author:      "Bianca Reyes",
			Category:    "Data",
			Lessons: []models.Lesson{
				{ID: "l1", Title: "SELECT Fundamentals", Type: "video", VideoURL: "https://cdn.example.com/sql/1.mp4", Duration: 420, XPReward: 40},
				{ID: "l2", Title: "Joins Quiz", Type: "quiz", XPReward: 30, Questions: []models.QuizQuestion{
					{Prompt: "Which join keeps unmatched left rows?", Options: []string{"INNER", "LEFT", "CROSS"}, Answer: 1},
				}},
			},
			CreatedAt: time.Now(),
		},
	}

	for _, course := range courses {
		collection.InsertOne(ctx, course)
	}
	log.Printf("Seeded %d demo courses", len(courses))
}

func seedTopics(ctx context.Context) {
	collection := db.GetCollection("forum_topics")
	if n, err := collection.CountDocuments(ctx, bson.M{}); err != nil || n > 0 {
		return
	}

	var alex models.User
	if err := db.GetCollection("users").FindOne(ctx, bson.M{"email": "alex@example.com"}).Decode(&alex); err != nil {
		return
	}

	topics := []models.ForumTopic{
		{
			ID:         primitive.NewObjectID(),
			AuthorID:   alex.ID,
			AuthorName: alex.DisplayName,
			Title:      "Favorite Go learning resources?",
			Body:       "Share the tutorials and books that actually helped you.",
			Tags:       []string{"go", "resources"},
			LikeCount:  6,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		},
		{
			ID:         primitive.NewObjectID(),
			AuthorID:   alex.ID,
			AuthorName: alex.DisplayName,
			Title:      "Study group for the SQL course",
			Body:       "Meeting twice a week, beginners welcome.",
			Tags:       []string{"sql", "study-group"},
			LikeCount:  3,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		},
	}

	for _, topic := range topics {
		collection.InsertOne(ctx, topic)
	}
	log.Printf("Seeded %d demo topics", len(topics))
}
