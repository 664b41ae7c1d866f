package store

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"learnhub/models"
)

// MongoUserStore implements UserRepository over the "users" collection.
type MongoUserStore struct {
	collection *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{collection: db.Collection("users")}
}

func (s *MongoUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) GetByReferralCode(ctx context.Context, code string) (*models.User, error) {
	// Codes are stored upper-cased, so normalizing the input is enough for a
	// case-insensitive match.
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"referralCode": strings.ToUpper(code)}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) Save(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, user, opts)
	return err
}

func (s *MongoUserStore) TopByXP(ctx context.Context, limit int64) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "xp", Value: -1}}).SetLimit(limit)
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// MongoForumStore implements ForumRepository over the "forum_topics"
// collection written by the forum controllers.
type MongoForumStore struct {
	topics *mongo.Collection
}

func NewMongoForumStore(db *mongo.Database) *MongoForumStore {
	return &MongoForumStore{topics: db.Collection("forum_topics")}
}

func (s *MongoForumStore) CountTopicsByAuthor(ctx context.Context, authorID primitive.ObjectID) (int, error) {
	n, err := s.topics.CountDocuments(ctx, bson.M{"authorId": authorID})
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (s *MongoForumStore) TotalLikesForAuthor(ctx context.Context, authorID primitive.ObjectID) (int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"authorId": authorID}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$likeCount"}}}},
	}
	cursor, err := s.topics.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var result []struct {
		Total int `bson:"total"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, err
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Total, nil
}

// MongoNotificationStore implements NotificationRepository.
type MongoNotificationStore struct {
	collection *mongo.Collection
}

func NewMongoNotificationStore(db *mongo.Database) *MongoNotificationStore {
	return &MongoNotificationStore{collection: db.Collection("notifications")}
}

func (s *MongoNotificationStore) Add(ctx context.Context, n *models.Notification) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	_, err := s.collection.InsertOne(ctx, n)
	return err
}

func (s *MongoNotificationStore) ListForUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := s.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}
