package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Skill 只有 create / list / delete 三个操作，不提供更新。
type SkillRepository interface {
	List(ctx context.Context) ([]bson.M, error)
	Insert(ctx context.Context, doc map[string]any) (*mongo.InsertOneResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}
