package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SkillRepo struct{ col *mongo.Collection }

func NewSkillRepo(db *mongo.Database) *SkillRepo {
	// 历史原因：集合名是复数 skills，路由单复数混用
	return &SkillRepo{col: db.Collection("skills")}
}

func (r *SkillRepo) List(ctx context.Context) ([]bson.M, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]bson.M, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SkillRepo) Insert(ctx context.Context, doc map[string]any) (*mongo.InsertOneResult, error) {
	return r.col.InsertOne(ctx, doc)
}

func (r *SkillRepo) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return r.col.DeleteOne(ctx, bson.M{"_id": oid})
}
