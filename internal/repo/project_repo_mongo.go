package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-portfolio-api/internal/domain"
)

type ProjectRepo struct{ col *mongo.Collection }

func NewProjectRepo(db *mongo.Database) *ProjectRepo {
	return &ProjectRepo{col: db.Collection("project")}
}

func (r *ProjectRepo) List(ctx context.Context) ([]bson.M, error) {
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

func (r *ProjectRepo) FindByID(ctx context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err // 非法 id 原样上抛
	}
	var doc bson.M
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return doc, err
}

func (r *ProjectRepo) Insert(ctx context.Context, doc map[string]any) (*mongo.InsertOneResult, error) {
	return r.col.InsertOne(ctx, doc)
}

func (r *ProjectRepo) Upsert(ctx context.Context, id string, upd domain.ProjectUpdate) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": upd},
		options.Update().SetUpsert(true),
	)
}

func (r *ProjectRepo) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return r.col.DeleteOne(ctx, bson.M{"_id": oid})
}
