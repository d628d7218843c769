package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProjectUpdate 是 PUT /update/:id 允许改写的全部字段。
// 其余字段（文档是自由格式）不参与更新。
type ProjectUpdate struct {
	ProjectName string `json:"projectName" bson:"projectName"`
	Description string `json:"description" bson:"description"`
	Img         string `json:"img" bson:"img"`
}

type ProjectRepository interface {
	List(ctx context.Context) ([]bson.M, error)
	// FindByID 未命中返回 (nil, nil)，调用方按零值响应处理。
	FindByID(ctx context.Context, id string) (bson.M, error)
	Insert(ctx context.Context, doc map[string]any) (*mongo.InsertOneResult, error)
	// Upsert 未命中时新建仅含三个可更新字段的文档（upsert 语义）。
	Upsert(ctx context.Context, id string, upd ProjectUpdate) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}
