package domain

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Role 是封闭集合，判定一律用显式比较，不做 truthy 判断。
type Role string

const (
	RoleNone  Role = "none"
	RoleAdmin Role = "admin"
)

// ErrEmailTaken 由 user 集合的 email 唯一索引触发（取代先查后插）。
var ErrEmailTaken = errors.New("user already exist")

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Role  Role               `bson:"role,omitempty" json:"role,omitempty"`
}

type UserRepository interface {
	// Create 原样插入请求体文档；email 冲突返回 ErrEmailTaken。
	Create(ctx context.Context, doc map[string]any) (*mongo.InsertOneResult, error)
	// FindByEmail 未命中返回 (nil, nil)。
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]bson.M, error)
	PromoteAdmin(ctx context.Context, id string) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}
