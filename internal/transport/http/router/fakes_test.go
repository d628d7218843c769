package router_test

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-portfolio-api/internal/domain"
)

// 内存版 repo：保持与 mongo 实现一致的结果对象和 upsert/零效应语义。

type memProjects struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]bson.M
}

func newMemProjects() *memProjects {
	return &memProjects{docs: make(map[primitive.ObjectID]bson.M)}
}

func (m *memProjects) List(context.Context) ([]bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]bson.M, 0, len(m.docs))
	for _, d := range m.docs {
		out = append(out, d)
	}
	return out, nil
}

func (m *memProjects) FindByID(_ context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.docs[oid], nil
}

func (m *memProjects) Insert(_ context.Context, doc map[string]any) (*mongo.InsertOneResult, error) {
	oid := primitive.NewObjectID()
	stored := bson.M{"_id": oid}
	for k, v := range doc {
		stored[k] = v
	}
	m.mu.Lock()
	m.docs[oid] = stored
	m.mu.Unlock()
	return &mongo.InsertOneResult{InsertedID: oid}, nil
}

func (m *memProjects) Upsert(_ context.Context, id string, upd domain.ProjectUpdate) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if doc, ok := m.docs[oid]; ok {
		doc["projectName"] = upd.ProjectName
		doc["description"] = upd.Description
		doc["img"] = upd.Img
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	// 未命中 → 新建文档，只带三个可更新字段，id 由存储生成
	nid := primitive.NewObjectID()
	m.docs[nid] = bson.M{
		"_id":         nid,
		"projectName": upd.ProjectName,
		"description": upd.Description,
		"img":         upd.Img,
	}
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: nid}, nil
}

func (m *memProjects) Delete(_ context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[oid]; !ok {
		return &mongo.DeleteResult{DeletedCount: 0}, nil
	}
	delete(m.docs, oid)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

type memSkills struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]bson.M
}

func newMemSkills() *memSkills {
	return &memSkills{docs: make(map[primitive.ObjectID]bson.M)}
}

func (m *memSkills) List(context.Context) ([]bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]bson.M, 0, len(m.docs))
	for _, d := range m.docs {
		out = append(out, d)
	}
	return out, nil
}

func (m *memSkills) Insert(_ context.Context, doc map[string]any) (*mongo.InsertOneResult, error) {
	oid := primitive.NewObjectID()
	stored := bson.M{"_id": oid}
	for k, v := range doc {
		stored[k] = v
	}
	m.mu.Lock()
	m.docs[oid] = stored
	m.mu.Unlock()
	return &mongo.InsertOneResult{InsertedID: oid}, nil
}

func (m *memSkills) Delete(_ context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[oid]; !ok {
		return &mongo.DeleteResult{DeletedCount: 0}, nil
	}
	delete(m.docs, oid)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

type memUsers struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]bson.M
}

func newMemUsers() *memUsers {
	return &memUsers{docs: make(map[primitive.ObjectID]bson.M)}
}

// seed 绕过唯一性检查直接落库，测试用
func (m *memUsers) seed(email string, role domain.Role) primitive.ObjectID {
	oid := primitive.NewObjectID()
	m.mu.Lock()
	m.docs[oid] = bson.M{"_id": oid, "email": email, "role": string(role)}
	m.mu.Unlock()
	return oid
}

func (m *memUsers) Create(_ context.Context, doc map[string]any) (*mongo.InsertOneResult, error) {
	email, _ := doc["email"].(string)
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.docs {
		if d["email"] == email {
			return nil, domain.ErrEmailTaken
		}
	}
	oid := primitive.NewObjectID()
	stored := bson.M{"_id": oid}
	for k, v := range doc {
		stored[k] = v
	}
	m.docs[oid] = stored
	return &mongo.InsertOneResult{InsertedID: oid}, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for oid, d := range m.docs {
		if d["email"] == email {
			role, _ := d["role"].(string)
			return &domain.User{ID: oid, Email: email, Role: domain.Role(role)}, nil
		}
	}
	return nil, nil
}

func (m *memUsers) List(context.Context) ([]bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]bson.M, 0, len(m.docs))
	for _, d := range m.docs {
		out = append(out, d)
	}
	return out, nil
}

func (m *memUsers) PromoteAdmin(_ context.Context, id string) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[oid]
	if !ok {
		return &mongo.UpdateResult{MatchedCount: 0, ModifiedCount: 0}, nil
	}
	doc["role"] = string(domain.RoleAdmin)
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memUsers) Delete(_ context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[oid]; !ok {
		return &mongo.DeleteResult{DeletedCount: 0}, nil
	}
	delete(m.docs, oid)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}
