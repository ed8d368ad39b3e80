// Package store is the persistence gateway. It owns the MongoDB
// collections and translates driver failures into the error taxonomy
// the controllers map onto HTTP statuses.
package store

import (
	"context"
	"errors"
	"time"

	"encuestas-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Respuestas is the survey-record side of the gateway.
type Respuestas interface {
	Insert(ctx context.Context, r models.Respuesta) (string, error)
	FindAll(ctx context.Context) ([]models.Respuesta, error)
	FindByID(ctx context.Context, id string) (models.Respuesta, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

// Usuarios is the administrator-account side of the gateway.
type Usuarios interface {
	Insert(ctx context.Context, u models.Usuario) (string, error)
	FindByUsuario(ctx context.Context, usuario string) (models.Usuario, error)
}

// Pinger reports connectivity to the underlying store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Mongo bundles the gateway implementations behind one shared client.
// The client is safe for concurrent use, so a single Mongo value serves
// every request.
type Mongo struct {
	client     *mongo.Client
	Respuestas *RespuestaStore
	Usuarios   *UsuarioStore
}

func NewMongo(client *mongo.Client, dbName string) *Mongo {
	db := client.Database(dbName)
	return &Mongo{
		client:     client,
		Respuestas: &RespuestaStore{coll: db.Collection("respuestas")},
		Usuarios:   &UsuarioStore{coll: db.Collection("usuarios")},
	}
}

// EnsureIndexes creates the unique indexes backing the AdminUser
// uniqueness invariants. Index names default to <field>_1, which the
// duplicate-key mapper relies on.
func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	_, err := s.Usuarios.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "usuario", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	})
	return err
}

func (s *Mongo) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// RespuestaStore persists survey records.
type RespuestaStore struct {
	coll *mongo.Collection
}

// Insert stores a survey record, stamping both timestamps at
// persistence time.
func (s *RespuestaStore) Insert(ctx context.Context, r models.Respuesta) (string, error) {
	now := time.Now()
	r.FechaCreacion = now
	r.FechaActualizacion = now

	res, err := s.coll.InsertOne(ctx, r)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

// FindAll returns every survey record, newest first. The result is
// never nil, so an empty collection serializes as [].
func (s *RespuestaStore) FindAll(ctx context.Context) ([]models.Respuesta, error) {
	opts := options.Find().SetSort(bson.D{{Key: "fechaCreacion", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	respuestas := []models.Respuesta{}
	if err := cursor.All(ctx, &respuestas); err != nil {
		return nil, err
	}
	return respuestas, nil
}

func (s *RespuestaStore) FindByID(ctx context.Context, id string) (models.Respuesta, error) {
	var r models.Respuesta

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot match any record.
		return r, ErrNotFound
	}

	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return r, ErrNotFound
	}
	return r, err
}

func (s *RespuestaStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s *RespuestaStore) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *RespuestaStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}

// CountSince counts records created at or after the given instant. The
// boundary is inclusive ($gte).
func (s *RespuestaStore) CountSince(ctx context.Context, since time.Time) (int64, error) {
	filter := bson.M{"fechaCreacion": bson.M{"$gte": since}}
	return s.coll.CountDocuments(ctx, filter)
}

// UsuarioStore persists administrator accounts.
type UsuarioStore struct {
	coll *mongo.Collection
}

// Insert stores an administrator account. Unique-index collisions on
// usuario or email surface as *DuplicateKeyError naming the field.
func (s *UsuarioStore) Insert(ctx context.Context, u models.Usuario) (string, error) {
	u.FechaRegistro = time.Now()

	res, err := s.coll.InsertOne(ctx, u)
	if err != nil {
		return "", mapWriteError(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

func (s *UsuarioStore) FindByUsuario(ctx context.Context, usuario string) (models.Usuario, error) {
	var u models.Usuario
	err := s.coll.FindOne(ctx, bson.M{"usuario": usuario}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return u, ErrNotFound
	}
	return u, err
}
