package repository

import (
	"context"
	"errors"

	"hotel-rooms-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoRoomRepository struct {
	coll *mongo.Collection
}

func NewRoomRepo(coll *mongo.Collection) *MongoRoomRepository {
	return &MongoRoomRepository{coll: coll}
}

// EnsureIndexes creates the unique index on numero
func (r *MongoRoomRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "numero", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("numero_unique"),
	})
	return err
}

// ListRooms returns every room in collection order
func (r *MongoRoomRepository) ListRooms(ctx context.Context) ([]models.Room, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rooms := []models.Room{}
	if err := cur.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// FindRoom retrieves a room by numero
func (r *MongoRoomRepository) FindRoom(ctx context.Context, numero int) (*models.Room, error) {
	var room models.Room
	err := r.coll.FindOne(ctx, bson.D{{Key: "numero", Value: numero}}).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// CreateRoom inserts room and fills in the generated _id
func (r *MongoRoomRepository) CreateRoom(ctx context.Context, room *models.Room) error {
	res, err := r.coll.InsertOne(ctx, room)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		room.ID = oid
	}
	return nil
}

// UpdateRoom applies changes with $set and returns the updated document.
// With no changes it behaves like FindRoom.
func (r *MongoRoomRepository) UpdateRoom(ctx context.Context, numero int, changes models.RoomChanges) (*models.Room, error) {
	set := setDocument(changes)
	if len(set) == 0 {
		return r.FindRoom(ctx, numero)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var room models.Room
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "numero", Value: numero}},
		bson.D{{Key: "$set", Value: set}},
		opts,
	).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// DeleteRoom removes the room and returns what was deleted
func (r *MongoRoomRepository) DeleteRoom(ctx context.Context, numero int) (*models.Room, error) {
	var room models.Room
	err := r.coll.FindOneAndDelete(ctx, bson.D{{Key: "numero", Value: numero}}).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *MongoRoomRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}

func setDocument(c models.RoomChanges) bson.D {
	set := bson.D{}
	if c.Descricao != nil {
		set = append(set, bson.E{Key: "descricao", Value: *c.Descricao})
	}
	if len(c.Comodidades) > 0 {
		set = append(set, bson.E{Key: "comodidades", Value: c.Comodidades})
	}
	if c.PrecoDiaria != nil {
		set = append(set, bson.E{Key: "preco_diaria", Value: *c.PrecoDiaria})
	}
	if c.Disponibilidade != nil {
		set = append(set, bson.E{Key: "disponibilidade", Value: *c.Disponibilidade})
	}
	return set
}
