package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rosvend/REST-Api-NoSQL/internal/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type compuestoDoc struct {
	ID     bson.ObjectID `bson:"_id,omitempty"`
	Nombre string        `bson:"nombre"`
}

func (d compuestoDoc) toModel() models.Compuesto {
	return models.Compuesto{ID: d.ID.Hex(), Nombre: d.Nombre}
}

type mongoCompuestoRepository struct {
	db *mongo.Database
}

func NewMongoCompuestoRepository(db *mongo.Database) CompuestoRepository {
	return &mongoCompuestoRepository{db: db}
}

func (r *mongoCompuestoRepository) coll() *mongo.Collection {
	return r.db.Collection(compuestosCollection)
}

func (r *mongoCompuestoRepository) List(ctx context.Context) ([]models.Compuesto, error) {
	cursor, err := r.coll().Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list compuestos: %w", err)
	}
	var docs []compuestoDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode compuestos: %w", err)
	}
	out := make([]models.Compuesto, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (r *mongoCompuestoRepository) Get(ctx context.Context, id string) (models.Compuesto, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return models.Compuesto{}, ErrNotFound
	}
	var doc compuestoDoc
	if err := r.coll().FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Compuesto{}, ErrNotFound
		}
		return models.Compuesto{}, fmt.Errorf("failed to get compuesto: %w", err)
	}
	return doc.toModel(), nil
}

func (r *mongoCompuestoRepository) Create(ctx context.Context, nombre string) (models.Compuesto, error) {
	res, err := r.coll().InsertOne(ctx, compuestoDoc{Nombre: nombre})
	if err != nil {
		return models.Compuesto{}, fmt.Errorf("failed to insert compuesto: %w", err)
	}
	oid, err := insertedObjectID(res)
	if err != nil {
		return models.Compuesto{}, err
	}
	return r.Get(ctx, oid.Hex())
}

func (r *mongoCompuestoRepository) Update(ctx context.Context, id, nombre string) (models.Compuesto, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return models.Compuesto{}, ErrNotFound
	}
	if _, err := r.coll().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"nombre": nombre}}); err != nil {
		return models.Compuesto{}, fmt.Errorf("failed to update compuesto: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *mongoCompuestoRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return false, nil
	}
	res, err := r.coll().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("failed to delete compuesto: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *mongoCompuestoRepository) ListMedicamentos(ctx context.Context, compuestoID string) ([]models.MedicamentoDeCompuesto, error) {
	out := []models.MedicamentoDeCompuesto{}
	oid, ok := parseObjectID(compuestoID)
	if !ok {
		return out, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"compuesto_id": oid}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         medicamentosCollection,
			"localField":   "medicamento_id",
			"foreignField": "_id",
			"as":           "medicamento",
		}}},
		{{Key: "$unwind", Value: "$medicamento"}},
		{{Key: "$project", Value: bson.M{
			"_id":           bson.M{"$toString": "$medicamento._id"},
			"nombre":        "$medicamento.nombre",
			"fabricante":    "$medicamento.fabricante",
			"concentracion": "$concentracion",
			"unidad_medida": "$unidad_medida",
		}}},
	}

	cursor, err := r.db.Collection(asociacionesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate medicamentos of compuesto: %w", err)
	}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode medicamentos of compuesto: %w", err)
	}
	return out, nil
}
