package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rosvend/REST-Api-NoSQL/internal/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type medicamentoDoc struct {
	ID         bson.ObjectID `bson:"_id,omitempty"`
	Nombre     string        `bson:"nombre"`
	Fabricante string        `bson:"fabricante"`
}

func (d medicamentoDoc) toModel() models.Medicamento {
	return models.Medicamento{ID: d.ID.Hex(), Nombre: d.Nombre, Fabricante: d.Fabricante}
}

type mongoMedicamentoRepository struct {
	db *mongo.Database
}

func NewMongoMedicamentoRepository(db *mongo.Database) MedicamentoRepository {
	return &mongoMedicamentoRepository{db: db}
}

func (r *mongoMedicamentoRepository) coll() *mongo.Collection {
	return r.db.Collection(medicamentosCollection)
}

func (r *mongoMedicamentoRepository) List(ctx context.Context) ([]models.Medicamento, error) {
	cursor, err := r.coll().Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list medicamentos: %w", err)
	}
	var docs []medicamentoDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode medicamentos: %w", err)
	}
	out := make([]models.Medicamento, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (r *mongoMedicamentoRepository) Get(ctx context.Context, id string) (models.Medicamento, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return models.Medicamento{}, ErrNotFound
	}
	var doc medicamentoDoc
	if err := r.coll().FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Medicamento{}, ErrNotFound
		}
		return models.Medicamento{}, fmt.Errorf("failed to get medicamento: %w", err)
	}
	return doc.toModel(), nil
}

func (r *mongoMedicamentoRepository) Create(ctx context.Context, nombre, fabricante string) (models.Medicamento, error) {
	res, err := r.coll().InsertOne(ctx, medicamentoDoc{Nombre: nombre, Fabricante: fabricante})
	if err != nil {
		return models.Medicamento{}, fmt.Errorf("failed to insert medicamento: %w", err)
	}
	oid, err := insertedObjectID(res)
	if err != nil {
		return models.Medicamento{}, err
	}
	return r.Get(ctx, oid.Hex())
}

func (r *mongoMedicamentoRepository) Update(ctx context.Context, id, nombre, fabricante string) (models.Medicamento, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return models.Medicamento{}, ErrNotFound
	}
	update := bson.M{"$set": bson.M{"nombre": nombre, "fabricante": fabricante}}
	if _, err := r.coll().UpdateOne(ctx, bson.M{"_id": oid}, update); err != nil {
		return models.Medicamento{}, fmt.Errorf("failed to update medicamento: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *mongoMedicamentoRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return false, nil
	}
	res, err := r.coll().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("failed to delete medicamento: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *mongoMedicamentoRepository) ListCompuestos(ctx context.Context, medicamentoID string) ([]models.CompuestoDeMedicamento, error) {
	out := []models.CompuestoDeMedicamento{}
	oid, ok := parseObjectID(medicamentoID)
	if !ok {
		return out, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"medicamento_id": oid}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         compuestosCollection,
			"localField":   "compuesto_id",
			"foreignField": "_id",
			"as":           "compuesto",
		}}},
		{{Key: "$unwind", Value: "$compuesto"}},
		{{Key: "$project", Value: bson.M{
			"_id":           bson.M{"$toString": "$compuesto._id"},
			"nombre":        "$compuesto.nombre",
			"concentracion": "$concentracion",
			"unidad_medida": "$unidad_medida",
		}}},
	}

	cursor, err := r.db.Collection(asociacionesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate compuestos of medicamento: %w", err)
	}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode compuestos of medicamento: %w", err)
	}
	return out, nil
}
