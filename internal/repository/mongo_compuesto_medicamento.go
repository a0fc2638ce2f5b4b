package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rosvend/REST-Api-NoSQL/internal/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// asociacionDoc keeps both foreign keys as native ObjectIDs so $lookup can join on them.
type asociacionDoc struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	MedicamentoID bson.ObjectID `bson:"medicamento_id"`
	CompuestoID   bson.ObjectID `bson:"compuesto_id"`
	Concentracion float64       `bson:"concentracion"`
	UnidadMedida  string        `bson:"unidad_medida"`
}

func newAsociacionDoc(medicamentoID, compuestoID string, concentracion float64, unidadMedida string) (asociacionDoc, error) {
	medOID, ok := parseObjectID(medicamentoID)
	if !ok {
		return asociacionDoc{}, fmt.Errorf("medicamento_id %q is not an ObjectID", medicamentoID)
	}
	compOID, ok := parseObjectID(compuestoID)
	if !ok {
		return asociacionDoc{}, fmt.Errorf("compuesto_id %q is not an ObjectID", compuestoID)
	}
	return asociacionDoc{
		MedicamentoID: medOID,
		CompuestoID:   compOID,
		Concentracion: concentracion,
		UnidadMedida:  unidadMedida,
	}, nil
}

func (d asociacionDoc) toModel() models.CompuestoMedicamento {
	return models.CompuestoMedicamento{
		ID:            d.ID.Hex(),
		MedicamentoID: d.MedicamentoID.Hex(),
		CompuestoID:   d.CompuestoID.Hex(),
		Concentracion: d.Concentracion,
		UnidadMedida:  d.UnidadMedida,
	}
}

type mongoCompuestoMedicamentoRepository struct {
	db *mongo.Database
}

func NewMongoCompuestoMedicamentoRepository(db *mongo.Database) CompuestoMedicamentoRepository {
	return &mongoCompuestoMedicamentoRepository{db: db}
}

func (r *mongoCompuestoMedicamentoRepository) coll() *mongo.Collection {
	return r.db.Collection(asociacionesCollection)
}

func (r *mongoCompuestoMedicamentoRepository) List(ctx context.Context) ([]models.CompuestoMedicamento, error) {
	cursor, err := r.coll().Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list associations: %w", err)
	}
	var docs []asociacionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode associations: %w", err)
	}
	out := make([]models.CompuestoMedicamento, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (r *mongoCompuestoMedicamentoRepository) Get(ctx context.Context, id string) (models.CompuestoMedicamento, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return models.CompuestoMedicamento{}, ErrNotFound
	}
	var doc asociacionDoc
	if err := r.coll().FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.CompuestoMedicamento{}, ErrNotFound
		}
		return models.CompuestoMedicamento{}, fmt.Errorf("failed to get association: %w", err)
	}
	return doc.toModel(), nil
}

func (r *mongoCompuestoMedicamentoRepository) Create(ctx context.Context, medicamentoID, compuestoID string, concentracion float64, unidadMedida string) (models.CompuestoMedicamento, error) {
	doc, err := newAsociacionDoc(medicamentoID, compuestoID, concentracion, unidadMedida)
	if err != nil {
		return models.CompuestoMedicamento{}, err
	}
	res, err := r.coll().InsertOne(ctx, doc)
	if err != nil {
		return models.CompuestoMedicamento{}, fmt.Errorf("failed to insert association: %w", err)
	}
	oid, err := insertedObjectID(res)
	if err != nil {
		return models.CompuestoMedicamento{}, err
	}
	return r.Get(ctx, oid.Hex())
}

func (r *mongoCompuestoMedicamentoRepository) DeleteByMedicamentoID(ctx context.Context, medicamentoID string) (int64, error) {
	return r.deleteBy(ctx, "medicamento_id", medicamentoID)
}

func (r *mongoCompuestoMedicamentoRepository) DeleteByCompuestoID(ctx context.Context, compuestoID string) (int64, error) {
	return r.deleteBy(ctx, "compuesto_id", compuestoID)
}

func (r *mongoCompuestoMedicamentoRepository) deleteBy(ctx context.Context, field, id string) (int64, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return 0, nil
	}
	res, err := r.coll().DeleteMany(ctx, bson.M{field: oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete associations by %s: %w", field, err)
	}
	return res.DeletedCount, nil
}

func (r *mongoCompuestoMedicamentoRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         medicamentosCollection,
			"localField":   "medicamento_id",
			"foreignField": "_id",
			"as":           "medicamento",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         compuestosCollection,
			"localField":   "compuesto_id",
			"foreignField": "_id",
			"as":           "compuesto",
		}}},
		{{Key: "$match", Value: bson.M{"$or": bson.A{
			bson.M{"medicamento": bson.M{"$size": 0}},
			bson.M{"compuesto": bson.M{"$size": 0}},
		}}}},
		{{Key: "$project", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.coll().Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to find orphaned associations: %w", err)
	}
	var orphans []struct {
		ID bson.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &orphans); err != nil {
		return 0, fmt.Errorf("failed to decode orphaned associations: %w", err)
	}
	if len(orphans) == 0 {
		return 0, nil
	}

	ids := make(bson.A, 0, len(orphans))
	for _, o := range orphans {
		ids = append(ids, o.ID)
	}
	res, err := r.coll().DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete orphaned associations: %w", err)
	}
	return res.DeletedCount, nil
}
