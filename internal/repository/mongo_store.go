package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	compuestosCollection   = "compuestos"
	medicamentosCollection = "medicamentos"
	asociacionesCollection = "compuestos_por_medicamento"
)

// Collections lists every collection the store uses.
var Collections = []string{compuestosCollection, medicamentosCollection, asociacionesCollection}

// NewMongoStore builds the repositories over a MongoDB database.
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Backend:      "mongo",
		Compuestos:   NewMongoCompuestoRepository(db),
		Medicamentos: NewMongoMedicamentoRepository(db),
		Asociaciones: NewMongoCompuestoMedicamentoRepository(db),
		Fixtures:     &mongoFixtureLoader{db: db},
		ping: func(ctx context.Context) error {
			return db.Client().Ping(ctx, readpref.Primary())
		},
	}
}

// parseObjectID reports ok=false for any string that is not a 24 digit hex ObjectID.
// No document can carry such an id, so callers treat it as not found.
func parseObjectID(id string) (bson.ObjectID, bool) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, false
	}
	return oid, true
}

func insertedObjectID(res *mongo.InsertOneResult) (bson.ObjectID, error) {
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.ObjectID{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid, nil
}

type mongoFixtureLoader struct {
	db *mongo.Database
}

func (l *mongoFixtureLoader) Clear(ctx context.Context) error {
	for _, name := range Collections {
		if _, err := l.db.Collection(name).DeleteMany(ctx, bson.D{}); err != nil {
			return fmt.Errorf("failed to clear %s: %w", name, err)
		}
	}
	return nil
}

type fixtureBatch struct {
	name string
	docs []interface{}
}

// Load inserts the fixtures keeping their ids. Ids must be ObjectID hex strings.
func (l *mongoFixtureLoader) Load(ctx context.Context, f Fixtures) error {
	batches, err := fixtureBatches(f)
	if err != nil {
		return err
	}
	return l.insert(ctx, batches)
}

// Replace converts every fixture before clearing, so a bad id leaves the collections untouched.
// Standalone servers have no transactions: an insert failure after the clear is not rolled back.
func (l *mongoFixtureLoader) Replace(ctx context.Context, f Fixtures) error {
	batches, err := fixtureBatches(f)
	if err != nil {
		return err
	}
	if err := l.Clear(ctx); err != nil {
		return err
	}
	return l.insert(ctx, batches)
}

func fixtureBatches(f Fixtures) ([]fixtureBatch, error) {
	compuestos := make([]interface{}, 0, len(f.Compuestos))
	for _, c := range f.Compuestos {
		oid, ok := parseObjectID(c.ID)
		if !ok {
			return nil, fmt.Errorf("compuesto %q: id is not an ObjectID", c.ID)
		}
		compuestos = append(compuestos, compuestoDoc{ID: oid, Nombre: c.Nombre})
	}

	medicamentos := make([]interface{}, 0, len(f.Medicamentos))
	for _, m := range f.Medicamentos {
		oid, ok := parseObjectID(m.ID)
		if !ok {
			return nil, fmt.Errorf("medicamento %q: id is not an ObjectID", m.ID)
		}
		medicamentos = append(medicamentos, medicamentoDoc{ID: oid, Nombre: m.Nombre, Fabricante: m.Fabricante})
	}

	asociaciones := make([]interface{}, 0, len(f.Asociaciones))
	for _, a := range f.Asociaciones {
		doc, err := newAsociacionDoc(a.MedicamentoID, a.CompuestoID, a.Concentracion, a.UnidadMedida)
		if err != nil {
			return nil, fmt.Errorf("association %q: %w", a.ID, err)
		}
		if a.ID != "" {
			oid, ok := parseObjectID(a.ID)
			if !ok {
				return nil, fmt.Errorf("association %q: id is not an ObjectID", a.ID)
			}
			doc.ID = oid
		}
		asociaciones = append(asociaciones, doc)
	}

	return []fixtureBatch{
		{compuestosCollection, compuestos},
		{medicamentosCollection, medicamentos},
		{asociacionesCollection, asociaciones},
	}, nil
}

func (l *mongoFixtureLoader) insert(ctx context.Context, batches []fixtureBatch) error {
	for _, b := range batches {
		if len(b.docs) == 0 {
			continue
		}
		if _, err := l.db.Collection(b.name).InsertMany(ctx, b.docs); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", b.name, err)
		}
	}
	return nil
}
