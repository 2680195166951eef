package mongo

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/BankClients-api/internal/domain/entity"
	"github.com/jhoicas/BankClients-api/internal/domain/repository"
)

var _ repository.BankClientRepository = (*BankClientRepo)(nil)

// clientDocument forma persistida de un BankClient. _id es un ObjectID; hacia fuera viaja en hex.
type clientDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	TypeClient   string             `bson:"typeClient"`
	BankAccounts []accountDocument  `bson:"bankAccounts"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

type accountDocument struct {
	Number  string          `bson:"number"`
	Type    string          `bson:"type"`
	Balance decimal.Decimal `bson:"balance"`
}

// BankClientRepo implementación de BankClientRepository sobre una colección MongoDB.
type BankClientRepo struct {
	coll *mongo.Collection
}

// NewBankClientRepository construye el adaptador sobre db.collection con el codec de decimales.
func NewBankClientRepository(db *mongo.Database, collection string) *BankClientRepo {
	coll := db.Collection(collection, options.Collection().SetRegistry(NewRegistry()))
	return &BankClientRepo{coll: coll}
}

// FindAll abre un cursor por recorrido y lo cierra al terminar o al cortar la iteración.
func (r *BankClientRepo) FindAll(ctx context.Context) iter.Seq2[*entity.BankClient, error] {
	return func(yield func(*entity.BankClient, error) bool) {
		cur, err := r.coll.Find(ctx, bson.D{})
		if err != nil {
			yield(nil, fmt.Errorf("find clients: %w", err))
			return
		}
		defer func() { _ = cur.Close(context.WithoutCancel(ctx)) }()

		for cur.Next(ctx) {
			var doc clientDocument
			if err := cur.Decode(&doc); err != nil {
				yield(nil, fmt.Errorf("decode client: %w", err))
				return
			}
			if !yield(toEntity(&doc), nil) {
				return
			}
		}
		if err := cur.Err(); err != nil {
			yield(nil, fmt.Errorf("cursor clients: %w", err))
		}
	}
}

// FindByID devuelve (nil, nil) si no existe o si id no es un ObjectID válido.
func (r *BankClientRepo) FindByID(ctx context.Context, id string) (*entity.BankClient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc clientDocument
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return toEntity(&doc), nil
}

// Save inserta con un ObjectID nuevo si client.ID está vacío; si no, reemplaza (upsert) el documento.
func (r *BankClientRepo) Save(ctx context.Context, client *entity.BankClient) (*entity.BankClient, error) {
	doc, err := toDocument(client)
	if err != nil {
		return nil, err
	}
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
		if _, err := r.coll.InsertOne(ctx, doc); err != nil {
			return nil, fmt.Errorf("insert client: %w", err)
		}
		return toEntity(doc), nil
	}
	_, err = r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: doc.ID}}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("replace client: %w", err)
	}
	return toEntity(doc), nil
}

// Delete elimina el documento por ID.
func (r *BankClientRepo) Delete(ctx context.Context, client *entity.BankClient) error {
	oid, err := primitive.ObjectIDFromHex(client.ID)
	if err != nil {
		return fmt.Errorf("id de cliente inválido %q: %w", client.ID, err)
	}
	if _, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}}); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

// toDocument normaliza CreatedAt a UTC con precisión de milisegundos (la de BSON datetime),
// así lo que devuelve Save coincide con lo que devolverá FindByID.
func toDocument(c *entity.BankClient) (*clientDocument, error) {
	doc := &clientDocument{
		Name:         c.Name,
		TypeClient:   c.TypeClient,
		BankAccounts: make([]accountDocument, 0, len(c.BankAccounts)),
		CreatedAt:    c.CreatedAt.UTC().Truncate(time.Millisecond),
	}
	if c.ID != "" {
		oid, err := primitive.ObjectIDFromHex(c.ID)
		if err != nil {
			return nil, fmt.Errorf("id de cliente inválido %q: %w", c.ID, err)
		}
		doc.ID = oid
	}
	for _, a := range c.BankAccounts {
		doc.BankAccounts = append(doc.BankAccounts, accountDocument{Number: a.Number, Type: a.Type, Balance: a.Balance})
	}
	return doc, nil
}

func toEntity(doc *clientDocument) *entity.BankClient {
	c := &entity.BankClient{
		ID:           doc.ID.Hex(),
		Name:         doc.Name,
		TypeClient:   doc.TypeClient,
		BankAccounts: make([]entity.BankAccount, 0, len(doc.BankAccounts)),
		CreatedAt:    doc.CreatedAt,
	}
	for _, a := range doc.BankAccounts {
		c.BankAccounts = append(c.BankAccounts, entity.BankAccount{Number: a.Number, Type: a.Type, Balance: a.Balance})
	}
	return c
}
