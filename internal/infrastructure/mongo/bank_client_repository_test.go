package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/jhoicas/BankClients-api/internal/domain/entity"
	mongorepo "github.com/jhoicas/BankClients-api/internal/infrastructure/mongo"
)

var testCreatedAt = time.Date(2022, 8, 9, 10, 11, 12, 0, time.UTC)

func clientDoc(oid primitive.ObjectID, name string) bson.D {
	d128, _ := primitive.ParseDecimal128("150.25")
	return bson.D{
		{Key: "_id", Value: oid},
		{Key: "name", Value: name},
		{Key: "typeClient", Value: "PERSONAL"},
		{Key: "bankAccounts", Value: bson.A{
			bson.D{{Key: "number", Value: "0011"}, {Key: "type", Value: "AHORROS"}, {Key: "balance", Value: d128}},
		}},
		{Key: "createdAt", Value: primitive.NewDateTimeFromTime(testCreatedAt)},
	}
}

func ns(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestBankClientRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("FindAll recorre todos los lotes", func(mt *mtest.T) {
		a, b := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns(mt), mtest.FirstBatch, clientDoc(a, "ana")),
			mtest.CreateCursorResponse(0, ns(mt), mtest.NextBatch, clientDoc(b, "luis")),
		)
		repo := mongorepo.NewBankClientRepository(mt.DB, mt.Coll.Name())

		var got []*entity.BankClient
		for c, err := range repo.FindAll(context.Background()) {
			require.NoError(mt, err)
			got = append(got, c)
		}
		require.Len(mt, got, 2)
		assert.Equal(mt, a.Hex(), got[0].ID)
		assert.Equal(mt, "ana", got[0].Name)
		assert.Equal(mt, b.Hex(), got[1].ID)
		require.Len(mt, got[0].BankAccounts, 1)
		assert.True(mt, decimal.RequireFromString("150.25").Equal(got[0].BankAccounts[0].Balance))
		assert.True(mt, testCreatedAt.Equal(got[0].CreatedAt))
	})

	mt.Run("FindAll propaga error del servidor", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 13, Name: "Unauthorized", Message: "no autorizado",
		}))
		repo := mongorepo.NewBankClientRepository(mt.DB, mt.Coll.Name())

		var gotErr error
		for _, err := range repo.FindAll(context.Background()) {
			gotErr = err
		}
		assert.Error(mt, gotErr)
	})

	mt.Run("FindByID encontrado", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, clientDoc(oid, "ana")))
		repo := mongorepo.NewBankClientRepository(mt.DB, mt.Coll.Name())

		got, err := repo.FindByID(context.Background(), oid.Hex())
		require.NoError(mt, err)
		require.NotNil(mt, got)
		assert.Equal(mt, oid.Hex(), got.ID)
		assert.Equal(mt, "PERSONAL", got.TypeClient)
	})

	mt.Run("FindByID ausente", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))
		repo := mongorepo.NewBankClientRepository(mt.DB, mt.Coll.Name())

		got, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())
		assert.NoError(mt, err)
		assert.Nil(mt, got)
	})

	mt.Run("FindByID con id no hexadecimal es ausencia", func(mt *mtest.T) {
		repo := mongorepo.NewBankClientRepository(mt.DB, mt.Coll.Name())
		got, err := repo.FindByID(context.Background(), "no-es-un-objectid")
		assert.NoError(mt, err)
		assert.Nil(mt, got)
	})

	mt.Run("Save inserta y asigna ObjectID", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := mongorepo.NewBankClientRepository(mt.DB, mt.Coll.Name())

		in := &entity.BankClient{
			Name:       "ana",
			TypeClient: "PERSONAL",
			BankAccounts: []entity.BankAccount{
				{Number: "1", Type: "AHORROS", Balance: decimal.RequireFromString("10.50")},
			},
			CreatedAt: time.Date(2023, 1, 1, 0, 0, 0, 123456789, time.UTC),
		}
		saved, err := repo.Save(context.Background(), in)
		require.NoError(mt, err)
		_, err = primitive.ObjectIDFromHex(saved.ID)
		assert.NoError(mt, err, "el ID asignado es un ObjectID en hex")
		assert.True(mt, time.Date(2023, 1, 1, 0, 0, 0, 123000000, time.UTC).Equal(saved.CreatedAt))

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "insert", started.CommandName)
	})

	mt.Run("Save con ID reemplaza", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		repo := mongorepo.NewBankClientRepository(mt.DB, mt.Coll.Name())

		oid := primitive.NewObjectID()
		saved, err := repo.Save(context.Background(), &entity.BankClient{
			ID: oid.Hex(), Name: "beatriz", TypeClient: "EMPRESARIAL", CreatedAt: testCreatedAt,
		})
		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), saved.ID)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "update", started.CommandName)
	})

	mt.Run("Save con ID inválido", func(mt *mtest.T) {
		repo := mongorepo.NewBankClientRepository(mt.DB, mt.Coll.Name())
		_, err := repo.Save(context.Background(), &entity.BankClient{ID: "zzz", Name: "x"})
		assert.Error(mt, err)
	})

	mt.Run("Delete", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		repo := mongorepo.NewBankClientRepository(mt.DB, mt.Coll.Name())

		err := repo.Delete(context.Background(), &entity.BankClient{ID: primitive.NewObjectID().Hex()})
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "delete", started.CommandName)
	})

	mt.Run("Delete con ID inválido", func(mt *mtest.T) {
		repo := mongorepo.NewBankClientRepository(mt.DB, mt.Coll.Name())

		err := repo.Delete(context.Background(), &entity.BankClient{ID: "zzz"})
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), `"zzz"`)
		assert.Nil(mt, mt.GetStartedEvent(), "no se envía ningún comando")
	})

	mt.Run("Delete propaga error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 2, Name: "BadValue", Message: "valor inválido",
		}))
		repo := mongorepo.NewBankClientRepository(mt.DB, mt.Coll.Name())

		err := repo.Delete(context.Background(), &entity.BankClient{ID: primitive.NewObjectID().Hex()})
		assert.Error(mt, err)
	})
}
