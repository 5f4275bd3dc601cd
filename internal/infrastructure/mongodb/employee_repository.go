// Package mongodb implements the employee repository and unit of work on the
// MongoDB driver. Writes are staged as bulk-write models and applied by
// SaveChanges in one ordered bulk write.
package mongodb

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/employee-management-api/internal/apperrors"
	"github.com/oksasatya/employee-management-api/internal/domain/entity"
	"github.com/oksasatya/employee-management-api/internal/domain/repository"
)

const employeesCollection = "employees"

// Factory creates a fresh unit of work per request over the shared client.
type Factory struct {
	coll   *mongo.Collection
	logger *logrus.Logger
}

func NewFactory(client *mongo.Client, database string, logger *logrus.Logger) *Factory {
	return &Factory{coll: client.Database(database).Collection(employeesCollection), logger: logger}
}

func (f *Factory) New() repository.UnitOfWork {
	return &unitOfWork{coll: f.coll, logger: f.logger}
}

// unitOfWork stages write models and commits them with a single ordered
// BulkWrite. That call is the driver's atomic scope on a standalone server;
// it is not a cross-document ACID transaction.
type unitOfWork struct {
	coll   *mongo.Collection
	logger *logrus.Logger
	staged []mongo.WriteModel
}

func (u *unitOfWork) Employees() repository.EmployeeRepository { return u }

func (u *unitOfWork) SaveChanges(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(u.staged) == 0 {
		return 0, nil
	}
	models := u.staged
	u.staged = nil

	res, err := u.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		u.logger.WithError(err).Error("bulk write failed")
		return 0, apperrors.NewDependencyError("mongodb", err)
	}
	return res.InsertedCount + res.ModifiedCount + res.DeletedCount + res.UpsertedCount, nil
}

func (u *unitOfWork) Add(ctx context.Context, emp *entity.Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.staged = append(u.staged, mongo.NewInsertOneModel().SetDocument(emp))
	return nil
}

func (u *unitOfWork) Update(ctx context.Context, emp *entity.Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.staged = append(u.staged, mongo.NewReplaceOneModel().
		SetFilter(bson.M{"_id": emp.ID}).
		SetReplacement(emp))
	return nil
}

func (u *unitOfWork) Delete(ctx context.Context, id string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n, err := u.coll.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return 0, apperrors.NewDependencyError("mongodb", err)
	}
	if n == 0 {
		return 0, nil
	}
	u.staged = append(u.staged, mongo.NewDeleteOneModel().SetFilter(bson.M{"_id": id}))
	return 1, nil
}

func (u *unitOfWork) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	var emp entity.Employee
	err := u.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&emp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewDependencyError("mongodb", err)
	}
	return &emp, nil
}

func (u *unitOfWork) GetByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	// Fetch up to two matches so duplicates are detectable; email carries no
	// unique index.
	cur, err := u.coll.Find(ctx, bson.M{"email": email},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}).SetLimit(2))
	if err != nil {
		return nil, apperrors.NewDependencyError("mongodb", err)
	}
	var matches []entity.Employee
	if err := cur.All(ctx, &matches); err != nil {
		return nil, apperrors.NewDependencyError("mongodb", err)
	}
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return &matches[0], nil
	default:
		return nil, apperrors.ErrAmbiguous
	}
}

func (u *unitOfWork) GetByDepartmentID(ctx context.Context, departmentID string) ([]*entity.Employee, error) {
	return u.find(ctx, bson.M{"department_id": departmentID})
}

func (u *unitOfWork) List(ctx context.Context) ([]*entity.Employee, error) {
	return u.find(ctx, bson.M{})
}

func (u *unitOfWork) ListSummaries(ctx context.Context) ([]entity.EmployeeSummary, error) {
	projection := bson.D{
		{Key: "_id", Value: 1},
		{Key: "name", Value: 1},
		{Key: "email", Value: 1},
	}
	cur, err := u.coll.Find(ctx, bson.M{}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, apperrors.NewDependencyError("mongodb", err)
	}
	summaries := []entity.EmployeeSummary{}
	if err := cur.All(ctx, &summaries); err != nil {
		return nil, apperrors.NewDependencyError("mongodb", err)
	}
	return summaries, nil
}

func (u *unitOfWork) find(ctx context.Context, filter bson.M) ([]*entity.Employee, error) {
	cur, err := u.coll.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.NewDependencyError("mongodb", err)
	}
	out := []*entity.Employee{}
	for cur.Next(ctx) {
		var emp entity.Employee
		if err := cur.Decode(&emp); err != nil {
			_ = cur.Close(ctx)
			return nil, apperrors.NewDependencyError("mongodb", err)
		}
		out = append(out, &emp)
	}
	if err := cur.Err(); err != nil {
		return nil, apperrors.NewDependencyError("mongodb", err)
	}
	return out, nil
}

var (
	_ repository.UnitOfWork         = (*unitOfWork)(nil)
	_ repository.EmployeeRepository = (*unitOfWork)(nil)
)
