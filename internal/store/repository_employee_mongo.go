package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-employees/internal/logger"
	"github.com/MKhiriev/go-employees/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// employeeMongoRepository is the document store implementation of
// [EmployeeRepository].
type employeeMongoRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewEmployeeMongoRepository constructs an [EmployeeRepository] over the
// employees collection of m.
func NewEmployeeMongoRepository(m *Mongo, logger *logger.Logger) EmployeeRepository {
	logger.Debug().Msg("creating employee mongo repository")
	return &employeeMongoRepository{
		collection: m.collection,
		logger:     logger,
	}
}

func (r *employeeMongoRepository) Create(ctx context.Context, employee models.Employee) (models.Employee, error) {
	log := logger.FromContext(ctx)

	doc := toEmployeeDocument(employee)
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Employee{}, ErrEmployeeAlreadyExists
		}
		log.Err(err).Str("func", "*employeeMongoRepository.Create").
			Str("employee_id", employee.EmployeeID).
			Msg("failed to insert employee")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	doc.ID = result.InsertedID
	return doc.toEmployee()
}

func (r *employeeMongoRepository) FindByEmployeeID(ctx context.Context, employeeID string) (models.Employee, error) {
	log := logger.FromContext(ctx)

	var doc employeeDocument
	err := r.collection.FindOne(ctx, byEmployeeIDFilter(employeeID)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		log.Err(err).Str("func", "*employeeMongoRepository.FindByEmployeeID").
			Str("employee_id", employeeID).
			Msg("failed to find employee")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toEmployee()
}

func (r *employeeMongoRepository) List(ctx context.Context, filter models.ListFilter) ([]models.Employee, error) {
	return r.find(ctx, "*employeeMongoRepository.List", byDepartmentFilter(filter.Department), listOptions(filter.Page))
}

func (r *employeeMongoRepository) SearchBySkill(ctx context.Context, search models.SkillSearch) ([]models.Employee, error) {
	return r.find(ctx, "*employeeMongoRepository.SearchBySkill", bySkillFilter(search.Skill), searchOptions(search.Page))
}

func (r *employeeMongoRepository) AverageSalaryByDepartment(ctx context.Context) ([]models.DepartmentSalary, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection.Aggregate(ctx, averageSalaryPipeline())
	if err != nil {
		log.Err(err).Str("func", "*employeeMongoRepository.AverageSalaryByDepartment").Msg("failed to run aggregation")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cursor.Close(ctx)

	results := make([]models.DepartmentSalary, 0)
	if err = cursor.All(ctx, &results); err != nil {
		log.Err(err).Str("func", "*employeeMongoRepository.AverageSalaryByDepartment").Msg("failed to decode aggregation")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return results, nil
}

func (r *employeeMongoRepository) Update(ctx context.Context, employeeID string, patch models.EmployeePatch) (models.Employee, error) {
	log := logger.FromContext(ctx)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc employeeDocument
	err := r.collection.FindOneAndUpdate(ctx, byEmployeeIDFilter(employeeID), toUpdateDocument(patch), opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		log.Err(err).Str("func", "*employeeMongoRepository.Update").
			Str("employee_id", employeeID).
			Msg("failed to update employee")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return doc.toEmployee()
}

func (r *employeeMongoRepository) Delete(ctx context.Context, employeeID string) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.collection.DeleteOne(ctx, byEmployeeIDFilter(employeeID))
	if err != nil {
		log.Err(err).Str("func", "*employeeMongoRepository.Delete").
			Str("employee_id", employeeID).
			Msg("failed to delete employee")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result.DeletedCount > 0, nil
}

func (r *employeeMongoRepository) find(ctx context.Context, funcName string, filter any, opts *options.FindOptions) ([]models.Employee, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute find")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cursor.Close(ctx)

	employees := make([]models.Employee, 0)
	for cursor.Next(ctx) {
		var doc employeeDocument
		if err = cursor.Decode(&doc); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to decode employee document")
			return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
		}

		employee, err := doc.toEmployee()
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to map employee document")
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err = cursor.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during cursor iteration")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return employees, nil
}
