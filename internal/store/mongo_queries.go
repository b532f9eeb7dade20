package store

import (
	"regexp"

	"github.com/MKhiriev/go-employees/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// byEmployeeIDFilter matches the single record with the given employee_id.
func byEmployeeIDFilter(employeeID string) bson.D {
	return bson.D{{Key: "employee_id", Value: employeeID}}
}

// byDepartmentFilter matches every record of a department, or every record
// at all when department is empty.
func byDepartmentFilter(department string) bson.D {
	if department == "" {
		return bson.D{}
	}
	return bson.D{{Key: "department", Value: department}}
}

// bySkillFilter matches records holding at least one skill equal to skill,
// ignoring case. The skill is quoted so pattern characters match literally.
func bySkillFilter(skill string) bson.D {
	return bson.D{{Key: "skills", Value: bson.D{
		{Key: "$elemMatch", Value: bson.D{
			{Key: "$regex", Value: "^" + regexp.QuoteMeta(skill) + "$"},
			{Key: "$options", Value: "i"},
		}},
	}}}
}

// listOptions orders by joining date, newest first, then pages.
func listOptions(page models.Page) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "joining_date", Value: -1}}).
		SetSkip(page.Skip).
		SetLimit(page.Limit)
}

// searchOptions pages in natural order.
func searchOptions(page models.Page) *options.FindOptions {
	return options.Find().
		SetSkip(page.Skip).
		SetLimit(page.Limit)
}

// averageSalaryPipeline groups by department and projects the mean salary
// rounded to a whole number.
func averageSalaryPipeline() bson.A {
	return bson.A{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$department"},
			{Key: "avg_salary", Value: bson.D{{Key: "$avg", Value: "$salary"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "department", Value: "$_id"},
			{Key: "avg_salary", Value: bson.D{{Key: "$round", Value: bson.A{"$avg_salary", 0}}}},
		}}},
	}
}
