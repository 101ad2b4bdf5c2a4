package store

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/loanlift/loanlift-api/internal/models"
)

// UserFilter narrows a user listing. Search is a case-insensitive
// substring match over name and email; Role and Status match exactly.
type UserFilter struct {
	Search string
	Role   models.Role
	Status models.UserStatus
}

func (f UserFilter) bson() bson.M {
	filter := bson.M{}
	if f.Search != "" {
		pattern := primitive.Regex{Pattern: regexEscape(f.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"email": pattern},
		}
	}
	if f.Role != "" {
		filter["role"] = f.Role
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

// LoanFilter narrows a loan listing. Title is a case-insensitive
// substring match; Category matches exactly.
type LoanFilter struct {
	Title      string
	Category   string
	ShowOnHome *bool
}

func (f LoanFilter) bson() bson.M {
	filter := bson.M{}
	if f.Title != "" {
		filter["title"] = primitive.Regex{Pattern: regexEscape(f.Title), Options: "i"}
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.ShowOnHome != nil {
		filter["showOnHome"] = *f.ShowOnHome
	}
	return filter
}

// ApplicationFilter narrows an application listing.
type ApplicationFilter struct {
	BorrowerEmail string
	Status        models.ApplicationStatus
}

func (f ApplicationFilter) bson() bson.M {
	filter := bson.M{}
	if f.BorrowerEmail != "" {
		filter["borrowerEmail"] = f.BorrowerEmail
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

// regexEscape neutralizes regex metacharacters so user input matches as
// a literal substring.
func regexEscape(s string) string {
	const meta = `\.+*?()|[]{}^$`
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(meta); j++ {
			if s[i] == meta[j] {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, s[i])
	}
	return string(out)
}
