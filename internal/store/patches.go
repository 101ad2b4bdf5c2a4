package store

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/loanlift/loanlift-api/internal/models"
)

// LoanPatch carries the fields a loan update may change. Nil fields are
// left untouched.
type LoanPatch struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	Category       *string  `json:"category"`
	MinAmount      *float64 `json:"minAmount"`
	MaxAmount      *float64 `json:"maxAmount"`
	InterestRate   *float64 `json:"interestRate"`
	TermMonths     *int     `json:"termMonths"`
	ApplicationFee *float64 `json:"applicationFee"`
	ShowOnHome     *bool    `json:"showOnHome"`
}

func (p LoanPatch) set() bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.MinAmount != nil {
		set["minAmount"] = *p.MinAmount
	}
	if p.MaxAmount != nil {
		set["maxAmount"] = *p.MaxAmount
	}
	if p.InterestRate != nil {
		set["interestRate"] = *p.InterestRate
	}
	if p.TermMonths != nil {
		set["termMonths"] = *p.TermMonths
	}
	if p.ApplicationFee != nil {
		set["applicationFee"] = *p.ApplicationFee
	}
	if p.ShowOnHome != nil {
		set["showOnHome"] = *p.ShowOnHome
	}
	return set
}

// Empty reports whether the patch changes nothing.
func (p LoanPatch) Empty() bool {
	return len(p.set()) == 0
}

// UserModeration carries the admin-editable moderation fields of a user.
type UserModeration struct {
	Role          *models.Role       `json:"role"`
	Status        *models.UserStatus `json:"status"`
	SuspendReason *string            `json:"suspendReason"`
}

func (p UserModeration) set() bson.M {
	set := bson.M{}
	if p.Role != nil {
		set["role"] = *p.Role
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.SuspendReason != nil {
		set["suspendReason"] = *p.SuspendReason
	}
	return set
}

// Empty reports whether the patch changes nothing.
func (p UserModeration) Empty() bool {
	return len(p.set()) == 0
}
