package repository

import "github.com/sportsconnect/sportsconnect-api/internal/domain/listing"

// List configuration per entity: logical order names map to SQL columns and
// search runs over a fixed set of text columns.
var (
	UserList = listing.Spec{
		Table: "users",
		Columns: []string{
			"id", "email", "password_hash", "name", "wechat_id", "preferred_name", "bio", "gender",
			"contact_number", "current_address", "permanent_address", "birthday", "public", "role",
			"created_at", "updated_at",
		},
		IDColumn: "id",
		IDKind:   listing.IDText,
		OrderColumns: map[string]string{
			"id":              "id",
			"username":        "id",
			"email":           "email",
			"name":            "name",
			"wechatId":        "wechat_id",
			"gender":          "gender",
			"contact_number":  "contact_number",
			"current_address": "current_address",
			"birthday":        "birthday",
			"public":          "public",
			"role":            "role",
		},
		SearchColumns: []string{
			"id", "email", "name", "wechat_id", "gender", "contact_number", "current_address", "role",
		},
	}

	UniversityList = listing.Spec{
		Table:    "universities",
		Columns:  []string{"id", "name", "city", "state", "conference", "division", "category", "region", "created_at"},
		IDColumn: "id",
		IDKind:   listing.IDBigint,
		OrderColumns: map[string]string{
			"id":         "id",
			"name":       "name",
			"city":       "city",
			"state":      "state",
			"conference": "conference",
			"division":   "division",
			"region":     "region",
			"category":   "category",
		},
		SearchColumns: []string{"name", "city", "state", "conference", "division", "region", "category"},
	}

	UniversityLinkList = listing.Spec{
		Table:         "university_links",
		Columns:       []string{"id", "name", "link"},
		IDColumn:      "id",
		IDKind:        listing.IDBigint,
		OrderColumns:  map[string]string{"id": "id", "name": "name", "link": "link"},
		SearchColumns: []string{"name", "link"},
	}
)
