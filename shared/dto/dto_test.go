package dto_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/ShubhamGaur-277/Booking-Service/shared/constant"
	"github.com/ShubhamGaur-277/Booking-Service/shared/dto"
	"github.com/ShubhamGaur-277/Booking-Service/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := createdAt.Format(constant.DateFormat)
	expectedModifiedAt := modifiedAt.Format(constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "seat_class",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "seat_class",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with invalid sort direction",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			request := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(request, tt.defaultRequest)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	filter := dto.Filter{
		Field:    "seat_class",
		Value:    "A",
		Operator: dto.FilterOperatorEq,
		Table:    "seats",
	}

	where, args := filter.GetWhereClause()

	if where != "seats.seat_class = :seat_class" {
		t.Errorf("unexpected where clause: %s", where)
	}

	if args["seat_class"] != "A" {
		t.Errorf("expected arg seat_class to be 'A', got %v", args["seat_class"])
	}
}

func TestFilterGroup_GetWhereClause_Or(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{Field: "name", Value: "alice", Operator: dto.FilterOperatorEq, Table: "bookings"},
			dto.Filter{Field: "phone", Value: int64(9876543210), Operator: dto.FilterOperatorEq, Table: "bookings"},
		},
	}

	where, args := group.GetWhereClause()

	if !strings.Contains(where, " OR ") {
		t.Errorf("expected OR in where clause, got %s", where)
	}

	if !strings.Contains(where, "bookings.name = :name") || !strings.Contains(where, "bookings.phone = :phone") {
		t.Errorf("unexpected where clause: %s", where)
	}

	if args["name"] != "alice" {
		t.Errorf("expected arg name to be 'alice', got %v", args["name"])
	}

	if args["phone"] != int64(9876543210) {
		t.Errorf("expected arg phone to be 9876543210, got %v", args["phone"])
	}
}

func TestFilterGroup_GetWhereClause_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	if where != "" {
		t.Errorf("expected empty where clause, got %s", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}
