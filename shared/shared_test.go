package shared_test

import (
	"testing"

	"booker/shared"
	"booker/shared/dto"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "limiter",
			parts:    nil,
			expected: "limiter",
		},
		{
			name:     "prefix with one part",
			prefix:   "limiter",
			parts:    []string{"10.0.0.1"},
			expected: "limiter:10.0.0.1",
		},
		{
			name:     "prefix with multiple parts",
			prefix:   "limiter",
			parts:    []string{"10.0.0.1", "curl"},
			expected: "limiter:10.0.0.1:curl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.prefix, tt.parts...)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("room-1", "id", "rooms")

	if len(group.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected a dto.Filter, got %T", group.Filters[0])
	}

	if filter.Field != "id" {
		t.Errorf("expected field 'id', got %s", filter.Field)
	}

	if filter.Value != "room-1" {
		t.Errorf("expected value 'room-1', got %v", filter.Value)
	}

	if filter.Operator != dto.FilterOperatorEq {
		t.Errorf("expected operator %s, got %s", dto.FilterOperatorEq, filter.Operator)
	}

	if filter.Table != "rooms" {
		t.Errorf("expected table 'rooms', got %s", filter.Table)
	}

	where, args := group.GetWhereClause()
	if where != "(rooms.id = :id)" {
		t.Errorf("unexpected where clause: %s", where)
	}

	if args["id"] != "room-1" {
		t.Errorf("expected args to contain id, got %v", args)
	}
}
