package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "valid", in: "5e78b06eccacf926ec9b06a2", want: "5e78b06eccacf926ec9b06a2", wantOK: true},
		{name: "uppercase is canonicalised", in: "5E78B06ECCACF926EC9B06A2", want: "5e78b06eccacf926ec9b06a2", wantOK: true},
		{name: "empty", in: ""},
		{name: "too short", in: "5e78b06eccacf926ec9b06a"},
		{name: "too long", in: "5e78b06eccacf926ec9b06a21"},
		{name: "not hex", in: "5e78b06eccacf926ec9b06zz"},
		{name: "uuid", in: "2f1c2b56-9a43-4c8e-8d0f-3b1a6c7d9e01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseID(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewID_IsParsable(t *testing.T) {
	id := NewID()

	got, ok := ParseID(id)
	assert.True(t, ok)
	assert.Equal(t, id, got)
	assert.NotEqual(t, id, NewID())
}

func TestCapacityUsage(t *testing.T) {
	u := CapacityUsage{EventID: "e1", Capacity: 10, Reserved: 8}

	assert.Equal(t, 2, u.Remaining())
	assert.True(t, u.Fits(2))
	assert.False(t, u.Fits(3))
	assert.False(t, u.Overbooked())

	empty := CapacityUsage{Capacity: 0}
	assert.False(t, empty.Fits(1))

	over := CapacityUsage{Capacity: 5, Reserved: 7}
	assert.True(t, over.Overbooked())
	assert.Equal(t, -2, over.Remaining())
}
