// Package record defines the Record value held by the record store.
package record

import (
	"fmt"
	"time"
)

// adultAge is the minimum age at which a Record is considered an adult.
const adultAge = 18

// Record describes one entity. Records are immutable by convention; integrity
// (unique ids, valid emails) is the caller's responsibility.
type Record struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

// Option configures a Record at construction.
type Option func(*Record)

// WithCreatedAt sets an explicit creation timestamp instead of the time of
// construction.
func WithCreatedAt(t time.Time) Option {
	return func(r *Record) {
		r.CreatedAt = t
	}
}

// New creates a Record. CreatedAt is captured at call time unless overridden
// with WithCreatedAt.
func New(id int, name, email string, age int, opts ...Option) Record {
	r := Record{
		ID:        id,
		Name:      name,
		Email:     email,
		Age:       age,
		CreatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// IsAdult reports whether the record's age is 18 or older.
func (r Record) IsAdult() bool {
	return r.Age >= adultAge
}

// Equal reports whether all fields of r and other are equal. Timestamps are
// compared as instants, ignoring location and monotonic clock readings.
func (r Record) Equal(other Record) bool {
	return r.ID == other.ID &&
		r.Name == other.Name &&
		r.Email == other.Email &&
		r.Age == other.Age &&
		r.CreatedAt.Equal(other.CreatedAt)
}

// ToMap returns a serializable view of the record, including the derived
// adult flag. CreatedAt is rendered in RFC 3339 form.
func (r Record) ToMap() map[string]any {
	return map[string]any{
		"id":         r.ID,
		"name":       r.Name,
		"email":      r.Email,
		"age":        r.Age,
		"adult":      r.IsAdult(),
		"created_at": r.CreatedAt.Format(time.RFC3339Nano),
	}
}

func (r Record) String() string {
	return fmt.Sprintf("Record{id=%d, name=%s, age=%d}", r.ID, r.Name, r.Age)
}
