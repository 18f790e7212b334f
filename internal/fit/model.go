package fit

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownCategory = errors.New("unknown exercise category")

// DefaultRestSeconds is used for sets that come in without an explicit rest time.
const DefaultRestSeconds = 90

type Category string

const (
	CategoryChest      Category = "chest"
	CategoryBack       Category = "back"
	CategoryShoulders  Category = "shoulders"
	CategoryBiceps     Category = "biceps"
	CategoryTriceps    Category = "triceps"
	CategoryForearms   Category = "forearms"
	CategoryQuads      Category = "quads"
	CategoryHamstrings Category = "hamstrings"
	CategoryGlutes     Category = "glutes"
	CategoryCalves     Category = "calves"
	CategoryCore       Category = "core"
	CategoryCardio     Category = "cardio"
)

var Categories = []Category{
	CategoryChest, CategoryBack, CategoryShoulders, CategoryBiceps,
	CategoryTriceps, CategoryForearms, CategoryQuads, CategoryHamstrings,
	CategoryGlutes, CategoryCalves, CategoryCore, CategoryCardio,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Exercise is one entry of the global exercise catalog. The catalog is shared
// between all users, writes to it are gated by the admin allow-list.
type Exercise struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (e Exercise) Validate() error {
	if e.ID == "" || e.Name == "" {
		return errors.New("exercise id or name empty")
	}
	if !e.Category.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, e.Category)
	}
	return nil
}

// SetSpec is a single target or performed set within an exercise entry.
// Time is used for timed sets (e.g. planks), in seconds.
type SetSpec struct {
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Rest      int     `json:"rest"`
	Completed bool    `json:"completed"`
	Time      int     `json:"time,omitempty"`
}

// ExerciseEntry holds a catalog exercise reference within a template, plus a
// denormalized name snapshot so templates survive catalog renames.
// Set ordering is significant: serial set number = position + 1.
type ExerciseEntry struct {
	ExerciseID    string    `json:"exerciseId"`
	ExerciseName  string    `json:"exerciseName"`
	ExerciseNotes string    `json:"exerciseNotes,omitempty"`
	Sets          []SetSpec `json:"sets"`
}

// WorkoutTemplate is a reusable, not-yet-performed workout definition.
type WorkoutTemplate struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Notes     string          `json:"notes,omitempty"`
	Exercises []ExerciseEntry `json:"exercises"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NormalizeSets applies the default rest time to sets saved without one.
func (t *WorkoutTemplate) NormalizeSets() {
	for i := range t.Exercises {
		for j := range t.Exercises[i].Sets {
			if t.Exercises[i].Sets[j].Rest == 0 {
				t.Exercises[i].Sets[j].Rest = DefaultRestSeconds
			}
		}
	}
}

// CalendarEntry is the record of one completed workout session. It gets its
// own id, distinct from the template it was generated from, and is immutable
// afterwards except for per-set corrections.
type CalendarEntry struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Notes       string          `json:"notes,omitempty"`
	Duration    int             `json:"duration"` // seconds
	CompletedAt time.Time       `json:"completedAt"`
	Exercises   []ExerciseEntry `json:"exercises"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// UserIdentity is the resolved identity of the signed-in user. A locally
// cached copy is a display convenience only and is never an authentication
// credential on its own.
type UserIdentity struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// DateOnly normalizes a date string to its YYYY-MM-DD prefix, dropping any
// time component the backend may have attached.
func DateOnly(date string) string {
	if i := strings.IndexByte(date, 'T'); i > 0 {
		return date[:i]
	}
	return date
}

// CompleteWorkout derives a calendar entry from a performed template.
// The entry gets the given fresh id, the template itself stays untouched.
func CompleteWorkout(id string, template WorkoutTemplate, completedAt time.Time, duration time.Duration) CalendarEntry {
	exercises := make([]ExerciseEntry, len(template.Exercises))
	copy(exercises, template.Exercises)
	return CalendarEntry{
		ID:          id,
		Name:        template.Name,
		Date:        completedAt.Format(time.DateOnly),
		Notes:       template.Notes,
		Duration:    int(duration.Seconds()),
		CompletedAt: completedAt,
		Exercises:   exercises,
		CreatedAt:   completedAt,
	}
}
