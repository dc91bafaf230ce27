package expense

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(string(c))
		assert.NoError(t, err)
		assert.Equal(t, c, got)
	}

	for _, bad := range []string{"", "food", "FOOD", "Gadgets", "Misc"} {
		_, err := ParseCategory(bad)
		assert.True(t, errors.Is(err, ErrUnknownCategory), "label %q", bad)
	}
}

func TestAuthorize(t *testing.T) {
	record := Expense{ID: "abc", UserID: "user-a"}

	assert.True(t, Authorize(record, "user-a"))
	assert.False(t, Authorize(record, "user-b"))
	assert.False(t, Authorize(record, ""))
}
