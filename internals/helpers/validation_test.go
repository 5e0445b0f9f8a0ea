package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `json:"name" validate:"required"`
	Phone string   `json:"phone" validate:"omitempty,phone"`
	Email string   `json:"email" validate:"required,emailaddr"`
	Tags  []string `json:"tags" validate:"dive,max=3"`
}

func TestValidationMessagesCollectsAll(t *testing.T) {
	v := NewValidator()
	err := v.Struct(sample{Phone: "abc", Email: "x@y", Tags: []string{"ok", "toolong"}})
	require.Error(t, err)

	msgs := ValidationMessages(err, map[string]string{
		"name.required":   "Name is required",
		"email.emailaddr": "Bad email",
		"tags.max":        "Tag too long",
	})
	assert.ElementsMatch(t, []string{
		"Name is required",
		"Path `phone` is invalid (phone)",
		"Bad email",
		"Tag too long",
	}, msgs)
}

func TestValidatorAcceptsGoodInput(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Struct(sample{Name: "Dana", Phone: "+972 (50) 123-4567", Email: "dana@x.com"}))
	assert.Nil(t, ValidationMessages(nil, nil))
}

func TestNewValidationError(t *testing.T) {
	assert.NoError(t, NewValidationError(nil))

	err := NewValidationError([]string{"a", "b"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"a", "b"}, ve.Errors)
	assert.Contains(t, err.Error(), "a; b")
}
