package book

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidate_AllFieldsPresent(t *testing.T) {
	p := payload{
		Code:   strPtr("A1"),
		Name:   strPtr("Dune"),
		Author: strPtr("Frank Herbert"),
		Status: strPtr("available"),
	}

	assert.Empty(t, Validate(p))
}

func TestValidate_EmptyStringsPass(t *testing.T) {
	p := payload{
		Code:   strPtr(""),
		Name:   strPtr(""),
		Author: strPtr(""),
		Status: strPtr(""),
	}

	assert.Empty(t, Validate(p))
}

func TestValidate_MissingFields(t *testing.T) {
	p := payload{Name: strPtr("Dune")}

	violations := Validate(p)
	require.Len(t, violations, 3)

	// field order follows struct order
	assert.Equal(t, "code", violations[0].Field)
	assert.Equal(t, "Code is required", violations[0].Message)
	assert.Equal(t, "author", violations[1].Field)
	assert.Equal(t, "status", violations[2].Field)
}

func TestValidate_MaxLength(t *testing.T) {
	long := strings.Repeat("x", 256)
	p := payload{
		Code:   strPtr(long),
		Name:   strPtr("Dune"),
		Author: strPtr("Frank Herbert"),
		Status: strPtr("available"),
	}

	violations := Validate(p)
	require.Len(t, violations, 1)
	assert.Equal(t, "code", violations[0].Field)
	assert.Equal(t, "Code must be at most 255 characters", violations[0].Message)
}

func TestPayload_DecodeDistinguishesMissingFromEmpty(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"code":"","name":"Dune"}`), &p))

	require.NotNil(t, p.Code)
	assert.Equal(t, "", *p.Code)
	assert.Nil(t, p.Author)
	assert.Nil(t, p.Status)
}

func TestPayload_ToBookLeavesIdentityZero(t *testing.T) {
	p := payload{
		Code:   strPtr("A1"),
		Name:   strPtr("Dune"),
		Author: strPtr("Frank Herbert"),
		Status: strPtr("available"),
	}

	b := p.toBook()

	assert.Zero(t, b.ID)
	assert.True(t, b.CreatedAt.IsZero())
	assert.Equal(t, "A1", b.Code)
}
