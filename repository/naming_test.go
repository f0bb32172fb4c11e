package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"id", "id"},
		{"firstName", "first_name"},
		{"Account", "account"},
		{"RGB", "rgb"},
		{"RGBValue", "rgb_value"},
		{"OAuth2Token", "o_auth2_token"},
		{"line2", "line2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, toSnakeCase(tt.input))
		})
	}
}

func TestCollectionName(t *testing.T) {
	assert.Equal(t, "accounts", collectionName("Account"))
	assert.Equal(t, "people", collectionName("Person"))
	assert.Equal(t, "blog_posts", collectionName("BlogPost"))
}

func TestColumnName(t *testing.T) {
	assert.Equal(t, "email_address", columnName("emailAddress"))
	assert.Equal(t, "id", columnName("id"))
}
