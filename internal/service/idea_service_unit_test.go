package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ideashelf/backend/internal/apperr"
	"github.com/ideashelf/backend/internal/service"
)

func TestNormalizeTags(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{"Empty input", "", ""},
		{"Single tag", "go", "go"},
		{"Trims whitespace", " go , web ", "go,web"},
		{"Drops empty segments", "go,,web,", "go,web"},
		{"Keeps order and duplicates", "b,a,b", "b,a,b"},
		{"Only separators", " , ,", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, service.NormalizeTags(tc.raw))
		})
	}
}

func TestParseID(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		id      int64
		wantErr bool
	}{
		{"Valid id", "10", 10, false},
		{"Large id", "9007199254740993", 9007199254740993, false},
		{"Zero is not positive", "0", 0, true},
		{"Negative", "-3", 0, true},
		{"Non-numeric", "abc", 0, true},
		{"Trailing garbage", "10x", 0, true},
		{"Empty", "", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := service.ParseID(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.id, id)
			}
		})
	}
}
