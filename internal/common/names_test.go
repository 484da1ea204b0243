package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"", ""},
		{"time", "time"},
		{"accessor-generator/store", "store"},
		{"github.com/hashicorp/golang-lru/v2", "golang_lru"},
		{"gopkg.in/yaml.v3", "yaml"},
		{"github.com/goccy/go-json", "json"},
		{"example.com/v2", "example_com"},
		{"v2", "v2"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, PkgAlias(tt.path))
		})
	}
}
