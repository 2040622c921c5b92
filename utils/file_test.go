package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/microblog/api-go/utils"
)

func TestAllowedFile(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"photo.png", true},
		{"photo.jpg", true},
		{"photo.jpeg", true},
		{"animation.gif", true},
		{"PHOTO.PNG", true},
		{"archive.tar.gz", false},
		{"notes.txt", false},
		{"script.png.exe", false},
		{"noextension", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.AllowedFile(tt.filename))
		})
	}
}
