package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsViewableDoc(t *testing.T) {
	viewable := []string{"site-plan.pdf", "photo.PNG", "crane.jpg", "permit.JPEG", "diagram.gif"}
	for _, name := range viewable {
		assert.True(t, isViewableDoc(name), name)
	}

	notViewable := []string{"schedule.xlsx", "contract.docx", "README", "archive.zip", "notes.pdf.bak"}
	for _, name := range notViewable {
		assert.False(t, isViewableDoc(name), name)
	}
}
