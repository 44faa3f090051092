package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchURL_Indeed(t *testing.T) {
	urlStr, err := SearchURL(BoardIndeed, "machine learning engineer", "")
	require.NoError(t, err)
	assert.Equal(t, "https://www.indeed.com/jobs?l=&q=machine+learning+engineer&start=0", urlStr)
}

func TestSearchURL_IndeedWithLocation(t *testing.T) {
	urlStr, err := SearchURL(BoardIndeed, "data scientist", "New York, NY")
	require.NoError(t, err)
	assert.Equal(t, "https://www.indeed.com/jobs?l=New+York%2C+NY&q=data+scientist&start=0", urlStr)
}

func TestSearchURL_UnknownBoard(t *testing.T) {
	_, err := SearchURL(Board("monster"), "software engineer", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no search URL")
}

func TestDefaultBoards(t *testing.T) {
	boards := DefaultBoards()
	assert.Equal(t, []Board{BoardIndeed}, boards)
}
