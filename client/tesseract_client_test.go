package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YuxiangJiangCT/billassistant/service"
)

var _ service.OCRClient = (*TesseractClient)(nil)

func TestNewTesseractClientDefaultsLanguage(t *testing.T) {
	tc := NewTesseractClient("/opt/tessdata", "")
	assert.Equal(t, "eng", tc.language)
	assert.Equal(t, "/opt/tessdata", tc.dataPath)

	assert.Equal(t, "eng+spa", NewTesseractClient("", "eng+spa").language)
}
