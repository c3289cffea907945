package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURI(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantOK   bool
		wantType string
		wantData string
	}{
		{name: "png", in: "data:image/png;base64,aGVsbG8=", wantOK: true, wantType: "image/png", wantData: "hello"},
		{name: "unpadded", in: "data:image/jpeg;base64,aGVsbG8", wantOK: true, wantType: "image/jpeg", wantData: "hello"},
		{name: "surrounding space", in: "  data:image/gif;base64,aGk=\n", wantOK: true, wantType: "image/gif", wantData: "hi"},
		{name: "no prefix", in: "aGVsbG8="},
		{name: "no comma", in: "data:image/png;base64"},
		{name: "not base64 encoded", in: "data:text/plain,hello"},
		{name: "mime parameters", in: "data:image/png;charset=x;base64,aGVsbG8="},
		{name: "no mime", in: "data:;base64,aGVsbG8="},
		{name: "garbage payload", in: "data:image/png;base64,@@@"},
		{name: "empty payload", in: "data:image/png;base64,"},
		{name: "empty", in: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, ct, ok := DecodeDataURI(tt.in)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Nil(t, data)
				assert.Empty(t, ct)
				return
			}
			assert.Equal(t, tt.wantType, ct)
			assert.Equal(t, tt.wantData, string(data))
		})
	}
}
