package blob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEndpoint_Table(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantHost   string
		wantSecure bool
		wantErr    bool
	}{
		{"bare host:port", "minio:9000", "minio:9000", false, false},
		{"http scheme", "http://minio:9000", "minio:9000", false, false},
		{"https scheme", "https://s3.example.com", "s3.example.com", true, false},
		{"trailing slash path ok", "http://minio:9000/", "minio:9000", false, false},
		{"path rejected", "http://minio:9000/bucket", "", false, true},
		{"empty", "   ", "", false, true},
		{"scheme without host", "http://", "", false, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			host, secure, err := normalizeEndpoint(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantSecure, secure)
		})
	}
}

func TestPublicURL(t *testing.T) {
	s := &Store{bucket: "uploads", baseURL: "http://localhost:9000"}
	assert.Equal(t,
		"http://localhost:9000/uploads/abc-1.png",
		s.PublicURL("abc-1.png"),
	)
}
