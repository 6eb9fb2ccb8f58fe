package dbtypes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnum(t *testing.T) {
	v, err := ParseEnum[siteStatus]("closed")
	require.NoError(t, err)
	assert.Equal(t, siteStatusClosed, v)

	_, err = ParseEnum[siteStatus]("archived")
	assert.ErrorIs(t, err, ErrInvalidEnumValue)
}

func TestScanEnum(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    siteStatus
		wantErr bool
	}{
		{name: "string", src: "open", want: siteStatusOpen},
		{name: "bytes", src: []byte("closed"), want: siteStatusClosed},
		{name: "unknown label", src: "demolished", wantErr: true},
		{name: "null", src: nil, wantErr: true},
		{name: "wrong type", src: 7, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s siteStatus
			err := s.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestEnumDriverValue(t *testing.T) {
	v, err := siteStatusOpen.Value()
	require.NoError(t, err)
	assert.Equal(t, "open", v)

	_, err = siteStatus("bogus").Value()
	assert.ErrorIs(t, err, ErrInvalidEnumValue)
}

func TestEnumDescriptor(t *testing.T) {
	assert.Equal(t, "site_status", siteStatusEnum.Name)
	assert.Equal(t, []string{"open", "closed"}, siteStatusEnum.Values)
	assert.True(t, siteStatusEnum.Contains("open"))
	assert.False(t, siteStatusEnum.Contains("OPEN"))
	assert.Equal(t, []string{"open", "closed"}, EnumStrings(siteStatusValues))
}

func TestEnumJSONIsPlainString(t *testing.T) {
	out, err := json.Marshal(struct {
		Status siteStatus `json:"status"`
	}{Status: siteStatusClosed})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"closed"}`, string(out))
}
