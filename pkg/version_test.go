package pluginversion

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current string
		want    string
		wantErr error
	}{
		{name: "patch bump", current: "3.4.1", want: "3.4.2"},
		{name: "patch carries digits", current: "1.2.9", want: "1.2.10"},
		{name: "minor bump", current: "3.4", want: "3.5"},
		{name: "leading zero patch", current: "1.0.07", want: "1.0.8"},
		{name: "single component", current: "5", wantErr: ErrUnsupportedVersionShape},
		{name: "four components", current: "1.2.3.4", wantErr: ErrUnsupportedVersionShape},
		{name: "empty", current: "", wantErr: ErrUnsupportedVersionShape},
		{name: "non numeric patch", current: "1.2.beta", wantErr: ErrNonNumericComponent},
		{name: "non numeric minor", current: "1.x", wantErr: ErrNonNumericComponent},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NextVersion(tt.current)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextVersionKeepsLeadingComponents(t *testing.T) {
	t.Parallel()

	for major := 0; major < 12; major += 3 {
		for minor := 0; minor < 12; minor += 4 {
			prefix := strconv.Itoa(major) + "." + strconv.Itoa(minor)

			for patch := 0; patch < 12; patch += 5 {
				got, err := NextVersion(prefix + "." + strconv.Itoa(patch))
				require.NoError(t, err)
				assert.Equal(t, prefix+"."+strconv.Itoa(patch+1), got)
			}

			got, err := NextVersion(prefix)
			require.NoError(t, err)
			assert.Equal(t, strconv.Itoa(major)+"."+strconv.Itoa(minor+1), got)
		}
	}
}

func TestNextVersionNonNumericWrapsStrconv(t *testing.T) {
	t.Parallel()

	_, err := NextVersion("1.2.x")
	require.Error(t, err)

	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)
}

func TestReleaseVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version string
		want    string
		wantErr bool
	}{
		{version: "3.4.1", want: "34"},
		{version: "10.2", want: "102"},
		{version: "1.2.3.4", want: "12"},
		{version: "3.4-beta", want: "34-beta"},
		{version: "5", wantErr: true},
		{version: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.version, func(t *testing.T) {
			t.Parallel()

			got, err := ReleaseVersion(tt.version)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsConventional(t *testing.T) {
	t.Parallel()

	assert.True(t, IsConventional("3.4.1"))
	assert.True(t, IsConventional("3.4"))
	assert.True(t, IsConventional("v3.4.1"))
	assert.True(t, IsConventional("3.4.1-rc.1"))
	assert.False(t, IsConventional("1.2.3.4"))
	assert.False(t, IsConventional("next"))
}

func TestCompareVersions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, CompareVersions("3.4.2", "3.4.1"))
	assert.Equal(t, 0, CompareVersions("3.4", "3.4.0"))
	assert.Equal(t, -1, CompareVersions("3.4.1", "3.10.0"))
	assert.Equal(t, -1, CompareVersions("garbage", "0.0.1"))
}
