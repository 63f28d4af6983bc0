package device

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantSize uint16
		wantBits uint8
		wantErr  bool
	}{
		{name: "exact match", query: "93c66", wantSize: 512, wantBits: 9},
		{name: "case-insensitive match", query: "93C46", wantSize: 128, wantBits: 7},
		{name: "smallest part", query: "93c06", wantSize: 32, wantBits: 6},
		{name: "unknown part", query: "93c86", wantErr: true},
		{name: "empty name", query: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Lookup(tt.query)

			if tt.wantErr {
				require.Error(t, err)
				var unknown *UnknownDeviceError
				require.ErrorAs(t, err, &unknown)
				assert.Equal(t, tt.query, unknown.Name)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, p.Size)
			assert.Equal(t, tt.wantBits, p.AddrBits)
		})
	}
}

func TestSelectEffectiveAddrBits(t *testing.T) {
	p, err := Lookup("93c66")
	require.NoError(t, err)

	x8, err := p.Select(false)
	require.NoError(t, err)
	assert.Equal(t, 9, x8.AddrBits())
	assert.Equal(t, 1, x8.WordSize())
	assert.Equal(t, 512, x8.Words())

	x16, err := p.Select(true)
	require.NoError(t, err)
	assert.Equal(t, 8, x16.AddrBits())
	assert.Equal(t, 2, x16.WordSize())
	assert.Equal(t, 256, x16.Words())

	// Selecting again must not decrement twice.
	again, err := p.Select(true)
	require.NoError(t, err)
	assert.Equal(t, 8, again.AddrBits())
}

func TestSelectRejectsBadGeometry(t *testing.T) {
	for _, size := range []uint16{100, 300} {
		for addrBits := uint8(5); addrBits <= 9; addrBits++ {
			p := Custom(size, addrBits)
			_, err := p.Select(false)

			var geom *GeometryError
			require.ErrorAsf(t, err, &geom, "size=%d addrBits=%d", size, addrBits)
			assert.Equal(t, "size", geom.Field)
		}
	}

	_, err := Custom(0, 7).Select(false)
	var geom *GeometryError
	require.ErrorAs(t, err, &geom)

	for _, bits := range []uint8{0, 4, 10, 16} {
		_, err := Custom(128, bits).Select(false)
		require.ErrorAsf(t, err, &geom, "addrBits=%d", bits)
		assert.Equal(t, "addr-bits", geom.Field)
	}
}

func TestSelectRejectsUnsupportedOrganization(t *testing.T) {
	// 93c06 is word-organized only.
	p, err := Lookup("93c06")
	require.NoError(t, err)

	_, err = p.Select(false)
	var mode *UnsupportedModeError
	require.ErrorAs(t, err, &mode)
	assert.False(t, mode.X16)

	_, err = p.Select(true)
	assert.NoError(t, err)

	// Byte-organized-only profile rejects x16.
	x8only := &Profile{Name: "x8only", Size: 128, AddrBits: 7, Orgs: OrgX8}
	_, err = x8only.Select(true)
	require.ErrorAs(t, err, &mode)
	assert.True(t, mode.X16)
}

func TestConfigResolve(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    *Profile
		wantErr error
	}{
		{
			name: "catalog type",
			cfg:  Config{Type: "93c56"},
			want: &Profile{Name: "93c56", Size: 256, AddrBits: 8, Orgs: OrgX8 | OrgX16},
		},
		{
			name: "explicit geometry",
			cfg:  Config{Size: 512, AddrBits: 8},
			want: &Profile{Name: "custom", Size: 512, AddrBits: 8, Orgs: OrgX8 | OrgX16},
		},
		{
			name: "defaults",
			cfg:  Config{},
			want: &Profile{Name: "custom", Size: 256, AddrBits: 8, Orgs: OrgX8 | OrgX16},
		},
		{
			name:    "type and size conflict",
			cfg:     Config{Type: "93c66", Size: 512},
			wantErr: &ConflictError{},
		},
		{
			name:    "type and addr-bits conflict",
			cfg:     Config{Type: "93c66", AddrBits: 9},
			wantErr: &ConflictError{},
		},
		{
			name:    "unknown type",
			cfg:     Config{Type: "25lc040"},
			wantErr: &UnknownDeviceError{Name: "25lc040"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.cfg.Resolve()

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.IsType(t, tt.wantErr, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestConfigResolveExtraCatalog(t *testing.T) {
	extra := []Profile{{Name: "clone46", Size: 128, AddrBits: 7, Orgs: OrgX8}}

	p, err := Config{Type: "CLONE46", Extra: extra}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "clone46", p.Name)

	// Built-in table still reachable when the extra catalog misses.
	p, err = Config{Type: "93c46", Extra: extra}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, uint16(128), p.Size)
}

func TestCatalogIsACopy(t *testing.T) {
	c := Catalog()
	require.NotEmpty(t, c)
	c[0].Size = 1

	p, err := Lookup(Catalog()[0].Name)
	require.NoError(t, err)
	assert.NotEqual(t, uint16(1), p.Size)
}

func TestErrorsAreErrors(t *testing.T) {
	// The taxonomy must survive wrapping.
	err := error(&ConflictError{})
	var conflict *ConflictError
	assert.True(t, errors.As(err, &conflict))
	assert.Contains(t, err.Error(), "not both")
}
