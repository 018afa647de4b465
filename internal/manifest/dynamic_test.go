package manifest

import (
	"context"
	"testing"

	"github.com/specialistvlad/metaprop/internal/meta"
	"github.com/specialistvlad/metaprop/internal/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func rootOnly(name string) (*meta.MetaObject, bool) {
	if name == object.ClassName {
		return object.Meta(), true
	}
	return nil, false
}

func mustParse(t *testing.T, src string) []*Class {
	t.Helper()
	classes, err := Parse(context.Background(), []byte(src), "test.hcl")
	require.NoError(t, err)
	return classes
}

const vehicles = `
class "HoverBoard" {
  extends = "Vehicle"

  property "color" {
    type    = string
    default = "pink"
  }
}

class "Vehicle" {
  property "wheels" {
    type    = number
    default = 4
  }

  property "serial" {
    type     = string
    default  = "DMC-12"
    readonly = true
  }
}
`

func TestBuildClasses_ParentsFirst(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	classes := mustParse(t, vehicles)

	// --- Act ---
	built, err := BuildClasses(context.Background(), classes, rootOnly)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, built, 2)

	board := built[0].Meta
	assert.Equal(t, "HoverBoard", board.ClassName())
	assert.Equal(t, "Vehicle", board.SuperClass().ClassName())
	assert.True(t, board.Inherits(object.ClassName))
	assert.Equal(t, 4, board.PropertyCount())
	assert.Same(t, built[1].Meta, board.SuperClass(), "the parent table is shared, not rebuilt")
}

func TestDynamicInstance_ReadWrite(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	built, err := BuildClasses(context.Background(), mustParse(t, vehicles), rootOnly)
	require.NoError(t, err)
	board := built[0]
	a := board.New()
	b := board.New()

	wheels, err := board.Meta.Lookup("wheels")
	require.NoError(t, err)
	color, err := board.Meta.Lookup("color")
	require.NoError(t, err)
	serial, err := board.Meta.Lookup("serial")
	require.NoError(t, err)

	// --- Act ---
	require.NoError(t, wheels.Write(a, cty.NumberIntVal(0)))
	require.NoError(t, color.Write(a, cty.StringVal("green")))

	// --- Assert ---
	got, err := wheels.Read(a)
	require.NoError(t, err)
	assert.True(t, got.RawEquals(cty.NumberIntVal(0)))

	got, err = color.Read(b)
	require.NoError(t, err)
	assert.Equal(t, cty.StringVal("pink"), got, "instances do not share values")

	require.ErrorIs(t, serial.Write(a, cty.StringVal("x")), meta.ErrReadOnly)
	require.ErrorIs(t, wheels.Write(a, cty.StringVal("many")), meta.ErrTypeMismatch)

	objectName, err := board.Meta.Lookup("objectName")
	require.NoError(t, err)
	require.NoError(t, objectName.Write(a, cty.StringVal("marty")))
	assert.Equal(t, "marty", a.(*Instance).ObjectName())
}

func TestDynamicInstance_WrongInstance(t *testing.T) {
	t.Parallel()

	built, err := BuildClasses(context.Background(), mustParse(t, vehicles), rootOnly)
	require.NoError(t, err)
	wheels, err := built[1].Meta.Lookup("wheels")
	require.NoError(t, err)

	_, err = wheels.Read(object.New("plain"))
	require.ErrorIs(t, err, meta.ErrWrongInstance)
}

func TestBuildClasses_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		lookup  Lookup
		wantErr string
	}{
		{
			name: "unknown parent",
			src: `class "A" {
			  extends = "Nowhere"
			}`,
			lookup:  rootOnly,
			wantErr: "extends unknown class 'Nowhere'",
		},
		{
			name: "cycle",
			src: `class "A" {
			  extends = "B"
			}
			class "B" {
			  extends = "A"
			}`,
			lookup:  rootOnly,
			wantErr: "inheritance cycle",
		},
		{
			name: "compiled parent",
			src: `class "A" {
			  extends = "Compiled"
			}`,
			lookup: func(name string) (*meta.MetaObject, bool) {
				if name == "Compiled" {
					return meta.NewBuilder("Compiled", object.Meta()).MustBuild(), true
				}
				return rootOnly(name)
			},
			wantErr: "may only extend 'Object'",
		},
		{
			name:    "already registered",
			src:     `class "Object" {}`,
			lookup:  rootOnly,
			wantErr: "already registered",
		},
		{
			name: "shadows inherited property",
			src: `class "A" {
			  property "objectName" { type = string }
			}`,
			lookup:  rootOnly,
			wantErr: "duplicate property",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := BuildClasses(context.Background(), mustParse(t, tc.src), tc.lookup)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestBuildClasses_DuplicateAcrossFiles(t *testing.T) {
	t.Parallel()

	a := mustParse(t, `class "A" {}`)
	b := mustParse(t, `class "A" {}`)

	_, err := BuildClasses(context.Background(), append(a, b...), rootOnly)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declared in both")
}
