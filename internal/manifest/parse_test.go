package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestParse_Class(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
		class "Clock" {
		  extends     = "Object"
		  description = "Hill Valley courthouse clock."

		  property "time" {
		    type    = string
		    default = "10:04"
		  }

		  property "struck" {
		    type     = bool
		    default  = true
		    readonly = true
		  }

		  property "year" {
		    type    = number
		    default = "1955"
		  }

		  property "tags" {
		    type = list(string)
		  }

		  property "extra" {
		    type = any
		  }
		}
	`

	// --- Act ---
	classes, err := Parse(context.Background(), []byte(src), "clock.hcl")

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, classes, 1)
	cls := classes[0]

	assert.Equal(t, "Clock", cls.Name)
	assert.Equal(t, "Object", cls.SuperClass())
	assert.Equal(t, "Hill Valley courthouse clock.", cls.Description)
	assert.Equal(t, "clock.hcl", cls.FilePath)

	var names []string
	for _, p := range cls.Properties {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"time", "struck", "year", "tags", "extra"}, names, "declaration order is kept")

	assert.True(t, cls.Property("time").Default.RawEquals(cty.StringVal("10:04")))
	assert.True(t, cls.Property("struck").ReadOnly)
	assert.Equal(t, cty.Number, cls.Property("year").Type)
	assert.True(t, cls.Property("year").Default.RawEquals(cty.NumberIntVal(1955)), "defaults are converted to the declared type")
	assert.True(t, cls.Property("tags").Type.Equals(cty.List(cty.String)))
	assert.True(t, cls.Property("tags").Default.IsNull())
	assert.Equal(t, cty.DynamicPseudoType, cls.Property("extra").Type)
	assert.Nil(t, cls.Property("missing"))
}

func TestParse_DefaultsToRootClass(t *testing.T) {
	t.Parallel()

	classes, err := Parse(context.Background(), []byte(`class "Plain" {}`), "plain.hcl")
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "", classes[0].Extends)
	assert.Equal(t, RootClass, classes[0].SuperClass())
	assert.Empty(t, classes[0].Properties)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "syntax error",
			src:     `class "Broken" {`,
			wantErr: "failed to parse",
		},
		{
			name: "duplicate property",
			src: `class "C" {
			  property "a" { type = string }
			  property "a" { type = string }
			}`,
			wantErr: "Duplicate property definition",
		},
		{
			name: "duplicate class",
			src: `class "C" {}
			class "C" {}`,
			wantErr: "Duplicate class definition",
		},
		{
			name:    "missing type",
			src: `class "C" {
			  property "a" {}
			}`,
			wantErr: "Missing 'type' attribute",
		},
		{
			name:    "unknown type",
			src: `class "C" {
			  property "a" { type = text }
			}`,
			wantErr: "not a valid type",
		},
		{
			name:    "collection of any",
			src: `class "C" {
			  property "a" { type = list(any) }
			}`,
			wantErr: "cannot contain type 'any'",
		},
		{
			name:    "bad default",
			src: `class "C" {
			  property "a" {
			    type    = number
			    default = "soon"
			  }
			}`,
			wantErr: "Invalid default value",
		},
		{
			name:    "unknown attribute",
			src:     `class "C" { color = "silver" }`,
			wantErr: "Unsupported argument",
		},
		{
			name:    "unknown top-level block",
			src:     `runner "print" {}`,
			wantErr: "Unsupported block type",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(context.Background(), []byte(tc.src), "test.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "car.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
class "Car" {
  property "wheels" {
    type    = number
    default = 4
  }
}
`), 0o600))

	classes, err := ParseFile(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, path, classes[0].FilePath)

	_, err = ParseFile(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
}
