package jsonutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/jsonutil"
)

func TestFindDuplicateMembers_None(t *testing.T) {
	dups, err := jsonutil.FindDuplicateMembers([]byte(`{"a":1,"b":{"a":2},"c":[{"a":3},{"a":4}]}`))
	require.NoError(t, err)
	assert.Empty(t, dups)
}

func TestFindDuplicateMembers_Paths(t *testing.T) {
	doc := `{"a":1,"a":2,"list":[0,{"x":"s","y":[],"x":{}}],"n/m":{"k":null,"k":true}}`
	dups, err := jsonutil.FindDuplicateMembers([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/list/1/x", "/n~1m/k"}, dups)
}

func TestFindDuplicateMembers_ValuesAreNotKeys(t *testing.T) {
	dups, err := jsonutil.FindDuplicateMembers([]byte(`{"a":"a","b":"a","c":["c","c"]}`))
	require.NoError(t, err)
	assert.Empty(t, dups)
}

func TestFindDuplicateMembers_Malformed(t *testing.T) {
	_, err := jsonutil.FindDuplicateMembers([]byte(`{"a":`))
	assert.Error(t, err)
}

func TestUnmarshal_DuplicateMemberSeverity(t *testing.T) {
	doc := []byte(`{"id":1,"id":2}`)

	v, err := newNormalizer().Unmarshal(doc)
	require.NoError(t, err)
	assert.NotNil(t, v)

	rec := &jsonutil.Recorder{}
	_, err = newNormalizer(jsonutil.WithDuplicateMembers(jsonutil.Warn), jsonutil.WithDiagnosticHandler(rec.Handle)).Unmarshal(doc)
	require.NoError(t, err)
	require.Len(t, rec.Diagnostics, 1)
	assert.Equal(t, jsonutil.CodeDuplicateMember, rec.Diagnostics[0].Code)
	assert.Equal(t, "/id", rec.Diagnostics[0].Input)

	_, err = newNormalizer(jsonutil.WithDuplicateMembers(jsonutil.Error)).Unmarshal(doc)
	ne, ok := jsonutil.AsNormalizeError(err)
	require.True(t, ok)
	assert.Equal(t, jsonutil.CodeDuplicateMember, ne.Code)
	assert.Equal(t, "/id", ne.Path)
}
