package codec_test

import (
	"strings"
	"testing"
	"xds/pkg/codec"
	"xds/pkg/ebxml"
	"xds/pkg/metadata"
	"xds/pkg/sample"
	"xds/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func samples() map[codec.Kind]any {
	return map[codec.Kind]any{
		codec.KindProvideAndRegister: sample.ProvideAndRegister(),
		codec.KindRegister:           sample.Register(),
		codec.KindQuery:              sample.Query(),
		codec.KindResponse:           sample.Response(),
		codec.KindQueryResponse:      sample.QueryResponse(),
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, v := range ebxml.Versions {
		c, err := codec.For(v)
		require.NoError(t, err)
		require.Equal(t, v, c.Version())

		for kind, want := range samples() {
			t.Run(v.String()+"/"+kind.String(), func(t *testing.T) {
				data, err := c.Encode(kind, want)
				require.NoError(t, err)
				require.True(t, strings.HasPrefix(string(data), "<?xml"))

				got, err := c.Decode(kind, data)
				require.NoError(t, err)
				require.True(t, codec.Equal(want, got), "decoded %s differs:\n%s", kind, data)
			})
		}
	}
}

func TestEncodeDecodeWithoutEntryIDs(t *testing.T) {
	transactions := map[codec.Kind]any{
		codec.KindProvideAndRegister: &metadata.ProvideAndRegisterDocumentSet{
			SubmissionSet: &metadata.SubmissionSet{UniqueID: "1.2.3"},
			Documents: []metadata.Document{
				{Content: []byte("orphan")},
				{DocumentEntry: &metadata.DocumentEntry{UniqueID: "a"}, Content: []byte("A")},
				{DocumentEntry: &metadata.DocumentEntry{UniqueID: "b"}, Content: []byte("B")},
			},
			Folders: []metadata.Folder{{UniqueID: "4.5.6"}},
		},
		codec.KindRegister: &metadata.RegisterDocumentSet{
			SubmissionSet: &metadata.SubmissionSet{
				UniqueID:           "1.2.3",
				IntendedRecipients: []string{"a", "", "b"},
			},
			Folders: []metadata.Folder{{UniqueID: "4.5.6"}},
		},
		codec.KindQueryResponse: &metadata.QueryResponse{
			Status:         metadata.StatusSuccess,
			SubmissionSets: []metadata.SubmissionSet{{UniqueID: "1.2.3"}},
			Folders:        []metadata.Folder{{UniqueID: "4.5.6"}},
		},
	}

	for _, v := range ebxml.Versions {
		c, err := codec.For(v)
		require.NoError(t, err)

		for kind, want := range transactions {
			t.Run(v.String()+"/"+kind.String(), func(t *testing.T) {
				data, err := c.Encode(kind, want)
				require.NoError(t, err)

				got, err := c.Decode(kind, data)
				require.NoError(t, err)
				require.True(t, codec.Equal(want, got), "decoded %s differs:\n%s", kind, data)
			})
		}
	}
}

func TestNamespaces(t *testing.T) {
	c21, err := codec.For(ebxml.Version21)
	require.NoError(t, err)
	data, err := c21.Encode(codec.KindRegister, sample.Register())
	require.NoError(t, err)
	require.Contains(t, string(data), `<SubmitObjectsRequest xmlns="urn:oasis:names:tc:ebxml-regrep:registry:xsd:2.1">`)
	require.Contains(t, string(data), `<LeafRegistryObjectList xmlns="urn:oasis:names:tc:ebxml-regrep:rim:xsd:2.1">`)
	require.Contains(t, string(data), `xml:lang="en-US"`)

	c30, err := codec.For(ebxml.Version30)
	require.NoError(t, err)
	data, err = c30.Encode(codec.KindQuery, sample.Query())
	require.NoError(t, err)
	require.Contains(t, string(data), `<AdhocQueryRequest xmlns="urn:oasis:names:tc:ebxml-regrep:xsd:query:3.0">`)
	require.Contains(t, string(data), `<AdhocQuery xmlns="urn:oasis:names:tc:ebxml-regrep:xsd:rim:3.0" id="urn:uuid:14d4debf-8f97-4251-9a74-a90016b0af0d">`)
}

func TestDecodeForeignPrefixes(t *testing.T) {
	const data = `<?xml version="1.0" encoding="UTF-8"?>
<query:AdhocQueryRequest xmlns:query="urn:oasis:names:tc:ebxml-regrep:xsd:query:3.0"
    xmlns:rim="urn:oasis:names:tc:ebxml-regrep:xsd:rim:3.0">
  <query:ResponseOption returnComposedObjects="true" returnType="LeafClass"/>
  <rim:AdhocQuery id="urn:uuid:14d4debf-8f97-4251-9a74-a90016b0af0d">
    <rim:Slot name="$patientId">
      <rim:ValueList>
        <rim:Value>'1234^^^&amp;1.2.3&amp;ISO'</rim:Value>
      </rim:ValueList>
    </rim:Slot>
  </rim:AdhocQuery>
</query:AdhocQueryRequest>`

	c, err := codec.For(ebxml.Version30)
	require.NoError(t, err)
	got, err := c.Decode(codec.KindQuery, []byte(data))
	require.NoError(t, err)

	q, ok := got.(*metadata.QueryRegistry)
	require.True(t, ok)
	require.Equal(t, metadata.QueryReturnTypeLeafClass, q.ReturnType)
	require.Equal(t, []string{"'1234^^^&1.2.3&ISO'"}, q.Parameter("$patientId"))
}

func TestErrors(t *testing.T) {
	_, err := codec.For("4.0")
	require.ErrorIs(t, err, serrors.ErrUnsupported)

	c, err := codec.For(ebxml.Version21)
	require.NoError(t, err)

	_, err = c.Encode("Retrieve", sample.Response())
	require.ErrorIs(t, err, serrors.ErrUnsupported)

	_, err = c.Encode(codec.KindQuery, sample.Response())
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)

	_, err = c.Encode(codec.KindQuery, (*metadata.QueryRegistry)(nil))
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)

	_, err = c.Decode(codec.KindResponse, []byte("<RegistryResponse"))
	require.ErrorIs(t, err, serrors.ErrMalformed)

	// a 3.0 message is not a 2.1 message
	c30, err := codec.For(ebxml.Version30)
	require.NoError(t, err)
	data, err := c30.Encode(codec.KindResponse, sample.Response())
	require.NoError(t, err)
	_, err = c.Decode(codec.KindResponse, data)
	require.ErrorIs(t, err, serrors.ErrMalformed)
}

func TestParseKind(t *testing.T) {
	for _, k := range codec.Kinds {
		parsed, err := codec.ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}

	_, err := codec.ParseKind("Retrieve")
	require.ErrorIs(t, err, serrors.ErrUnsupported)
}

func TestEqual(t *testing.T) {
	require.True(t, codec.Equal(sample.Response(), sample.Response()))
	require.False(t, codec.Equal(sample.Response(), sample.QueryResponse()))
	require.False(t, codec.Equal("response", "response"))
}
