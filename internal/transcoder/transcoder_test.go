package transcoder_test

import (
	"context"
	"errors"
	"testing"
	"xds/internal/transcoder"
	"xds/pkg/codec"
	"xds/pkg/ebxml"
	"xds/pkg/metadata"
	"xds/pkg/sample"
	"xds/pkg/serrors"

	mockcodec "xds/pkg/codec/mock"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTranscoder(t *testing.T) (*mockcodec.MockCodec, *mockcodec.MockCodec, *prometheus.Registry, transcoder.Transcoder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	v21 := mockcodec.NewMockCodec(ctrl)
	v30 := mockcodec.NewMockCodec(ctrl)
	reg := prometheus.NewRegistry()

	tr := transcoder.New(func(v ebxml.Version) (codec.Codec, error) {
		switch v {
		case ebxml.Version21:
			return v21, nil
		case ebxml.Version30:
			return v30, nil
		default:
			return nil, serrors.With(serrors.ErrUnsupported, "unsupported ebXML version %q", v)
		}
	}, transcoder.Options{Registerer: reg})

	return v21, v30, reg, tr
}

func transcodeCount(t *testing.T, reg *prometheus.Registry) int {
	t.Helper()

	count, err := testutil.GatherAndCount(reg, "xds_transcode_total")
	require.NoError(t, err)

	return count
}

func TestTranscoder_Transcode(t *testing.T) {
	v21, v30, reg, tr := newTestTranscoder(t)

	resp := sample.Response()
	v21.EXPECT().Decode(codec.KindResponse, []byte("in")).Return(resp, nil)
	v30.EXPECT().Encode(codec.KindResponse, resp).Return([]byte("out"), nil)

	out, err := tr.Transcode(context.Background(), codec.KindResponse, ebxml.Version21, ebxml.Version30, []byte("in"))
	require.NoError(t, err)
	require.Equal(t, []byte("out"), out)
	require.Equal(t, 1, transcodeCount(t, reg))
}

func TestTranscoder_Transcode_DecodeError(t *testing.T) {
	v21, _, reg, tr := newTestTranscoder(t)

	v21.EXPECT().Decode(codec.KindQuery, gomock.Any()).
		Return(nil, serrors.Wrap(serrors.ErrMalformed, errors.New("EOF"), "could not decode"))

	_, err := tr.Transcode(context.Background(), codec.KindQuery, ebxml.Version21, ebxml.Version30, []byte("<"))
	require.ErrorIs(t, err, serrors.ErrMalformed)
	require.Equal(t, 1, transcodeCount(t, reg))
}

func TestTranscoder_Transcode_UnsupportedVersion(t *testing.T) {
	_, _, _, tr := newTestTranscoder(t)

	_, err := tr.Transcode(context.Background(), codec.KindQuery, ebxml.Version21, "4.0", nil)
	require.ErrorIs(t, err, serrors.ErrUnsupported)
}

func TestTranscoder_RoundTrip(t *testing.T) {
	v21, _, _, tr := newTestTranscoder(t)

	first := &metadata.Response{Status: metadata.StatusSuccess}
	second := &metadata.Response{Status: metadata.StatusSuccess}
	gomock.InOrder(
		v21.EXPECT().Decode(codec.KindResponse, []byte("in")).Return(first, nil),
		v21.EXPECT().Encode(codec.KindResponse, first).Return([]byte("again"), nil),
		v21.EXPECT().Decode(codec.KindResponse, []byte("again")).Return(second, nil),
	)

	equal, err := tr.RoundTrip(context.Background(), codec.KindResponse, ebxml.Version21, []byte("in"))
	require.NoError(t, err)
	require.True(t, equal)
}

func TestTranscoder_RoundTrip_Changed(t *testing.T) {
	_, v30, _, tr := newTestTranscoder(t)

	first := &metadata.Response{Status: metadata.StatusSuccess}
	second := &metadata.Response{Status: metadata.StatusFailure}
	v30.EXPECT().Decode(codec.KindResponse, gomock.Any()).Return(first, nil)
	v30.EXPECT().Encode(codec.KindResponse, first).Return([]byte("again"), nil)
	v30.EXPECT().Decode(codec.KindResponse, []byte("again")).Return(second, nil)

	equal, err := tr.RoundTrip(context.Background(), codec.KindResponse, ebxml.Version30, []byte("in"))
	require.NoError(t, err)
	require.False(t, equal)
}

func TestTranscoder_Sample(t *testing.T) {
	_, v30, _, tr := newTestTranscoder(t)

	v30.EXPECT().Encode(codec.KindQuery, gomock.AssignableToTypeOf(&metadata.QueryRegistry{})).Return([]byte("query"), nil)

	out, err := tr.Sample(context.Background(), codec.KindQuery, ebxml.Version30)
	require.NoError(t, err)
	require.Equal(t, []byte("query"), out)

	_, err = tr.Sample(context.Background(), "Retrieve", ebxml.Version30)
	require.ErrorIs(t, err, serrors.ErrUnsupported)
}

// Transcoding with the real codecs and back must preserve the transaction.
func TestTranscoder_AcrossVersions(t *testing.T) {
	tr := transcoder.New(codec.For, transcoder.Options{})
	ctx := context.Background()

	for _, kind := range codec.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			in, err := tr.Sample(ctx, kind, ebxml.Version21)
			require.NoError(t, err)

			v30, err := tr.Transcode(ctx, kind, ebxml.Version21, ebxml.Version30, in)
			require.NoError(t, err)
			back, err := tr.Transcode(ctx, kind, ebxml.Version30, ebxml.Version21, v30)
			require.NoError(t, err)

			c, err := codec.For(ebxml.Version21)
			require.NoError(t, err)
			want, err := c.Decode(kind, in)
			require.NoError(t, err)
			got, err := c.Decode(kind, back)
			require.NoError(t, err)
			require.True(t, codec.Equal(want, got))

			equal, err := tr.RoundTrip(ctx, kind, ebxml.Version30, v30)
			require.NoError(t, err)
			require.True(t, equal)
		})
	}
}
