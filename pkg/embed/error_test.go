package embed_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/latehour/loahelper/pkg/embed"
	"github.com/latehour/loahelper/pkg/lostark/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorEmbedCarriesStatusMessage(t *testing.T) {
	builder := embed.CreateErrorEmbeds()

	e := builder.Error("원정대 검색", shared.MsgFetchFailed)
	assert.Equal(t, "원정대 검색", e.Title)
	assert.Equal(t, shared.MsgFetchFailed, e.Description)
	assert.Equal(t, 0xff0000, e.Color)
}

func TestCommandErrorIncludesCause(t *testing.T) {
	builder := embed.CreateErrorEmbeds()

	e := builder.CommandError("레이드추가", errors.New("tx aborted"))
	assert.Equal(t, "❌ 레이드추가", e.Title)
	assert.Equal(t, "명령어 처리 중 오류가 발생했습니다.", e.Description)
	require.Len(t, e.Fields, 1)
	assert.Equal(t, "오류 내용", e.Fields[0].Name)
	assert.Equal(t, "tx aborted", e.Fields[0].Value)
}

func TestCommandErrorNilError(t *testing.T) {
	builder := embed.CreateErrorEmbeds()

	e := builder.CommandError("레이드목록", nil)
	assert.Empty(t, e.Fields)
}

func TestCommandErrorTruncatesLongMessages(t *testing.T) {
	builder := embed.CreateErrorEmbeds()

	e := builder.CommandError("레이드추가", errors.New(strings.Repeat("x", 2000)))
	require.Len(t, e.Fields, 1)
	assert.Len(t, e.Fields[0].Value, 1000)
	assert.True(t, strings.HasSuffix(e.Fields[0].Value, "..."))
}
