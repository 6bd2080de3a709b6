package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/latehour/loahelper/pkg/lostark/handler"
	"github.com/latehour/loahelper/pkg/lostark/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siblingsBody = `[
	{"CharacterName": "앨리스", "CharacterClassName": "버서커", "ItemAvgLevel": "1,650.00", "ServerName": "루페온"},
	{"CharacterName": "밥", "CharacterClassName": "바드", "ItemAvgLevel": "1,540.83", "ServerName": "루페온"}
]`

func TestGetSiblingsParsesRoster(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("authorization"))
		assert.Contains(t, r.URL.Path, "/characters/")
		w.Write([]byte(siblingsBody))
	}))
	defer server.Close()

	client := handler.NewClientWithBaseURL(server.URL, "test-key")
	siblings, err := client.GetSiblings("앨리스")
	require.NoError(t, err)
	require.Len(t, siblings, 2)
	assert.Equal(t, "앨리스", siblings[0].CharacterName)
	assert.Equal(t, "1,650.00", siblings[0].ItemAvgLevel)
	assert.Equal(t, "루페온", siblings[0].ServerName)
}

func TestGetSiblingsNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := handler.NewClientWithBaseURL(server.URL, "test-key")
	siblings, err := client.GetSiblings("앨리스")
	assert.Nil(t, siblings)
	assert.ErrorIs(t, err, shared.ErrUpstreamUnavailable)
}

func TestGetSiblingsUnreachableUpstream(t *testing.T) {
	client := handler.NewClientWithBaseURL("http://127.0.0.1:1", "test-key")
	siblings, err := client.GetSiblings("앨리스")
	assert.Nil(t, siblings)
	assert.ErrorIs(t, err, shared.ErrUpstreamUnavailable)
}

func TestGetSiblingsEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := handler.NewClientWithBaseURL(server.URL, "test-key")
	siblings, err := client.GetSiblings("유령")
	assert.Nil(t, siblings)
	assert.ErrorIs(t, err, shared.ErrNoData)
}

func TestGetSiblingsNonListBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	}))
	defer server.Close()

	client := handler.NewClientWithBaseURL(server.URL, "test-key")
	siblings, err := client.GetSiblings("유령")
	assert.Nil(t, siblings)
	assert.ErrorIs(t, err, shared.ErrNoData)
}

func TestGetArmoryProfileParsesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ArmoryProfile": {"CharacterImage": "https://img.example/a.png", "ExpeditionLevel": 180}}`))
	}))
	defer server.Close()

	client := handler.NewClientWithBaseURL(server.URL, "test-key")
	profile := client.GetArmoryProfile("앨리스")
	assert.Equal(t, "https://img.example/a.png", profile.CharacterImage)
	assert.Equal(t, 180, profile.ExpeditionLevel)
}

func TestGetArmoryProfileDegradesOnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := handler.NewClientWithBaseURL(server.URL, "test-key")
	profile := client.GetArmoryProfile("앨리스")
	assert.Equal(t, shared.ArmoryProfile{}, profile)
}

func TestGetArmoryProfileDegradesOnBadBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := handler.NewClientWithBaseURL(server.URL, "test-key")
	profile := client.GetArmoryProfile("앨리스")
	assert.Equal(t, shared.ArmoryProfile{}, profile)
}
