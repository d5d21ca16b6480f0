package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"bluearc/internal/transport/http/dto"
	"bluearc/tests/suite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

func call(ctx context.Context, st *suite.Suite, method, path string, body interface{}) (int, envelope) {
	st.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(st, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequestWithContext(ctx, method, st.Server.URL+path, &buf)
	require.NoError(st, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := st.Client.Do(req)
	require.NoError(st, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(st, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func view(ctx context.Context, st *suite.Suite, method, path string, body interface{}) dto.GalleryView {
	st.Helper()

	code, env := call(ctx, st, method, path, body)
	require.Equal(st, http.StatusOK, code, env.Error)

	var v dto.GalleryView
	require.NoError(st, json.Unmarshal(env.Data, &v))
	return v
}

func TestGallery_Tags(t *testing.T) {
	ctx, st := suite.New(t)

	code, env := call(ctx, st, http.MethodGet, "/api/v1/gallery/tags", nil)
	require.Equal(t, http.StatusOK, code)

	var tags []string
	require.NoError(t, json.Unmarshal(env.Data, &tags))
	assert.Equal(t, []string{"AV", "Networking", "POS", "Retail", "Setup"}, tags)
}

func TestGallery_FilterHappyPath(t *testing.T) {
	ctx, st := suite.New(t)

	v := view(ctx, st, http.MethodGet, "/api/v1/gallery", nil)
	require.Len(t, v.Entries, 5)
	assert.Equal(t, "Chico, CA • Aug 20, 2025", v.Entries[0].Subtitle)
	assert.Equal(t, "/Blue-arc/jobs/cvs/cvs.jpg", v.Entries[0].Cover.Src)

	v = view(ctx, st, http.MethodPut, "/api/v1/gallery/filter/query", dto.SetQueryRequest{Query: "TRADER"})
	require.Len(t, v.Entries, 1)
	assert.Equal(t, "traderjoes", v.Entries[0].ID)

	view(ctx, st, http.MethodPut, "/api/v1/gallery/filter/query", dto.SetQueryRequest{Query: ""})
	view(ctx, st, http.MethodPost, "/api/v1/gallery/filter/tags/Retail", nil)
	v = view(ctx, st, http.MethodPost, "/api/v1/gallery/filter/tags/POS", nil)

	ids := make([]string, 0, len(v.Entries))
	for _, e := range v.Entries {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"torrid", "traderjoes"}, ids)
	assert.Equal(t, []string{"Retail", "POS"}, v.ActiveTags)

	v = view(ctx, st, http.MethodPut, "/api/v1/gallery/filter/query", dto.SetQueryRequest{Query: "no such job"})
	assert.True(t, v.Empty)
}

func TestGallery_LightboxWalk(t *testing.T) {
	ctx, st := suite.New(t)

	view(ctx, st, http.MethodPost, "/api/v1/gallery/filter/tags/AV", nil)

	v := view(ctx, st, http.MethodPost, "/api/v1/gallery/lightbox", dto.OpenLightboxRequest{EntryID: "pourhouse"})
	require.NotNil(t, v.Lightbox)
	assert.Equal(t, "Media 1 of 5", v.Lightbox.Counter)
	assert.Equal(t, "Pour House • Chico CA • Aug 15, 2025", v.Lightbox.Caption)
	assert.Len(t, v.Lightbox.Thumbnails, 5)

	// единственный видимый проект: листание идет по кругу внутри него
	for i := 1; i <= 5; i++ {
		v = view(ctx, st, http.MethodPost, "/api/v1/gallery/lightbox/next", nil)
		assert.Equal(t, "pourhouse", v.Lightbox.EntryID)
		assert.Equal(t, i%5, v.Lightbox.MediaIndex)
	}

	v = view(ctx, st, http.MethodPost, "/api/v1/gallery/lightbox/keys", dto.KeyRequest{Key: "ArrowLeft"})
	assert.Equal(t, 4, v.Lightbox.MediaIndex)
	assert.Equal(t, "image", v.Lightbox.Media.Type)

	v = view(ctx, st, http.MethodPut, "/api/v1/gallery/lightbox", dto.JumpLightboxRequest{EntryID: "pourhouse", MediaIndex: 2})
	assert.Equal(t, "video", v.Lightbox.Media.Type)
	assert.True(t, v.Lightbox.Thumbnails[2].Active)

	// снятие тега оставляет проект видимым, курсор сохраняется
	v = view(ctx, st, http.MethodPost, "/api/v1/gallery/filter/tags/AV", nil)
	require.NotNil(t, v.Lightbox)
	assert.Equal(t, 2, v.Lightbox.MediaIndex)

	// фильтр, скрывающий проект, закрывает лайтбокс
	v = view(ctx, st, http.MethodPost, "/api/v1/gallery/filter/tags/Setup", nil)
	assert.Nil(t, v.Lightbox)

	code, env := call(ctx, st, http.MethodPost, "/api/v1/gallery/lightbox", dto.OpenLightboxRequest{EntryID: "pourhouse"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "entry_not_found", env.Error)
}

func TestGallery_WrapAcrossEntries(t *testing.T) {
	ctx, st := suite.New(t)

	v := view(ctx, st, http.MethodPost, "/api/v1/gallery/lightbox", dto.OpenLightboxRequest{EntryID: "cvs"})
	require.NotNil(t, v.Lightbox)
	assert.Empty(t, v.Lightbox.Thumbnails)

	v = view(ctx, st, http.MethodPost, "/api/v1/gallery/lightbox/prev", nil)
	assert.Equal(t, "Workmans-comp", v.Lightbox.EntryID)
	assert.Equal(t, "Company Office • Chico, CA • Aug 05, 2025", v.Lightbox.Caption)

	v = view(ctx, st, http.MethodPost, "/api/v1/gallery/lightbox/next", nil)
	assert.Equal(t, "cvs", v.Lightbox.EntryID)

	v = view(ctx, st, http.MethodPost, "/api/v1/gallery/lightbox/keys", dto.KeyRequest{Key: "Escape"})
	assert.Nil(t, v.Lightbox)
}
