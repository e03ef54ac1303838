package http

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileRequest_ResumeURLTristate(t *testing.T) {
	t.Run("absent leaves resume untouched", func(t *testing.T) {
		var req UpdateProfileRequest
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Brian"}`), &req))

		upd := req.ToDomainUpdate()
		assert.Nil(t, upd.ResumeURL)
		require.NotNil(t, upd.Name)
		assert.Equal(t, "Brian", *upd.Name)
	})

	t.Run("explicit null clears resume", func(t *testing.T) {
		var req UpdateProfileRequest
		require.NoError(t, json.Unmarshal([]byte(`{"resume_url":null}`), &req))

		upd := req.ToDomainUpdate()
		require.NotNil(t, upd.ResumeURL)
		assert.Nil(t, *upd.ResumeURL)
		assert.False(t, upd.Empty())
	})

	t.Run("string value sets resume", func(t *testing.T) {
		var req UpdateProfileRequest
		require.NoError(t, json.Unmarshal([]byte(`{"resume_url":"https://cdn.example.com/cv.pdf"}`), &req))

		upd := req.ToDomainUpdate()
		require.NotNil(t, upd.ResumeURL)
		require.NotNil(t, *upd.ResumeURL)
		assert.Equal(t, "https://cdn.example.com/cv.pdf", **upd.ResumeURL)
	})

	t.Run("escaped characters are decoded", func(t *testing.T) {
		var req UpdateProfileRequest
		require.NoError(t, json.Unmarshal([]byte(`{"resume_url":"https://cdn.example.com/cv.pdf?a=1\u0026b=2"}`), &req))

		upd := req.ToDomainUpdate()
		require.NotNil(t, upd.ResumeURL)
		require.NotNil(t, *upd.ResumeURL)
		assert.Equal(t, "https://cdn.example.com/cv.pdf?a=1&b=2", **upd.ResumeURL)

		require.NoError(t, json.Unmarshal([]byte(`{"resume_url":"a\"b"}`), &req))
		upd = req.ToDomainUpdate()
		assert.Equal(t, `a"b`, **upd.ResumeURL)
	})

	t.Run("non-string value is rejected", func(t *testing.T) {
		var req UpdateProfileRequest
		assert.Error(t, json.Unmarshal([]byte(`{"resume_url":42}`), &req))
		assert.Error(t, json.Unmarshal([]byte(`{"resume_url":["x"]}`), &req))
	})

	t.Run("empty body is an empty update", func(t *testing.T) {
		var req UpdateProfileRequest
		require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
		assert.True(t, req.ToDomainUpdate().Empty())
	})
}
