package app

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_Parse(t *testing.T) {
	for _, v := range []View{ViewHome, ViewLogin, ViewRegister, ViewSearch, ViewProfile} {
		parsed, ok := ParseView(v.String())
		assert.True(t, ok, v.String())
		assert.Equal(t, v, parsed)
	}

	_, ok := ParseView("settings")
	assert.False(t, ok)
	assert.Equal(t, "View(12)", View(12).String())
}

func TestView_Back(t *testing.T) {
	tts := map[View]View{
		ViewHome:     ViewHome,
		ViewLogin:    ViewHome,
		ViewRegister: ViewLogin,
		ViewSearch:   ViewHome,
		ViewProfile:  ViewHome,
	}
	for v, back := range tts {
		assert.Equal(t, back, v.Back(), v.String())
	}
}

func TestView_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		View View `json:"view"`
	}{ViewSearch})
	require.NoError(t, err)
	assert.JSONEq(t, `{"view": "search"}`, string(data))

	var v struct {
		View View `json:"view"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"view": "profile"}`), &v))
	assert.Equal(t, ViewProfile, v.View)

	assert.Error(t, json.Unmarshal([]byte(`{"view": "nope"}`), &v))

	_, err = json.Marshal(View(-1))
	assert.Error(t, err)
}
