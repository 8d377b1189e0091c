package storage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBucketSet(t *testing.T) {
	b := NewBucketSet("katha-")
	require.Equal(t, "katha-audios", b.Audio)
	require.Equal(t, "katha-images", b.Image)
	require.Equal(t, []string{"katha-audios", "katha-images"}, b.Names())
}

func TestPublicURLTemplate(t *testing.T) {
	s := &SpacesStorage{region: "sfo3", cdnDomain: "digitaloceanspaces.com"}
	got := s.PublicURL("katha-audios", "a-r-rahman/1712000000000_song-one.mp3")
	require.Equal(t,
		"https://katha-audios.sfo3.cdn.digitaloceanspaces.com/a-r-rahman/1712000000000_song-one.mp3",
		got)
}

func TestPublicReadPolicy(t *testing.T) {
	var policy struct {
		Version   string
		Statement []struct {
			Effect   string
			Action   string
			Resource string
		}
	}
	require.NoError(t, json.Unmarshal([]byte(publicReadPolicy("katha-images")), &policy))
	require.Equal(t, "2012-10-17", policy.Version)
	require.Len(t, policy.Statement, 1)
	require.Equal(t, "Allow", policy.Statement[0].Effect)
	require.Equal(t, "s3:GetObject", policy.Statement[0].Action)
	require.Equal(t, "arn:aws:s3:::katha-images/*", policy.Statement[0].Resource)
}
