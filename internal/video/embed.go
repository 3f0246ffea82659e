// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package video normalizes YouTube and Vimeo links into embeddable player
// URLs for the JSON API. Anything it doesn't recognize passes through
// unchanged so self-hosted and already-embeddable URLs keep working.
package video

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// youtubeID matches the 11-character video ID after "v=" or "youtu.be/".
	youtubeID = regexp.MustCompile(`(?:v=|youtu\.be/)([a-zA-Z0-9_-]{11})`)
	// vimeoID matches the numeric ID in a vimeo.com page URL.
	vimeoID = regexp.MustCompile(`vimeo\.com/(\d+)`)
)

// EmbedURL converts a YouTube or Vimeo page URL into its embeddable player
// form. Unrecognized URLs are returned as-is; blank input stays blank.
func EmbedURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}

	if strings.Contains(u, "youtube.com/watch") || strings.Contains(u, "youtu.be/") {
		if m := youtubeID.FindStringSubmatch(u); m != nil {
			return fmt.Sprintf("https://www.youtube.com/embed/%s", m[1])
		}
		return u
	}

	// Already a player URL — leave it alone.
	if strings.Contains(u, "player.vimeo.com") {
		return u
	}
	if m := vimeoID.FindStringSubmatch(u); m != nil {
		return fmt.Sprintf("https://player.vimeo.com/video/%s", m[1])
	}

	return u
}
