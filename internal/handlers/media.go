// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"coverpress/internal/imaging"
)

// maxUploadBytes caps a single media upload. Hero images and short intro
// videos fit comfortably; anything bigger belongs on a dedicated host.
const maxUploadBytes = 64 << 20

// mediaVariant is one generated size of an uploaded image.
type mediaVariant struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Key    string `json:"key"`
	URL    string `json:"url"`
}

// MediaUpload stores an admin upload in object storage. Images are converted
// into responsive WebP variants; other files (videos, documents) are stored
// as-is. The returned keys are what content fields reference.
func (a *Admin) MediaUpload(w http.ResponseWriter, r *http.Request) {
	if a.media == nil {
		respondError(w, http.StatusServiceUnavailable, "media storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing file upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "upload read failed")
		return
	}

	id := uuid.New().String()
	contentType := header.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "image/") {
		variants, err := imaging.GenerateVariants(data, nil)
		if err != nil || len(variants) == 0 {
			respondError(w, http.StatusUnprocessableEntity, "image could not be processed")
			return
		}

		out := make([]mediaVariant, 0, len(variants))
		for _, v := range variants {
			key := fmt.Sprintf("uploads/%s/%s.webp", id, v.Name)
			if err := a.media.Upload(r.Context(), key, v.ContentType, bytes.NewReader(v.Data), int64(len(v.Data))); err != nil {
				respondInternalError(w, "media variant upload failed", err)
				return
			}
			out = append(out, mediaVariant{
				Name:   v.Name,
				Width:  v.Width,
				Height: v.Height,
				Key:    key,
				URL:    a.media.FileURL(key),
			})
		}

		// The widest variant is the canonical reference for content fields.
		largest := largestVariant(out)
		respondJSON(w, http.StatusCreated, map[string]any{
			"key":      largest.Key,
			"url":      largest.URL,
			"variants": out,
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := "uploads/" + id + ext
	if err := a.media.Upload(r.Context(), key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		respondInternalError(w, "media upload failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"key": key,
		"url": a.media.FileURL(key),
	})
}

// largestVariant picks the widest generated variant. The variant slice
// order is the generator's concern, not a contract this handler may lean
// on.
func largestVariant(variants []mediaVariant) mediaVariant {
	largest := variants[0]
	for _, v := range variants[1:] {
		if v.Width > largest.Width {
			largest = v
		}
	}
	return largest
}
