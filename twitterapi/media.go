package twitterapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
)

// UploadMedia uploads media bytes through the legacy v1.1 endpoint and
// returns the media ID usable with CreateTweet. The v2 API has no upload
// endpoint, so this is the one place the client still speaks v1.1.
func (c *Client) UploadMedia(ctx context.Context, filename string, data []byte) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("media", filename)
	if err != nil {
		return "", fmt.Errorf("%s: build form: %w", opMediaUpload, err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("%s: write form: %w", opMediaUpload, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%s: close form: %w", opMediaUpload, err)
	}

	body, err := c.do(ctx, apiRequest{
		op:          opMediaUpload,
		method:      http.MethodPost,
		url:         c.cfg.UploadBaseURL + "/media/upload.json",
		body:        buf.Bytes(),
		contentType: w.FormDataContentType(),
		auth:        authUser,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", opMediaUpload, err)
	}

	var resp mediaUploadResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%s: decode: %w", opMediaUpload, err)
	}
	if resp.MediaIDString == "" {
		return "", fmt.Errorf("%s: response missing media_id_string", opMediaUpload)
	}
	return resp.MediaIDString, nil
}
