package twitterimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/orgball2608/insta-tweet-relay/pkg/errors"
	"github.com/orgball2608/insta-tweet-relay/pkg/metrics"
)

const maxImageBytes = 5 << 20

type mediaUploadResponse struct {
	MediaIDString string `json:"media_id_string"`
}

func (t *TwitterImpl) uploadImage(ctx context.Context, client *http.Client, imageURL string) (string, error) {
	data, err := t.downloadImage(ctx, imageURL)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodePublish, "failed to download image")
	}

	mediaID, err := t.uploadMedia(ctx, client, data, imageFilename(imageURL))
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodePublish, "failed to upload media")
	}

	return mediaID, nil
}

func (t *TwitterImpl) downloadImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid image url: %w", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer safeClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("image is empty")
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	return data, nil
}

func (t *TwitterImpl) uploadMedia(ctx context.Context, client *http.Client, data []byte, filename string) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("media", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.uploadBaseURL+"/1.1/media/upload.json", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	start := time.Now()
	resp, err := client.Do(req)
	metrics.ObserveUpstream("twitter_media", start)
	if err != nil {
		return "", err
	}
	defer safeClose(resp.Body)

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", apiError("media upload", resp.StatusCode, payload)
	}

	var out mediaUploadResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return "", fmt.Errorf("could not decode upload response: %w", err)
	}
	if out.MediaIDString == "" {
		return "", fmt.Errorf("upload response has no media id")
	}

	return out.MediaIDString, nil
}

func imageFilename(imageURL string) string {
	u, err := url.Parse(imageURL)
	if err != nil {
		return "image.jpg"
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "image.jpg"
	}
	return name
}
