package seed

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"

	"plantify/internal/repository"
	"plantify/internal/storage"

	_ "golang.org/x/image/webp"
)

// DemoImage is one stock photo to mirror into object storage.
type DemoImage struct {
	Name string
	URL  string
}

// DemoImages are the stock photos referenced by the bundled demo posts.
var DemoImages = []DemoImage{
	{Name: "plant1.jpg", URL: "https://images.unsplash.com/photo-1459411552884-841db9b3cc2a?w=800&q=80"},
	{Name: "plant2.jpg", URL: "https://images.unsplash.com/photo-1485955900006-10f4d324d411?w=800&q=80"},
	{Name: "plant3.jpg", URL: "https://images.unsplash.com/photo-1509423350716-97f9360b4e09?w=800&q=80"},
	{Name: "plant4.jpg", URL: "https://images.unsplash.com/photo-1463936575829-25148e1db1b8?w=800&q=80"},
}

// DemoImageResult summarizes one mirrored image.
type DemoImageResult struct {
	Name         string
	PublicURL    string
	PostsUpdated int64
}

// RefreshDemoImages downloads each demo image, uploads it into storage
// under a demo/ prefix, and rewrites any posts still pointing at the
// bundled asset path to the served URL. Uploads use upsert so the
// operation is idempotent.
func RefreshDemoImages(ctx context.Context, posts repository.PostRepository, store storage.Store, client *http.Client, images []DemoImage) ([]DemoImageResult, error) {
	if client == nil {
		client = http.DefaultClient
	}

	results := make([]DemoImageResult, 0, len(images))
	for _, img := range images {
		data, err := fetchImage(ctx, client, img.URL)
		if err != nil {
			return results, fmt.Errorf("fetch %s: %w", img.Name, err)
		}

		publicURL, err := store.Upload(ctx, "demo/"+img.Name, data, sniffImageType(data), true)
		if err != nil {
			return results, fmt.Errorf("upload %s: %w", img.Name, err)
		}

		updated, err := posts.UpdateImageBySource(ctx, "/src/assets/"+img.Name, publicURL)
		if err != nil {
			return results, fmt.Errorf("relink %s: %w", img.Name, err)
		}

		log.Printf("Demo image %s mirrored, %d posts updated", img.Name, updated)
		results = append(results, DemoImageResult{
			Name:         img.Name,
			PublicURL:    publicURL,
			PostsUpdated: updated,
		})
	}
	return results, nil
}

func fetchImage(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// sniffImageType reports the content type of a downloaded payload based on
// the registered image decoders (jpeg, png, webp). Payloads that do not
// decode are stored as jpeg, matching the demo asset names.
func sniffImageType(data []byte) string {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || format == "" {
		return "image/jpeg"
	}
	return "image/" + format
}
